package behaviorkit

import "github.com/felixgeelhaar/behaviorkit/internal/arena"

// Query capabilities. Unlike events, queries are answered immediately and
// never mutate the stack. The innermost (most specific) action is consulted
// first; an Undefined answer defers outward.

// PickUpQuery decides whether the actor should collect an item.
type PickUpQuery[A any] interface {
	ShouldPickUp(actor A, item Entity) QueryResult
}

// HurryQuery decides whether the actor should move with urgency.
type HurryQuery[A any] interface {
	ShouldHurry(actor A) QueryResult
}

// RetreatQuery decides whether the actor should fall back.
type RetreatQuery[A any] interface {
	ShouldRetreat(actor A) QueryResult
}

// AttackQuery decides whether the actor should engage a threat.
type AttackQuery[A any] interface {
	ShouldAttack(actor A, threat Entity) QueryResult
}

// HindranceQuery decides whether an obstacle blocks the actor's path.
type HindranceQuery[A any] interface {
	IsHindrance(actor A, blocker Entity) QueryResult
}

// TargetPointQuery selects where to aim at a subject. The bool reports
// whether this action has an opinion at all.
type TargetPointQuery[A any] interface {
	SelectTargetPoint(actor A, subject Entity) (Vector, bool)
}

// PositionAllowedQuery decides whether the actor may occupy a position.
type PositionAllowedQuery[A any] interface {
	IsPositionAllowed(actor A, pos Vector) QueryResult
}

// ThreatCompareQuery picks the more dangerous of two threats. A nil result
// defers the comparison outward.
type ThreatCompareQuery[A any] interface {
	SelectMoreDangerousThreat(actor A, subject, threat1, threat2 Entity) Entity
}

// queryLevels walks the active path innermost-first, and within each level
// the active action before the actions buried under it, calling fn on each
// until fn reports done.
func (b *Behavior[A]) queryLevels(fn func(act Action[A]) bool) {
	var walk func(h arena.Handle) bool
	walk = func(h arena.Handle) bool {
		n := b.nodes.Get(h)
		if n == nil {
			return false
		}
		if !n.child.IsZero() && walk(n.child) {
			return true
		}
		for !h.IsZero() {
			ln := b.nodes.Get(h)
			if ln == nil {
				return false
			}
			if fn(ln.action) {
				return true
			}
			h = ln.buried
		}
		return false
	}
	if !b.top.IsZero() {
		walk(b.top)
	}
}

// ShouldPickUp asks the stack whether to collect an item.
func (b *Behavior[A]) ShouldPickUp(actor A, item Entity) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(PickUpQuery[A]); ok {
			result = q.ShouldPickUp(actor, item)
		}
		return result != QueryUndefined
	})
	return result
}

// ShouldHurry asks the stack whether to move with urgency.
func (b *Behavior[A]) ShouldHurry(actor A) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(HurryQuery[A]); ok {
			result = q.ShouldHurry(actor)
		}
		return result != QueryUndefined
	})
	return result
}

// ShouldRetreat asks the stack whether to fall back.
func (b *Behavior[A]) ShouldRetreat(actor A) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(RetreatQuery[A]); ok {
			result = q.ShouldRetreat(actor)
		}
		return result != QueryUndefined
	})
	return result
}

// ShouldAttack asks the stack whether to engage a threat.
func (b *Behavior[A]) ShouldAttack(actor A, threat Entity) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(AttackQuery[A]); ok {
			result = q.ShouldAttack(actor, threat)
		}
		return result != QueryUndefined
	})
	return result
}

// IsHindrance asks the stack whether an obstacle blocks the actor.
func (b *Behavior[A]) IsHindrance(actor A, blocker Entity) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(HindranceQuery[A]); ok {
			result = q.IsHindrance(actor, blocker)
		}
		return result != QueryUndefined
	})
	return result
}

// SelectTargetPoint asks the stack where to aim at a subject. The bool is
// false when no action on the stack has an opinion.
func (b *Behavior[A]) SelectTargetPoint(actor A, subject Entity) (Vector, bool) {
	var point Vector
	found := false
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(TargetPointQuery[A]); ok {
			point, found = q.SelectTargetPoint(actor, subject)
		}
		return found
	})
	return point, found
}

// IsPositionAllowed asks the stack whether the actor may occupy a position.
func (b *Behavior[A]) IsPositionAllowed(actor A, pos Vector) QueryResult {
	result := QueryUndefined
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(PositionAllowedQuery[A]); ok {
			result = q.IsPositionAllowed(actor, pos)
		}
		return result != QueryUndefined
	})
	return result
}

// SelectMoreDangerousThreat asks the stack to pick the more dangerous of
// two threats, returning nil when no action decides.
func (b *Behavior[A]) SelectMoreDangerousThreat(actor A, subject, threat1, threat2 Entity) Entity {
	var chosen Entity
	b.queryLevels(func(act Action[A]) bool {
		if q, ok := any(act).(ThreatCompareQuery[A]); ok {
			chosen = q.SelectMoreDangerousThreat(actor, subject, threat1, threat2)
		}
		return chosen != nil
	})
	return chosen
}
