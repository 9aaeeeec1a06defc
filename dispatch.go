package behaviorkit

import (
	"log/slog"

	"github.com/felixgeelhaar/behaviorkit/internal/arena"
)

// Per-event handler capabilities. An action responds to an event by
// implementing the matching interface; anything it does not implement is a
// no-op "continue" and the event falls through to the action beneath it.

// LeaveGroundHandler responds to LeaveGround events.
type LeaveGroundHandler[A any] interface {
	OnLeaveGround(actor A, ev LeaveGround) EventResult[A]
}

// LandOnGroundHandler responds to LandOnGround events.
type LandOnGroundHandler[A any] interface {
	OnLandOnGround(actor A, ev LandOnGround) EventResult[A]
}

// ContactHandler responds to Contact events.
type ContactHandler[A any] interface {
	OnContact(actor A, ev Contact) EventResult[A]
}

// MoveToSuccessHandler responds to MoveToSuccess events.
type MoveToSuccessHandler[A any] interface {
	OnMoveToSuccess(actor A, ev MoveToSuccess) EventResult[A]
}

// MoveToFailureHandler responds to MoveToFailure events.
type MoveToFailureHandler[A any] interface {
	OnMoveToFailure(actor A, ev MoveToFailure) EventResult[A]
}

// StuckHandler responds to Stuck events.
type StuckHandler[A any] interface {
	OnStuck(actor A, ev Stuck) EventResult[A]
}

// UnStuckHandler responds to UnStuck events.
type UnStuckHandler[A any] interface {
	OnUnStuck(actor A, ev UnStuck) EventResult[A]
}

// PostureChangedHandler responds to PostureChanged events.
type PostureChangedHandler[A any] interface {
	OnPostureChanged(actor A, ev PostureChanged) EventResult[A]
}

// RegionChangedHandler responds to RegionChanged events.
type RegionChangedHandler[A any] interface {
	OnRegionChanged(actor A, ev RegionChanged) EventResult[A]
}

// ModelChangedHandler responds to ModelChanged events.
type ModelChangedHandler[A any] interface {
	OnModelChanged(actor A, ev ModelChanged) EventResult[A]
}

// AnimationActivityCompleteHandler responds to AnimationActivityComplete events.
type AnimationActivityCompleteHandler[A any] interface {
	OnAnimationActivityComplete(actor A, ev AnimationActivityComplete) EventResult[A]
}

// AnimationActivityInterruptedHandler responds to AnimationActivityInterrupted events.
type AnimationActivityInterruptedHandler[A any] interface {
	OnAnimationActivityInterrupted(actor A, ev AnimationActivityInterrupted) EventResult[A]
}

// AnimationEventHandler responds to AnimationEvent events.
type AnimationEventHandler[A any] interface {
	OnAnimationEvent(actor A, ev AnimationEvent) EventResult[A]
}

// IgnitedHandler responds to Ignited events.
type IgnitedHandler[A any] interface {
	OnIgnited(actor A, ev Ignited) EventResult[A]
}

// InjuredHandler responds to Injured events.
type InjuredHandler[A any] interface {
	OnInjured(actor A, ev Injured) EventResult[A]
}

// KilledHandler responds to Killed events.
type KilledHandler[A any] interface {
	OnKilled(actor A, ev Killed) EventResult[A]
}

// OtherKilledHandler responds to OtherKilled events.
type OtherKilledHandler[A any] interface {
	OnOtherKilled(actor A, ev OtherKilled) EventResult[A]
}

// BlindedHandler responds to Blinded events.
type BlindedHandler[A any] interface {
	OnBlinded(actor A, ev Blinded) EventResult[A]
}

// ShovedHandler responds to Shoved events.
type ShovedHandler[A any] interface {
	OnShoved(actor A, ev Shoved) EventResult[A]
}

// HitByProjectileHandler responds to HitByProjectile events.
type HitByProjectileHandler[A any] interface {
	OnHitByProjectile(actor A, ev HitByProjectile) EventResult[A]
}

// EnteredHazardHandler responds to EnteredHazard events.
type EnteredHazardHandler[A any] interface {
	OnEnteredHazard(actor A, ev EnteredHazard) EventResult[A]
}

// SightHandler responds to Sight events.
type SightHandler[A any] interface {
	OnSight(actor A, ev Sight) EventResult[A]
}

// LostSightHandler responds to LostSight events.
type LostSightHandler[A any] interface {
	OnLostSight(actor A, ev LostSight) EventResult[A]
}

// ThreatChangedHandler responds to ThreatChanged events.
type ThreatChangedHandler[A any] interface {
	OnThreatChanged(actor A, ev ThreatChanged) EventResult[A]
}

// SoundHandler responds to Sound events.
type SoundHandler[A any] interface {
	OnSound(actor A, ev Sound) EventResult[A]
}

// SpokeConceptHandler responds to SpokeConcept events.
type SpokeConceptHandler[A any] interface {
	OnSpokeConcept(actor A, ev SpokeConcept) EventResult[A]
}

// PickedUpHandler responds to PickedUp events.
type PickedUpHandler[A any] interface {
	OnPickedUp(actor A, ev PickedUp) EventResult[A]
}

// DroppedHandler responds to Dropped events.
type DroppedHandler[A any] interface {
	OnDropped(actor A, ev Dropped) EventResult[A]
}

// CommandAttackHandler responds to CommandAttack events.
type CommandAttackHandler[A any] interface {
	OnCommandAttack(actor A, ev CommandAttack) EventResult[A]
}

// CommandAssaultHandler responds to CommandAssault events.
type CommandAssaultHandler[A any] interface {
	OnCommandAssault(actor A, ev CommandAssault) EventResult[A]
}

// CommandApproachHandler responds to CommandApproach events.
type CommandApproachHandler[A any] interface {
	OnCommandApproach(actor A, ev CommandApproach) EventResult[A]
}

// CommandApproachEntityHandler responds to CommandApproachEntity events.
type CommandApproachEntityHandler[A any] interface {
	OnCommandApproachEntity(actor A, ev CommandApproachEntity) EventResult[A]
}

// CommandRetreatHandler responds to CommandRetreat events.
type CommandRetreatHandler[A any] interface {
	OnCommandRetreat(actor A, ev CommandRetreat) EventResult[A]
}

// CommandPauseHandler responds to CommandPause events.
type CommandPauseHandler[A any] interface {
	OnCommandPause(actor A, ev CommandPause) EventResult[A]
}

// CommandResumeHandler responds to CommandResume events.
type CommandResumeHandler[A any] interface {
	OnCommandResume(actor A, ev CommandResume) EventResult[A]
}

// CommandStringHandler responds to CommandString events.
type CommandStringHandler[A any] interface {
	OnCommandString(actor A, ev CommandString) EventResult[A]
}

// EventHandler is the generic catch-all capability. It receives any event
// that has no kind-specific adapter (Custom events in particular) or whose
// kind-specific capability the action does not implement.
type EventHandler[A any] interface {
	HandleEvent(actor A, ev Event) EventResult[A]
}

// EventAdapter invokes the kind-specific handler for one event kind on an
// action, reporting whether the action implements it. The dispatch table
// maps kinds to adapters, so new kinds extend the table without touching
// the propagation algorithm.
type EventAdapter[A any] func(act Action[A], actor A, ev Event) (EventResult[A], bool)

func adapt[A any, E Event, H any](call func(H, A, E) EventResult[A]) EventAdapter[A] {
	return func(act Action[A], actor A, ev Event) (EventResult[A], bool) {
		h, ok := any(act).(H)
		if !ok {
			return EventResult[A]{}, false
		}
		e, ok := ev.(E)
		if !ok {
			return EventResult[A]{}, false
		}
		return call(h, actor, e), true
	}
}

func defaultAdapters[A any]() map[EventKind]EventAdapter[A] {
	return map[EventKind]EventAdapter[A]{
		EventLeaveGround:                  adapt(LeaveGroundHandler[A].OnLeaveGround),
		EventLandOnGround:                 adapt(LandOnGroundHandler[A].OnLandOnGround),
		EventContact:                      adapt(ContactHandler[A].OnContact),
		EventMoveToSuccess:                adapt(MoveToSuccessHandler[A].OnMoveToSuccess),
		EventMoveToFailure:                adapt(MoveToFailureHandler[A].OnMoveToFailure),
		EventStuck:                        adapt(StuckHandler[A].OnStuck),
		EventUnStuck:                      adapt(UnStuckHandler[A].OnUnStuck),
		EventPostureChanged:               adapt(PostureChangedHandler[A].OnPostureChanged),
		EventRegionChanged:                adapt(RegionChangedHandler[A].OnRegionChanged),
		EventModelChanged:                 adapt(ModelChangedHandler[A].OnModelChanged),
		EventAnimationActivityComplete:    adapt(AnimationActivityCompleteHandler[A].OnAnimationActivityComplete),
		EventAnimationActivityInterrupted: adapt(AnimationActivityInterruptedHandler[A].OnAnimationActivityInterrupted),
		EventAnimationEvent:               adapt(AnimationEventHandler[A].OnAnimationEvent),
		EventIgnited:                      adapt(IgnitedHandler[A].OnIgnited),
		EventInjured:                      adapt(InjuredHandler[A].OnInjured),
		EventKilled:                       adapt(KilledHandler[A].OnKilled),
		EventOtherKilled:                  adapt(OtherKilledHandler[A].OnOtherKilled),
		EventBlinded:                      adapt(BlindedHandler[A].OnBlinded),
		EventShoved:                       adapt(ShovedHandler[A].OnShoved),
		EventHitByProjectile:              adapt(HitByProjectileHandler[A].OnHitByProjectile),
		EventEnteredHazard:                adapt(EnteredHazardHandler[A].OnEnteredHazard),
		EventSight:                        adapt(SightHandler[A].OnSight),
		EventLostSight:                    adapt(LostSightHandler[A].OnLostSight),
		EventThreatChanged:                adapt(ThreatChangedHandler[A].OnThreatChanged),
		EventSound:                        adapt(SoundHandler[A].OnSound),
		EventSpokeConcept:                 adapt(SpokeConceptHandler[A].OnSpokeConcept),
		EventPickedUp:                     adapt(PickedUpHandler[A].OnPickedUp),
		EventDropped:                      adapt(DroppedHandler[A].OnDropped),
		EventCommandAttack:                adapt(CommandAttackHandler[A].OnCommandAttack),
		EventCommandAssault:               adapt(CommandAssaultHandler[A].OnCommandAssault),
		EventCommandApproach:              adapt(CommandApproachHandler[A].OnCommandApproach),
		EventCommandApproachEntity:        adapt(CommandApproachEntityHandler[A].OnCommandApproachEntity),
		EventCommandRetreat:               adapt(CommandRetreatHandler[A].OnCommandRetreat),
		EventCommandPause:                 adapt(CommandPauseHandler[A].OnCommandPause),
		EventCommandResume:                adapt(CommandResumeHandler[A].OnCommandResume),
		EventCommandString:                adapt(CommandStringHandler[A].OnCommandString),
	}
}

// HandleKind registers or replaces the adapter for an event kind. Use it to
// give host-defined kinds first-class dispatch instead of the EventHandler
// fallback.
func (b *Behavior[A]) HandleKind(kind EventKind, adapter EventAdapter[A]) {
	if b.handlers == nil {
		b.handlers = defaultAdapters[A]()
	}
	b.handlers[kind] = adapter
}

// deliver offers one event to one action and reports whether the action
// handled it at all.
func (b *Behavior[A]) deliver(act Action[A], actor A, ev Event) (EventResult[A], bool) {
	if b.handlers == nil {
		b.handlers = defaultAdapters[A]()
	}
	if adapter, ok := b.handlers[ev.Kind()]; ok {
		if res, handled := adapter(act, actor, ev); handled {
			return res, true
		}
	}
	if h, ok := any(act).(EventHandler[A]); ok {
		return h.HandleEvent(actor, ev), true
	}
	return EventResult[A]{}, false
}

// DispatchEvent propagates an event through the active action stack. At
// each nesting level the active action gets first refusal and the event
// walks down through buried actions until one proposes a non-continue
// result, which is stored in that action's pending slot pending the next
// update. The event then propagates into the active child level.
//
// Events are never applied immediately; an action's code can never observe
// the stack changing out from under it mid-execution.
func (b *Behavior[A]) DispatchEvent(actor A, ev Event) {
	if isNilActor(actor) || ev == nil || b.IsEmpty() {
		return
	}
	b.dispatchLevel(b.top, actor, ev)
}

func (b *Behavior[A]) dispatchLevel(top arena.Handle, actor A, ev Event) {
	n := b.nodes.Get(top)
	if n == nil || !n.started {
		return
	}

	// active action first, then down through the buried chain
	h := top
	for !h.IsZero() {
		hn := b.nodes.Get(h)
		if hn == nil {
			break
		}
		res, handled := b.deliver(hn.action, actor, ev)
		if handled && !res.IsContinue() {
			b.storePendingEvent(h, res, ev.Kind())
			break
		}
		h = hn.buried
	}

	if child := b.nodes.Get(top).child; !child.IsZero() {
		b.dispatchLevel(child, actor, ev)
	}
}

// storePendingEvent arbitrates a proposed result against the slot's
// current occupant. A proposal wins on strictly higher priority, or on
// equal priority when the occupant is a Sustain; otherwise the first
// proposal is kept and the newcomer is discarded. Either way, the losing
// proposal's attached action is disposed immediately.
func (b *Behavior[A]) storePendingEvent(h arena.Handle, res EventResult[A], kind EventKind) {
	if res.IsContinue() {
		return
	}
	n := b.nodes.Get(h)
	if n == nil {
		return
	}

	switch {
	case res.priority > n.pending.priority:
		if n.pending.target != nil {
			disposeAction(n.pending.target)
		}
		n.pending = res

	case res.priority == n.pending.priority && n.pending.kind == ResultSustain:
		// sustain never blocks an equal-priority override
		if n.pending.target != nil {
			disposeAction(n.pending.target)
		}
		n.pending = res

	default:
		if res.priority == PriorityCritical {
			b.warn("critical event result lost to arbitration",
				slog.String("event", string(kind)),
				slog.String("action", n.action.Name()),
				slog.String("proposed", res.kind.String()),
				slog.String("held", n.pending.kind.String()))
		}
		if res.target != nil {
			disposeAction(res.target)
		}
	}
}
