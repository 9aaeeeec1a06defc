package behaviorkit

import (
	"log/slog"
	"time"

	"github.com/felixgeelhaar/behaviorkit/internal/arena"
)

// isOutOfScope reports whether any action buried underneath h has a pending
// exit or replacement. Actions above it must yield before that transition
// can be honored.
func (b *Behavior[A]) isOutOfScope(h arena.Handle) bool {
	n := b.nodes.Get(h)
	if n == nil {
		return false
	}
	for u := n.buried; !u.IsZero(); {
		un := b.nodes.Get(u)
		if un == nil {
			break
		}
		if un.pending.kind == ResultChangeTo || un.pending.kind == ResultDone {
			return true
		}
		u = un.buried
	}
	return false
}

// processPendingEvents commits pending event results for the stack whose
// top is h. A requesting change on the top node wins; failing that, the
// nearest buried SuspendFor surfaces so a deeply buried action can still
// interrupt the stack. Consumed slots are cleared so a later resume does
// not replay them.
func (b *Behavior[A]) processPendingEvents(h arena.Handle) Result[A] {
	n := b.nodes.Get(h)
	if n == nil {
		return continueResult[A]()
	}

	if n.pending.IsRequestingChange() {
		res := n.pending.Result
		n.pending = EventResult[A]{}
		return res
	}

	for u := n.buried; !u.IsZero(); {
		un := b.nodes.Get(u)
		if un == nil {
			break
		}
		if un.pending.kind == ResultSuspendFor {
			res := un.pending.Result
			un.pending = EventResult[A]{}
			return res
		}
		u = un.buried
	}

	return continueResult[A]()
}

// invokeUpdate runs one tick for the node at h and its active child chain,
// returning the result to apply at this level.
func (b *Behavior[A]) invokeUpdate(h arena.Handle, actor A, interval time.Duration) Result[A] {
	n := b.nodes.Get(h)
	if n == nil {
		return continueResult[A]()
	}

	// an out-of-scope action must exit before the buried action's pending
	// transition is honored, so ordering is preserved
	if b.isOutOfScope(h) {
		return doneResult[A]("out of scope")
	}

	if !n.started {
		return changeToResult(n.action, "starting action")
	}

	if res := b.processPendingEvents(h); !res.IsContinue() {
		return res
	}

	// the child has the most specific behavior, so it updates first
	if child := n.child; !child.IsZero() {
		res := b.invokeUpdate(child, actor, interval)
		applied := b.applyResult(child, actor, res)
		if n = b.nodes.Get(h); n == nil {
			return continueResult[A]()
		}
		n.child = applied
	}

	return n.action.Update(actor, interval)
}

// invokeStart makes the node at h active. prior is the action being
// replaced or suspended (may be the node's own action on first start), and
// buriedH is what the new action sits on top of.
func (b *Behavior[A]) invokeStart(h arena.Handle, actor A, priorH arena.Handle, prior Action[A], buriedH arena.Handle) Result[A] {
	n := b.nodes.Get(h)
	if n == nil {
		return continueResult[A]()
	}

	// must be valid before OnStart runs, in case a suspend happens at once
	n.started = true
	b.bindAction(n.action, h, actor)

	// the new action takes the prior action's place in the hierarchy
	if pn := b.nodes.Get(priorH); pn != nil && priorH != h {
		n.parent = pn.parent
	}
	if p := b.nodes.Get(n.parent); p != nil {
		p.child = h
	}

	n.buried = buriedH
	if u := b.nodes.Get(buriedH); u != nil {
		u.covering = h
	}
	// we are on top of the stack; whatever covered the prior action was
	// ended before we started
	n.covering = arena.Handle{}

	// spawn the optional contained action
	if childAct := n.action.InitialContainedAction(actor); childAct != nil {
		ch := b.newNode(childAct)
		b.nodes.Get(ch).parent = h
		b.nodes.Get(h).child = ch
		applied := b.applyResult(ch, actor, changeToResult(childAct, "starting child action"))
		if cur := b.nodes.Get(h); cur != nil {
			cur.child = applied
		}
	}

	cur := b.nodes.Get(h)
	if cur == nil {
		return continueResult[A]()
	}
	return cur.action.OnStart(actor, prior)
}

// invokeEnd fires OnEnd for the node's child chain, itself, and anything
// stacked on top of it. It does not release resources or disturb links;
// the ended action must stay valid as an argument to its successor's
// OnStart or OnSuspend.
func (b *Behavior[A]) invokeEnd(h arena.Handle, actor A, next Action[A]) {
	n := b.nodes.Get(h)
	if n == nil || !n.started {
		return
	}
	n.started = false

	for c := n.child; !c.IsZero(); {
		cn := b.nodes.Get(c)
		if cn == nil {
			break
		}
		buried := cn.buried
		b.invokeEnd(c, actor, next)
		c = buried
	}

	n.action.OnEnd(actor, next)

	if cv := b.nodes.Get(h); cv != nil && !cv.covering.IsZero() {
		b.invokeEnd(cv.covering, actor, next)
	}
}

// invokeSuspend buries the node at h beneath an interrupting action and
// returns the handle left on top at this level. That is h itself unless
// OnSuspend asks to end instead of suspending, in which case it is
// whatever h was sitting on.
func (b *Behavior[A]) invokeSuspend(h arena.Handle, actor A, interrupter Action[A]) arena.Handle {
	n := b.nodes.Get(h)
	if n == nil {
		return arena.Handle{}
	}

	if child := n.child; !child.IsZero() {
		suspended := b.invokeSuspend(child, actor, interrupter)
		if n = b.nodes.Get(h); n == nil {
			return arena.Handle{}
		}
		n.child = suspended
	}

	n.suspended = true
	res := n.action.OnSuspend(actor, interrupter)

	if res.IsDone() {
		// the action wants to be replaced instead of suspended
		b.invokeEnd(h, actor, nil)
		buried := arena.Handle{}
		if cur := b.nodes.Get(h); cur != nil {
			buried = cur.buried
		}
		b.trace("action collapsed on suspend", slog.String("action", b.actionName(h)))
		b.releaseNode(h)
		return buried
	}

	return h
}

// invokeResume reactivates the node at h after the action covering it
// finished. A node with a change already pending from a prior event is not
// actually resumed; the pending transition is honored on the next tick.
func (b *Behavior[A]) invokeResume(h arena.Handle, actor A, interrupter Action[A]) Result[A] {
	n := b.nodes.Get(h)
	if n == nil || !n.suspended {
		return continueResult[A]()
	}

	if n.pending.IsRequestingChange() {
		return continueResult[A]()
	}

	n.suspended = false
	n.covering = arena.Handle{}

	// we are once again our parent's active child
	if p := b.nodes.Get(n.parent); p != nil {
		p.child = h
	}

	if child := n.child; !child.IsZero() {
		res := b.invokeResume(child, actor, interrupter)
		applied := b.applyResult(child, actor, res)
		if n = b.nodes.Get(h); n == nil {
			return continueResult[A]()
		}
		n.child = applied
	}

	return n.action.OnResume(actor, interrupter)
}

// applyResult commits a result to an actual stack mutation and returns the
// handle now current at this level. Transitions chain synchronously: a
// result produced by OnStart or OnResume is applied before returning.
func (b *Behavior[A]) applyResult(h arena.Handle, actor A, res Result[A]) arena.Handle {
	switch res.kind {

	case ResultChangeTo:
		target := res.target
		if target == nil {
			// malformed transition; degrade to Continue
			b.trace("change-to with no target ignored", slog.String("action", b.actionName(h)))
			return h
		}
		n := b.nodes.Get(h)
		if n == nil {
			return h
		}
		same := n.action == target
		b.trace("action change",
			slog.String("from", b.actionName(h)),
			slog.String("to", target.Name()),
			slog.String("reason", res.reason))

		b.invokeEnd(h, actor, target)

		prior := b.nodes.Get(h).action
		buried := b.nodes.Get(h).buried

		var newH arena.Handle
		if same {
			// re-entrant start: the node restarts in place; the ended
			// child stack is dropped so the restart spawns fresh
			cur := b.nodes.Get(h)
			for c := cur.child; !c.IsZero(); {
				next := arena.Handle{}
				if cn := b.nodes.Get(c); cn != nil {
					next = cn.buried
				}
				b.releaseNode(c)
				c = next
			}
			b.nodes.Get(h).child = arena.Handle{}
			newH = h
		} else {
			newH = b.newNode(target)
		}

		startRes := b.invokeStart(newH, actor, h, prior, buried)

		// the ended node stays alive until the start result has fully
		// applied, in case a chained transition still refers to it
		out := b.applyResult(newH, actor, startRes)
		if !same {
			b.releaseNode(h)
		}
		return out

	case ResultSuspendFor:
		target := res.target
		if target == nil {
			b.trace("suspend-for with no target ignored", slog.String("action", b.actionName(h)))
			return h
		}

		// the interrupting action always goes on the very top of the stack
		top := h
		for {
			tn := b.nodes.Get(top)
			if tn == nil || tn.covering.IsZero() {
				break
			}
			top = tn.covering
		}

		b.trace("action suspended",
			slog.String("suspended", b.actionName(top)),
			slog.String("for", target.Name()),
			slog.String("reason", res.reason))

		top = b.invokeSuspend(top, actor, target)

		var prior Action[A]
		if tn := b.nodes.Get(top); tn != nil {
			prior = tn.action
		}
		newH := b.newNode(target)
		startRes := b.invokeStart(newH, actor, top, prior, top)
		return b.applyResult(newH, actor, startRes)

	case ResultDone:
		n := b.nodes.Get(h)
		if n == nil {
			return arena.Handle{}
		}
		resumed := n.buried

		var next Action[A]
		if rn := b.nodes.Get(resumed); rn != nil {
			next = rn.action
		}
		b.trace("action done",
			slog.String("action", b.actionName(h)),
			slog.String("reason", res.reason))

		b.invokeEnd(h, actor, next)

		if resumed.IsZero() {
			// all actions complete; the stack is empty
			b.releaseNode(h)
			return arena.Handle{}
		}

		resumeRes := b.invokeResume(resumed, actor, b.nodes.Get(h).action)
		b.releaseNode(h)
		return b.applyResult(resumed, actor, resumeRes)

	default:
		// Continue and Sustain leave the stack alone
		return h
	}
}

func (b *Behavior[A]) actionName(h arena.Handle) string {
	if n := b.nodes.Get(h); n != nil {
		return n.action.Name()
	}
	return ""
}
