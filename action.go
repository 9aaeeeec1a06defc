package behaviorkit

import (
	"time"

	"github.com/felixgeelhaar/behaviorkit/internal/arena"
)

// Action is one unit of behavior for one actor. Actions nest (an action may
// contain a child action) and stack (an action may be suspended beneath an
// interrupting action). Implementations must embed Base, which provides
// no-op defaults for every entry point except Name.
//
// The engine takes ownership of an action when it appears in a Result or is
// installed as a behavior root; the object must not be reused afterwards.
type Action[A any] interface {
	// Name returns the stable name of this action. Names are used for
	// debugging and lineage output and need not be unique.
	Name() string

	// OnStart is called once when the action becomes active. It may itself
	// request another transition, which is applied before the next tick.
	OnStart(actor A, prior Action[A]) Result[A]

	// Update does the work of the action, once per tick while active.
	// It is possible for Update to never run between an OnStart/OnEnd pair
	// when an immediate transition occurs first.
	Update(actor A, interval time.Duration) Result[A]

	// OnEnd is invoked exactly once when the action is ended for any reason.
	OnEnd(actor A, next Action[A])

	// OnSuspend is called when another action is pushed on top of this one.
	// Only Continue and Done are meaningful results; anything else is
	// treated as Continue (stay suspended).
	OnSuspend(actor A, interrupter Action[A]) Result[A]

	// OnResume is called when the action directly above this one in the
	// stack finishes and control returns here.
	OnResume(actor A, interrupter Action[A]) Result[A]

	// InitialContainedAction optionally spawns a nested child action,
	// invoked once when this action starts. Return nil for none.
	InitialContainedAction(actor A) Action[A]

	// base ties the action to its node; implemented by Base.
	base() *baseState[A]
}

// Disposer is implemented by actions that hold resources needing explicit
// release. Dispose is called exactly once, when the engine relinquishes
// ownership of the action: after it has ended and been replaced, or when a
// never-started action attached to a discarded event proposal is dropped.
type Disposer interface {
	Dispose()
}

// baseState is the engine-side bookkeeping shared by every action.
type baseState[A any] struct {
	behavior *Behavior[A]
	self     arena.Handle
	actor    A
	bound    bool
}

// Base supplies default no-op implementations of the Action entry points
// and the result constructors used to request transitions. Embed it by
// value in every action implementation:
//
//	type Patrol struct {
//	    behaviorkit.Base[*Bot]
//	}
//
//	func (p *Patrol) Name() string { return "patrol" }
type Base[A any] struct {
	state baseState[A]
}

func (b *Base[A]) base() *baseState[A] { return &b.state }

// OnStart returns Continue by default.
func (b *Base[A]) OnStart(actor A, prior Action[A]) Result[A] { return b.Continue() }

// Update returns Continue by default.
func (b *Base[A]) Update(actor A, interval time.Duration) Result[A] { return b.Continue() }

// OnEnd does nothing by default.
func (b *Base[A]) OnEnd(actor A, next Action[A]) {}

// OnSuspend returns Continue (stay suspended) by default.
func (b *Base[A]) OnSuspend(actor A, interrupter Action[A]) Result[A] { return b.Continue() }

// OnResume returns Continue by default.
func (b *Base[A]) OnResume(actor A, interrupter Action[A]) Result[A] { return b.Continue() }

// InitialContainedAction returns nil (no child) by default.
func (b *Base[A]) InitialContainedAction(actor A) Action[A] { return nil }

// --- result constructors ---

// Continue keeps executing this action next tick.
func (b *Base[A]) Continue() Result[A] {
	return Result[A]{kind: ResultContinue}
}

// ChangeTo requests replacing this action with next.
func (b *Base[A]) ChangeTo(next Action[A], reason string) Result[A] {
	return Result[A]{kind: ResultChangeTo, target: next, reason: reason}
}

// SuspendFor requests suspending this action beneath next. It clears this
// action's own pending event slot; otherwise the freshly pushed action
// would immediately be judged out of scope by the pending change.
func (b *Base[A]) SuspendFor(next Action[A], reason string) Result[A] {
	if b.state.bound && b.state.behavior != nil {
		if n := b.state.behavior.nodes.Get(b.state.self); n != nil {
			if n.pending.target != nil {
				disposeAction(n.pending.target)
			}
			n.pending = EventResult[A]{}
		}
	}
	return Result[A]{kind: ResultSuspendFor, target: next, reason: reason}
}

// Done requests finishing this action, resuming whatever it buried.
func (b *Base[A]) Done(reason string) Result[A] {
	return Result[A]{kind: ResultDone, reason: reason}
}

// --- event result constructors ---

// TryContinue proposes no change.
func (b *Base[A]) TryContinue(priority Priority) EventResult[A] {
	return EventResult[A]{Result: Result[A]{kind: ResultContinue}, priority: priority}
}

// TryChangeTo proposes replacing this action with next.
func (b *Base[A]) TryChangeTo(next Action[A], priority Priority, reason string) EventResult[A] {
	return EventResult[A]{Result: Result[A]{kind: ResultChangeTo, target: next, reason: reason}, priority: priority}
}

// TrySuspendFor proposes suspending the stack for next.
func (b *Base[A]) TrySuspendFor(next Action[A], priority Priority, reason string) EventResult[A] {
	return EventResult[A]{Result: Result[A]{kind: ResultSuspendFor, target: next, reason: reason}, priority: priority}
}

// TryDone proposes finishing this action.
func (b *Base[A]) TryDone(priority Priority, reason string) EventResult[A] {
	return EventResult[A]{Result: Result[A]{kind: ResultDone, reason: reason}, priority: priority}
}

// TrySustain proposes keeping the current activity; at equal priority it
// never blocks a later proposal.
func (b *Base[A]) TrySustain(priority Priority, reason string) EventResult[A] {
	return EventResult[A]{Result: Result[A]{kind: ResultSustain, reason: reason}, priority: priority}
}

// --- accessors, valid once the action has started ---

// Actor returns the actor performing this action. Valid just before
// OnStart is invoked and until the action ends.
func (b *Base[A]) Actor() A {
	return b.state.actor
}

// Behavior returns the container driving this action, or nil before start.
func (b *Base[A]) Behavior() *Behavior[A] {
	if !b.state.bound {
		return nil
	}
	return b.state.behavior
}

func (b *Base[A]) node() *node[A] {
	if !b.state.bound || b.state.behavior == nil {
		return nil
	}
	return b.state.behavior.nodes.Get(b.state.self)
}

// Parent returns the action this one is running inside of, or nil.
func (b *Base[A]) Parent() Action[A] {
	if n := b.node(); n != nil {
		if p := b.state.behavior.nodes.Get(n.parent); p != nil {
			return p.action
		}
	}
	return nil
}

// ActiveChild returns the currently running nested action, or nil.
func (b *Base[A]) ActiveChild() Action[A] {
	if n := b.node(); n != nil {
		if c := b.state.behavior.nodes.Get(n.child); c != nil {
			return c.action
		}
	}
	return nil
}

// BuriedUnder returns the action just beneath this one in the stack, the
// one control resumes to when this action finishes. Nil at the bottom.
func (b *Base[A]) BuriedUnder() Action[A] {
	if n := b.node(); n != nil {
		if u := b.state.behavior.nodes.Get(n.buried); u != nil {
			return u.action
		}
	}
	return nil
}

// CoveringMe returns the action just above this one in the stack, or nil
// when this action is on top.
func (b *Base[A]) CoveringMe() Action[A] {
	if n := b.node(); n != nil {
		if c := b.state.behavior.nodes.Get(n.covering); c != nil {
			return c.action
		}
	}
	return nil
}

// IsStarted reports whether OnStart has run and OnEnd has not.
func (b *Base[A]) IsStarted() bool {
	n := b.node()
	return n != nil && n.started
}

// IsSuspended reports whether this action is currently buried beneath an
// interrupting action.
func (b *Base[A]) IsSuspended() bool {
	n := b.node()
	return n != nil && n.suspended
}
