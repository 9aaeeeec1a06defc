package behaviorkit

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/felixgeelhaar/behaviorkit/internal/arena"
)

// node is the engine-side record for one action on one stack. All links are
// arena handles, so a released node can never be reached through a stale
// reference.
type node[A any] struct {
	action Action[A]

	parent   arena.Handle // containing action; non-owning back-reference
	child    arena.Handle // ACTIVE contained action, top of the child stack
	buried   arena.Handle // action just beneath us that we resume to
	covering arena.Handle // action just above us that resumes to us

	started   bool
	suspended bool

	// pending holds the highest-priority desired result proposed by event
	// handlers since the last commit.
	pending EventResult[A]
}

// Behavior is the root container driving one actor's action stack. It owns
// every node in the stack; dropping the top reference via Reset or Release
// releases the whole structure.
//
// A Behavior is single-threaded: one Update per actor per tick, with events
// queued as proposals in between. Separate behaviors share no state and may
// be updated concurrently with each other.
type Behavior[A any] struct {
	name     string
	logger   *slog.Logger
	nodes    arena.Arena[node[A]]
	top      arena.Handle
	handlers map[EventKind]EventAdapter[A]
}

// Option configures a Behavior.
type Option[A any] func(*Behavior[A])

// WithName sets a name used in diagnostics.
func WithName[A any](name string) Option[A] {
	return func(b *Behavior[A]) { b.name = name }
}

// WithLogger installs a logger for transition traces (debug level) and
// dropped-critical diagnostics (warn level). Without one the engine is
// silent.
func WithLogger[A any](logger *slog.Logger) Option[A] {
	return func(b *Behavior[A]) { b.logger = logger }
}

// New creates a Behavior with the given root action. The root is installed
// unstarted; its OnStart runs on the first Update. A nil root yields an
// empty behavior.
func New[A any](root Action[A], opts ...Option[A]) *Behavior[A] {
	b := &Behavior[A]{}
	for _, opt := range opts {
		opt(b)
	}
	b.top = b.newNode(root)
	return b
}

// Name returns the behavior's diagnostic name.
func (b *Behavior[A]) Name() string { return b.name }

// IsEmpty reports whether this behavior contains no actions.
func (b *Behavior[A]) IsEmpty() bool {
	return b.nodes.Get(b.top) == nil
}

// Update executes one tick: pending event results are committed, the active
// child chain updates depth-first, and any requested transitions are applied
// synchronously before Update returns. A nil actor or empty behavior is a
// valid idle state and a no-op.
func (b *Behavior[A]) Update(actor A, interval time.Duration) {
	if isNilActor(actor) || b.IsEmpty() {
		return
	}
	res := b.invokeUpdate(b.top, actor, interval)
	b.top = b.applyResult(b.top, actor, res)
}

// Resume signals that the behavior has not been updated in a long time and
// cached internal state may be stale. It re-invokes OnResume on the top
// action with no interrupting action.
func (b *Behavior[A]) Resume(actor A) {
	if isNilActor(actor) || b.IsEmpty() {
		return
	}
	n := b.nodes.Get(b.top)
	res := n.action.OnResume(actor, nil)
	b.top = b.applyResult(b.top, actor, res)
}

// Reset deletes the entire current stack and installs root as a fresh,
// unstarted top action. No OnEnd callbacks fire; teardown is structural.
func (b *Behavior[A]) Reset(root Action[A]) {
	b.releaseAll()
	b.top = b.newNode(root)
}

// Release tears down the whole stack. The behavior is empty afterwards.
func (b *Behavior[A]) Release() {
	b.releaseAll()
	b.top = arena.Handle{}
}

// releaseAll digs down to the bottom of the burial chain and releases that;
// the cascade in releaseNode takes everything stacked above it along.
func (b *Behavior[A]) releaseAll() {
	bottom := b.top
	for {
		n := b.nodes.Get(bottom)
		if n == nil || n.buried.IsZero() {
			break
		}
		bottom = n.buried
	}
	b.releaseNode(bottom)
	b.top = arena.Handle{}
}

// newNode allocates a node for an action the engine is taking ownership of.
func (b *Behavior[A]) newNode(act Action[A]) arena.Handle {
	if act == nil {
		return arena.Handle{}
	}
	h, n := b.nodes.Alloc()
	n.action = act
	return h
}

// releaseNode releases a node, its child stacks, everything covering it,
// and any pending event target. The buried chain is intentionally left
// alone; owners release from the bottom up via releaseAll.
func (b *Behavior[A]) releaseNode(h arena.Handle) {
	n := b.nodes.Get(h)
	if n == nil {
		return
	}

	// if we are our parent's active child, the node beneath us takes over
	if p := b.nodes.Get(n.parent); p != nil && p.child == h {
		p.child = n.buried
	}

	// release the contained stack, topmost child first
	for c := n.child; !c.IsZero(); {
		next := arena.Handle{}
		if cn := b.nodes.Get(c); cn != nil {
			next = cn.buried
		}
		b.releaseNode(c)
		c = next
	}

	// we're going away, so the buried sibling is back on top
	if u := b.nodes.Get(n.buried); u != nil && u.covering == h {
		u.covering = arena.Handle{}
	}

	// cascade through anything stacked on top of us
	if !n.covering.IsZero() {
		b.releaseNode(n.covering)
	}

	n = b.nodes.Get(h) // cascades above may have touched our links
	if n == nil {
		return
	}
	if n.pending.target != nil {
		if n.pending.priority == PriorityCritical {
			b.warn("critical event result dropped at teardown",
				slog.String("action", n.action.Name()),
				slog.String("kind", n.pending.kind.String()))
		}
		disposeAction(n.pending.target)
	}
	disposeAction(n.action)
	b.nodes.Release(h)
}

func disposeAction[A any](act Action[A]) {
	if act == nil {
		return
	}
	if d, ok := any(act).(Disposer); ok {
		d.Dispose()
	}
}

// bindAction attaches an action to its node; valid just before OnStart so
// the action can be suspended immediately after starting.
func (b *Behavior[A]) bindAction(act Action[A], h arena.Handle, actor A) {
	st := act.base()
	st.behavior = b
	st.self = h
	st.actor = actor
	st.bound = true
}

func (b *Behavior[A]) trace(msg string, args ...any) {
	if b.logger != nil {
		if b.name != "" {
			args = append(args, slog.String("behavior", b.name))
		}
		b.logger.Debug(msg, args...)
	}
}

func (b *Behavior[A]) warn(msg string, args ...any) {
	if b.logger != nil {
		if b.name != "" {
			args = append(args, slog.String("behavior", b.name))
		}
		b.logger.Warn(msg, args...)
	}
}

// isNilActor reports whether the host handed us a nil actor handle. Value
// actors are never nil.
func isNilActor[A any](actor A) bool {
	v := reflect.ValueOf(actor)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
