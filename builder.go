package behaviorkit

import "time"

// FuncAction is an Action assembled from closures rather than a named
// struct. It is built with ActionBuilder and is convenient for small glue
// actions, prototypes, and tests.
type FuncAction[A any] struct {
	Base[A]
	name     string
	onStart  func(f *FuncAction[A], actor A, prior Action[A]) Result[A]
	onUpdate func(f *FuncAction[A], actor A, interval time.Duration) Result[A]
	onEnd    func(f *FuncAction[A], actor A, next Action[A])
	onSusp   func(f *FuncAction[A], actor A, interrupter Action[A]) Result[A]
	onResume func(f *FuncAction[A], actor A, interrupter Action[A]) Result[A]
	child    func(f *FuncAction[A], actor A) Action[A]
	events   map[EventKind]func(f *FuncAction[A], actor A, ev Event) EventResult[A]
}

// Name returns the builder-assigned name.
func (f *FuncAction[A]) Name() string { return f.name }

// OnStart runs the registered start closure, if any.
func (f *FuncAction[A]) OnStart(actor A, prior Action[A]) Result[A] {
	if f.onStart != nil {
		return f.onStart(f, actor, prior)
	}
	return f.Continue()
}

// Update runs the registered update closure, if any.
func (f *FuncAction[A]) Update(actor A, interval time.Duration) Result[A] {
	if f.onUpdate != nil {
		return f.onUpdate(f, actor, interval)
	}
	return f.Continue()
}

// OnEnd runs the registered end closure, if any.
func (f *FuncAction[A]) OnEnd(actor A, next Action[A]) {
	if f.onEnd != nil {
		f.onEnd(f, actor, next)
	}
}

// OnSuspend runs the registered suspend closure, if any.
func (f *FuncAction[A]) OnSuspend(actor A, interrupter Action[A]) Result[A] {
	if f.onSusp != nil {
		return f.onSusp(f, actor, interrupter)
	}
	return f.Continue()
}

// OnResume runs the registered resume closure, if any.
func (f *FuncAction[A]) OnResume(actor A, interrupter Action[A]) Result[A] {
	if f.onResume != nil {
		return f.onResume(f, actor, interrupter)
	}
	return f.Continue()
}

// InitialContainedAction runs the registered child factory, if any.
func (f *FuncAction[A]) InitialContainedAction(actor A) Action[A] {
	if f.child != nil {
		return f.child(f, actor)
	}
	return nil
}

// HandleEvent dispatches to the per-kind closures registered with Handle.
func (f *FuncAction[A]) HandleEvent(actor A, ev Event) EventResult[A] {
	if h, ok := f.events[ev.Kind()]; ok {
		return h(f, actor, ev)
	}
	return EventResult[A]{}
}

// ActionBuilder provides a fluent API for constructing FuncActions.
type ActionBuilder[A any] struct {
	action *FuncAction[A]
}

// NewAction creates a new ActionBuilder for an action with the given name.
func NewAction[A any](name string) *ActionBuilder[A] {
	return &ActionBuilder[A]{action: &FuncAction[A]{name: name}}
}

// OnStart sets the start hook.
func (b *ActionBuilder[A]) OnStart(fn func(f *FuncAction[A], actor A, prior Action[A]) Result[A]) *ActionBuilder[A] {
	b.action.onStart = fn
	return b
}

// OnUpdate sets the per-tick hook.
func (b *ActionBuilder[A]) OnUpdate(fn func(f *FuncAction[A], actor A, interval time.Duration) Result[A]) *ActionBuilder[A] {
	b.action.onUpdate = fn
	return b
}

// OnEnd sets the end hook.
func (b *ActionBuilder[A]) OnEnd(fn func(f *FuncAction[A], actor A, next Action[A])) *ActionBuilder[A] {
	b.action.onEnd = fn
	return b
}

// OnSuspend sets the suspension hook.
func (b *ActionBuilder[A]) OnSuspend(fn func(f *FuncAction[A], actor A, interrupter Action[A]) Result[A]) *ActionBuilder[A] {
	b.action.onSusp = fn
	return b
}

// OnResume sets the resumption hook.
func (b *ActionBuilder[A]) OnResume(fn func(f *FuncAction[A], actor A, interrupter Action[A]) Result[A]) *ActionBuilder[A] {
	b.action.onResume = fn
	return b
}

// WithInitialChild sets the factory for the nested child action.
func (b *ActionBuilder[A]) WithInitialChild(fn func(f *FuncAction[A], actor A) Action[A]) *ActionBuilder[A] {
	b.action.child = fn
	return b
}

// Handle registers a responder for one event kind.
func (b *ActionBuilder[A]) Handle(kind EventKind, fn func(f *FuncAction[A], actor A, ev Event) EventResult[A]) *ActionBuilder[A] {
	if b.action.events == nil {
		b.action.events = make(map[EventKind]func(f *FuncAction[A], actor A, ev Event) EventResult[A])
	}
	b.action.events[kind] = fn
	return b
}

// Build returns the assembled action.
func (b *ActionBuilder[A]) Build() *FuncAction[A] {
	return b.action
}
