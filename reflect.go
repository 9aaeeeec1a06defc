package behaviorkit

import "github.com/felixgeelhaar/behaviorkit/internal/arena"

// StackFrame is a point-in-time copy of one action node, safe to hold
// after the stack has moved on. Child is the nested action level, Buried
// the suspended action beneath this one.
type StackFrame struct {
	Name      string      `json:"name"`
	Started   bool        `json:"started"`
	Suspended bool        `json:"suspended,omitempty"`
	Child     *StackFrame `json:"child,omitempty"`
	Buried    *StackFrame `json:"buried,omitempty"`
}

// Snapshot copies the current active stack into a StackFrame tree, or nil
// for an empty behavior.
func (b *Behavior[A]) Snapshot() *StackFrame {
	if b.IsEmpty() {
		return nil
	}
	return b.frame(b.top)
}

func (b *Behavior[A]) frame(h arena.Handle) *StackFrame {
	n := b.nodes.Get(h)
	if n == nil {
		return nil
	}
	f := &StackFrame{
		Name:      n.action.Name(),
		Started:   n.started,
		Suspended: n.suspended,
	}
	if !n.child.IsZero() {
		f.Child = b.frame(n.child)
	}
	if !n.buried.IsZero() {
		f.Buried = b.frame(n.buried)
	}
	return f
}

// Inspect returns the snapshot of a behavior's active stack. It exists so
// callers holding behaviors of different actor types behind one interface
// can still expose them uniformly; see the export package.
func Inspect[A any](b *Behavior[A]) *StackFrame {
	if b == nil {
		return nil
	}
	return b.Snapshot()
}
