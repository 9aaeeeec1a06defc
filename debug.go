package behaviorkit

import (
	"strings"

	"github.com/felixgeelhaar/behaviorkit/internal/arena"
)

// IsNamed reports whether this action's name matches, case-insensitively.
func (b *Base[A]) IsNamed(name string) bool {
	n := b.node()
	return n != nil && strings.EqualFold(n.action.Name(), name)
}

// FullName returns the slash-separated lineage of this action from the
// outermost parent down, like "Root/Patrol/Scan".
func (b *Base[A]) FullName() string {
	n := b.node()
	if n == nil {
		return ""
	}
	names := []string{n.action.Name()}
	for p := b.state.behavior.nodes.Get(n.parent); p != nil; p = b.state.behavior.nodes.Get(p.parent) {
		names = append(names, p.action.Name())
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString(names[i])
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// DebugString renders this action and everything below it. Nested children
// appear in parentheses and suspended actions follow "<<", so a scanning
// action buried under an investigation reads
//
//	Investigate( LookAround )<<Patrol( Scan )
func (b *Base[A]) DebugString() string {
	n := b.node()
	if n == nil {
		return ""
	}
	var sb strings.Builder
	b.state.behavior.writeStack(&sb, b.state.self)
	return sb.String()
}

// DebugString renders the full active stack of the behavior.
func (b *Behavior[A]) DebugString() string {
	if b.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	b.writeStack(&sb, b.top)
	return sb.String()
}

func (b *Behavior[A]) writeStack(sb *strings.Builder, h arena.Handle) {
	for !h.IsZero() {
		n := b.nodes.Get(h)
		if n == nil {
			return
		}
		sb.WriteString(n.action.Name())
		if !n.child.IsZero() {
			sb.WriteString("( ")
			b.writeStack(sb, n.child)
			sb.WriteString(" )")
		}
		if !n.buried.IsZero() {
			sb.WriteString("<<")
		}
		h = n.buried
	}
}
