package behaviorkit

// ResultKind is the tagged outcome of an action entry point or event handler.
type ResultKind int

const (
	// ResultContinue keeps executing the current action next tick.
	ResultContinue ResultKind = iota
	// ResultChangeTo replaces the current action with a new one.
	ResultChangeTo
	// ResultSuspendFor puts the current action on hold beneath a new one.
	ResultSuspendFor
	// ResultDone finishes the current action and resumes whatever it buried.
	ResultDone
	// ResultSustain is used by event handlers to say "keep doing what I'm
	// doing"; it causes no structural change.
	ResultSustain
)

// String returns the string representation of a ResultKind.
func (k ResultKind) String() string {
	switch k {
	case ResultChangeTo:
		return "change-to"
	case ResultSuspendFor:
		return "suspend-for"
	case ResultDone:
		return "done"
	case ResultSustain:
		return "sustain"
	default:
		return "continue"
	}
}

// Priority ranks a desired event result during arbitration.
type Priority int

const (
	// PriorityNone marks an empty pending slot.
	PriorityNone Priority = iota
	// PriorityTry results may be used or tossed out, either is fine.
	PriorityTry
	// PriorityImportant results should be honored if at all possible.
	PriorityImportant
	// PriorityCritical results must be honored; discarding one is reported
	// as a diagnostic.
	PriorityCritical
)

// String returns the string representation of a Priority.
func (p Priority) String() string {
	switch p {
	case PriorityTry:
		return "try"
	case PriorityImportant:
		return "important"
	case PriorityCritical:
		return "critical"
	default:
		return "none"
	}
}

// Result is the outcome of OnStart, Update, OnSuspend, or OnResume.
// Do not assemble one directly; use the constructors on Base.
type Result[A any] struct {
	kind   ResultKind
	target Action[A]
	reason string
}

// Kind returns the result's kind.
func (r Result[A]) Kind() ResultKind { return r.kind }

// Reason returns the diagnostic reason attached to the result, if any.
func (r Result[A]) Reason() string { return r.reason }

// Target returns the action the result wants to transition to, if any.
func (r Result[A]) Target() Action[A] { return r.target }

// IsDone reports whether the result finishes the current action.
func (r Result[A]) IsDone() bool { return r.kind == ResultDone }

// IsContinue reports whether the result causes no transition.
func (r Result[A]) IsContinue() bool { return r.kind == ResultContinue }

// IsRequestingChange reports whether the result wants a structural change
// to the action stack.
func (r Result[A]) IsRequestingChange() bool {
	return r.kind == ResultChangeTo || r.kind == ResultSuspendFor || r.kind == ResultDone
}

// EventResult is the desired outcome proposed by an event handler. It may
// or may not be committed, depending on other results proposed before the
// next update. The zero value is an empty "continue" proposal.
type EventResult[A any] struct {
	Result[A]
	priority Priority
}

// Priority returns the arbitration priority of the proposal.
func (r EventResult[A]) Priority() Priority { return r.priority }

func continueResult[A any]() Result[A] {
	return Result[A]{kind: ResultContinue}
}

func changeToResult[A any](target Action[A], reason string) Result[A] {
	return Result[A]{kind: ResultChangeTo, target: target, reason: reason}
}

func doneResult[A any](reason string) Result[A] {
	return Result[A]{kind: ResultDone, reason: reason}
}
