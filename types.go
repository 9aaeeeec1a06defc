package behaviorkit

// Entity is an opaque handle to a host-owned game object. The engine never
// constructs, inspects, or retains entities; it only passes them through
// events and queries.
type Entity any

// Vector is a world-space position supplied by the host with positional
// events and aim-point queries.
type Vector struct {
	X, Y, Z float64
}

// QueryResult is a three-valued answer to a contextual query. Undefined
// means "no opinion" and causes the query to fall through to the next
// action in the traversal order.
type QueryResult int

const (
	// QueryUndefined defers the answer to less specific behavior.
	QueryUndefined QueryResult = iota
	// QueryNo answers the query negatively.
	QueryNo
	// QueryYes answers the query affirmatively.
	QueryYes
)

// String returns the string representation of a QueryResult.
func (q QueryResult) String() string {
	switch q {
	case QueryNo:
		return "no"
	case QueryYes:
		return "yes"
	default:
		return "undefined"
	}
}
