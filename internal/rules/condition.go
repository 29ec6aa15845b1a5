package rules

// Condition is a single testable predicate over an evaluation context.
// Implementations are immutable once constructed and evaluation is pure:
// equal contexts always yield the same result, and no call mutates the
// condition or the context. Each implementation documents which context
// fields it consumes; every other field is ignored and cannot affect the
// result.
//
// The set of implementations is closed — the seven academic rule kinds
// below — and all of them are built through their New* constructors, which
// reject invalid configuration instead of deferring the defect into an
// evaluation-time boolean.
type Condition interface {
	// Evaluate reports whether the condition holds for the given context.
	Evaluate(ctx Context) bool
}
