package rules

import "github.com/samber/lo"

// entry pairs a condition with its composition polarity. A negated entry
// is required to evaluate to false, which is how violation-signaling
// conditions such as mutual exclusion block fulfillment instead of
// trivially satisfying it.
type entry struct {
	condition Condition
	negated   bool
}

// Constraint is the conjunction of the conditions governing enrollment in
// a unit, course or sequence: it is fulfilled only if every appended
// condition holds. Conditions are appended during rule setup; appending
// must complete before any concurrent evaluation begins, after which a
// constraint is read-only and safe to evaluate from multiple goroutines.
// A constraint with no conditions is vacuously fulfilled.
type Constraint struct {
	entries []entry
}

func NewConstraint(conditions ...Condition) *Constraint {
	constraint := &Constraint{entries: make([]entry, 0, len(conditions))}
	for _, condition := range conditions {
		constraint.Append(condition)
	}
	return constraint
}

// Append adds a condition that must evaluate to true for the constraint
// to be fulfilled.
func (constraint *Constraint) Append(condition Condition) {
	constraint.entries = append(constraint.entries, entry{condition: condition})
}

// AppendNegated adds a condition that must evaluate to false for the
// constraint to be fulfilled.
func (constraint *Constraint) AppendNegated(condition Condition) {
	constraint.entries = append(constraint.entries, entry{condition: condition, negated: true})
}

// IsFulfilled evaluates every appended condition against the same context
// and reduces the results by logical AND, with per-entry polarity applied.
// Conditions are pure, so evaluation order carries no meaning and repeated
// calls with an equal context return the same result.
func (constraint *Constraint) IsFulfilled(ctx Context) bool {
	return lo.EveryBy(constraint.entries, func(e entry) bool {
		return e.condition.Evaluate(ctx) != e.negated
	})
}

// Size reports the number of appended conditions.
func (constraint *Constraint) Size() int {
	return len(constraint.entries)
}
