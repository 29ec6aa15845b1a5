package rules

import "github.com/limaJavier/eligibility/internal/catalog"

// Context is the snapshot of a student's academic state a condition is
// evaluated against. It is total: every field is always present, with nil
// as the explicit sentinel for "not enrolled" on course and sequence, so a
// condition can never be invoked with a field it requires missing.
// Contexts are assembled per evaluation call, owned by the caller and
// never retained or mutated by the evaluator.
type Context struct {
	UnitsCompleted   UnitSet
	UnitsEnrolled    UnitSet
	EnrolledCourse   *catalog.Course
	EnrolledSequence *catalog.Sequence
	CurrentWAM       float64
}

// NewContext assembles an evaluation context from catalog values.
// Duplicate units collapse into their set; completed and enrolled are
// disjoint in meaning but not enforced disjoint here.
func NewContext(
	completed []catalog.Unit,
	enrolled []catalog.Unit,
	course *catalog.Course,
	sequence *catalog.Sequence,
	wam float64,
) Context {
	return Context{
		UnitsCompleted:   NewUnitSet(completed...),
		UnitsEnrolled:    NewUnitSet(enrolled...),
		EnrolledCourse:   course,
		EnrolledSequence: sequence,
		CurrentWAM:       wam,
	}
}
