package rules

import (
	"fmt"
	"math"

	"github.com/limaJavier/eligibility/internal/catalog"
)

// minimumUnitCount is fulfilled when at least minimum units from the
// reference set have been completed.
// Consumes: UnitsCompleted.
type minimumUnitCount struct {
	units   UnitSet
	minimum int
}

// NewMinimumUnitCount builds a condition requiring at least minimum
// completed units out of the given reference set. A negative minimum is a
// configuration error. An empty set with minimum 0 is trivially satisfied.
func NewMinimumUnitCount(units []catalog.Unit, minimum int) (Condition, error) {
	if minimum < 0 {
		return nil, fmt.Errorf("minimum unit count cannot be negative: %v", minimum)
	}
	return minimumUnitCount{units: NewUnitSet(units...), minimum: minimum}, nil
}

func (condition minimumUnitCount) Evaluate(ctx Context) bool {
	return condition.units.IntersectionSize(ctx.UnitsCompleted) >= condition.minimum
}

// prerequisitesFulfilled is fulfilled when every prerequisite unit has been
// completed. An empty prerequisite set is trivially satisfied.
// Consumes: UnitsCompleted.
type prerequisitesFulfilled struct {
	prerequisites UnitSet
}

func NewPrerequisitesFulfilled(prerequisites []catalog.Unit) Condition {
	return prerequisitesFulfilled{prerequisites: NewUnitSet(prerequisites...)}
}

func (condition prerequisitesFulfilled) Evaluate(ctx Context) bool {
	return ctx.UnitsCompleted.ContainsAll(condition.prerequisites)
}

// corequisitesFulfilled is fulfilled when every corequisite unit has been
// completed or is currently being completed: a unit finished in a prior
// term fulfills a corequisite just as one taken concurrently does.
// Consumes: UnitsCompleted, UnitsEnrolled.
type corequisitesFulfilled struct {
	corequisites UnitSet
}

func NewCorequisitesFulfilled(corequisites []catalog.Unit) Condition {
	return corequisitesFulfilled{corequisites: NewUnitSet(corequisites...)}
}

func (condition corequisitesFulfilled) Evaluate(ctx Context) bool {
	return ctx.UnitsCompleted.Union(ctx.UnitsEnrolled).ContainsAll(condition.corequisites)
}

// mutualExclusion signals a clash: it evaluates to true when any of the
// incompatible units has been completed or is currently being completed.
// Its polarity is the inverse of every other condition — true means the
// enrollment is blocked, not allowed — so it must be composed through
// Constraint.AppendNegated, never Append.
// Consumes: UnitsCompleted, UnitsEnrolled.
type mutualExclusion struct {
	incompatible UnitSet
}

func NewMutualExclusion(incompatible []catalog.Unit) Condition {
	return mutualExclusion{incompatible: NewUnitSet(incompatible...)}
}

func (condition mutualExclusion) Evaluate(ctx Context) bool {
	return condition.incompatible.IntersectsWith(ctx.UnitsCompleted.Union(ctx.UnitsEnrolled))
}

// enrolledInSequence is fulfilled when the student is enrolled in the
// given major/minor sequence.
// Consumes: EnrolledSequence.
type enrolledInSequence struct {
	sequence catalog.Sequence
}

func NewEnrolledInSequence(sequence catalog.Sequence) Condition {
	return enrolledInSequence{sequence: sequence}
}

func (condition enrolledInSequence) Evaluate(ctx Context) bool {
	return ctx.EnrolledSequence != nil && ctx.EnrolledSequence.Id == condition.sequence.Id
}

// enrolledInCourse is fulfilled when the student is enrolled in the given
// course.
// Consumes: EnrolledCourse.
type enrolledInCourse struct {
	course catalog.Course
}

func NewEnrolledInCourse(course catalog.Course) Condition {
	return enrolledInCourse{course: course}
}

func (condition enrolledInCourse) Evaluate(ctx Context) bool {
	return ctx.EnrolledCourse != nil && ctx.EnrolledCourse.Id == condition.course.Id
}

// minimumAverage is fulfilled when the student's weighted average mark is
// at least the configured minimum.
// Consumes: CurrentWAM.
type minimumAverage struct {
	minimum float64
}

// NewMinimumAverage builds a condition requiring a WAM of at least
// minimum. A negative or NaN minimum is a configuration error.
func NewMinimumAverage(minimum float64) (Condition, error) {
	if math.IsNaN(minimum) || minimum < 0 {
		return nil, fmt.Errorf("minimum WAM must be a non-negative number: %v", minimum)
	}
	return minimumAverage{minimum: minimum}, nil
}

func (condition minimumAverage) Evaluate(ctx Context) bool {
	return ctx.CurrentWAM >= condition.minimum
}
