package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConditionDefinition is the raw, untyped form of a single eligibility
// condition as it appears in a scenario file. Which fields are meaningful
// depends on Type; the rest are left at their zero value.
type ConditionDefinition struct {
	Type       string
	Units      []uint64
	Minimum    int
	MinimumWam float64 `mapstructure:"minimumWam"`
	Course     uint64
	Sequence   uint64
}

// Rule binds the conditions governing enrollment in a target unit.
type Rule struct {
	Unit       uint64
	Conditions []ConditionDefinition
}

// Student is the raw academic record of the student being evaluated.
// EnrolledCourse and EnrolledSequence are nil when the student is not
// enrolled in any.
type Student struct {
	UnitsCompleted   []uint64
	UnitsEnrolled    []uint64
	EnrolledCourse   *uint64
	EnrolledSequence *uint64
	CurrentWam       float64 `mapstructure:"currentWam"`
}

// ScenarioInput is a fully parsed scenario file: the catalog slices, the
// student record and the eligibility rules to evaluate against it.
type ScenarioInput struct {
	Units     []Unit
	Courses   []Course
	Sequences []Sequence
	Student   Student
	Rules     []Rule
}

// Unit resolves a unit id against the catalog.
func (input ScenarioInput) Unit(id uint64) (Unit, error) {
	unit, ok := lo.Find(input.Units, func(unit Unit) bool { return unit.Id == id })
	if !ok {
		return Unit{}, fmt.Errorf("unit %v is not in the catalog", id)
	}
	return unit, nil
}

// Course resolves a course id against the catalog.
func (input ScenarioInput) Course(id uint64) (Course, error) {
	course, ok := lo.Find(input.Courses, func(course Course) bool { return course.Id == id })
	if !ok {
		return Course{}, fmt.Errorf("course %v is not in the catalog", id)
	}
	return course, nil
}

// Sequence resolves a sequence id against the catalog.
func (input ScenarioInput) Sequence(id uint64) (Sequence, error) {
	sequence, ok := lo.Find(input.Sequences, func(sequence Sequence) bool { return sequence.Id == id })
	if !ok {
		return Sequence{}, fmt.Errorf("sequence %v is not in the catalog", id)
	}
	return sequence, nil
}

// ResolveUnits resolves a list of unit ids against the catalog, failing on
// the first dangling reference.
func (input ScenarioInput) ResolveUnits(ids []uint64) ([]Unit, error) {
	units := make([]Unit, 0, len(ids))
	for _, id := range ids {
		unit, err := input.Unit(id)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// InputFromJSON parses a scenario file into a ScenarioInput.
func InputFromJSON(file string) (ScenarioInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ScenarioInput{}, fmt.Errorf("cannot read scenario file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ScenarioInput{}, fmt.Errorf("cannot parse scenario file: %w", err)
	}

	var input ScenarioInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ScenarioInput{}, fmt.Errorf("cannot transform scenario: %w", err)
	}

	return input, nil
}
