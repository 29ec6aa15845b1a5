package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samber/lo"

	"github.com/limaJavier/eligibility/internal/catalog"
	"github.com/limaJavier/eligibility/internal/rules"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the scenario file")
	unitPtr := flag.Uint64("unit", 0, "Evaluate only the rule governing this unit id; 0 evaluates every rule in the scenario")
	outFilePathPtr := flag.String("out", "", "Path to the file where the verdicts will be written; if empty, they'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	targetUnit := *unitPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a scenario file must be specified")
	}

	// Extract input
	input, err := catalog.InputFromJSON(filePath)
	if err != nil {
		log.Fatalf("cannot parse scenario file: %v", err)
	}

	// Assemble the student's evaluation context
	ctx, err := buildContext(input)
	if err != nil {
		log.Fatalf("cannot build evaluation context: %v", err)
	}

	// Evaluate each rule's constraint against the context
	verdicts := make(map[uint64]bool)
	for _, rule := range input.Rules {
		if targetUnit != 0 && rule.Unit != targetUnit {
			continue
		}
		if _, err := input.Unit(rule.Unit); err != nil {
			log.Fatalf("rule targets an unknown unit: %v", err)
		}

		constraint, err := buildConstraint(rule, input)
		if err != nil {
			log.Fatalf("cannot build constraint for unit %v: %v", rule.Unit, err)
		}
		verdicts[rule.Unit] = constraint.IsFulfilled(ctx)
	}

	if targetUnit != 0 && len(verdicts) == 0 {
		log.Fatalf("no rule governs unit %v", targetUnit)
	}

	// Marshal verdicts into json
	verdictsJson, err := json.Marshal(verdicts)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(verdictsJson))
	} else {
		err := os.WriteFile(outFile, verdictsJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	if lo.EveryBy(lo.Values(verdicts), func(eligible bool) bool { return eligible }) {
		os.Exit(10)
	}
	os.Exit(15)
}

// buildContext resolves the student's raw record against the catalog into
// a total evaluation context.
func buildContext(input catalog.ScenarioInput) (rules.Context, error) {
	completed, err := input.ResolveUnits(input.Student.UnitsCompleted)
	if err != nil {
		return rules.Context{}, err
	}
	enrolled, err := input.ResolveUnits(input.Student.UnitsEnrolled)
	if err != nil {
		return rules.Context{}, err
	}

	var course *catalog.Course
	if input.Student.EnrolledCourse != nil {
		resolved, err := input.Course(*input.Student.EnrolledCourse)
		if err != nil {
			return rules.Context{}, err
		}
		course = &resolved
	}

	var sequence *catalog.Sequence
	if input.Student.EnrolledSequence != nil {
		resolved, err := input.Sequence(*input.Student.EnrolledSequence)
		if err != nil {
			return rules.Context{}, err
		}
		sequence = &resolved
	}

	return rules.NewContext(completed, enrolled, course, sequence, input.Student.CurrentWam), nil
}

// buildConstraint materializes a rule's condition definitions into a
// constraint. Mutual-exclusion conditions signal violations, so they are
// composed negated; every other kind is composed directly.
func buildConstraint(rule catalog.Rule, input catalog.ScenarioInput) (*rules.Constraint, error) {
	constraint := rules.NewConstraint()
	for _, definition := range rule.Conditions {
		condition, negated, err := buildCondition(definition, input)
		if err != nil {
			return nil, err
		}
		if negated {
			constraint.AppendNegated(condition)
		} else {
			constraint.Append(condition)
		}
	}
	return constraint, nil
}

func buildCondition(definition catalog.ConditionDefinition, input catalog.ScenarioInput) (rules.Condition, bool, error) {
	switch definition.Type {
	case "minimumUnitCount":
		units, err := input.ResolveUnits(definition.Units)
		if err != nil {
			return nil, false, err
		}
		condition, err := rules.NewMinimumUnitCount(units, definition.Minimum)
		return condition, false, err

	case "prerequisites":
		units, err := input.ResolveUnits(definition.Units)
		if err != nil {
			return nil, false, err
		}
		return rules.NewPrerequisitesFulfilled(units), false, nil

	case "corequisites":
		units, err := input.ResolveUnits(definition.Units)
		if err != nil {
			return nil, false, err
		}
		return rules.NewCorequisitesFulfilled(units), false, nil

	case "mutualExclusion":
		units, err := input.ResolveUnits(definition.Units)
		if err != nil {
			return nil, false, err
		}
		return rules.NewMutualExclusion(units), true, nil

	case "enrolledInCourse":
		course, err := input.Course(definition.Course)
		if err != nil {
			return nil, false, err
		}
		return rules.NewEnrolledInCourse(course), false, nil

	case "enrolledInSequence":
		sequence, err := input.Sequence(definition.Sequence)
		if err != nil {
			return nil, false, err
		}
		return rules.NewEnrolledInSequence(sequence), false, nil

	case "minimumWam":
		condition, err := rules.NewMinimumAverage(definition.MinimumWam)
		return condition, false, err

	default:
		return nil, false, fmt.Errorf("%v is not a valid condition type", definition.Type)
	}
}
