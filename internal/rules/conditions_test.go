package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/eligibility/internal/catalog"
)

var (
	algorithms  = catalog.Unit{Id: 1, Code: "FIT1045", Name: "Algorithms and programming fundamentals", CreditPoints: 6}
	discrete    = catalog.Unit{Id: 2, Code: "MAT1830", Name: "Discrete mathematics for computer science", CreditPoints: 6}
	databases   = catalog.Unit{Id: 3, Code: "FIT2094", Name: "Databases", CreditPoints: 6}
	dataScience = catalog.Unit{Id: 4, Code: "FIT1043", Name: "Introduction to data science", CreditPoints: 6}

	computerScience = catalog.Course{Id: 1, Code: "C2001", Name: "Bachelor of Computer Science"}
	engineering     = catalog.Course{Id: 2, Code: "E3001", Name: "Bachelor of Engineering"}

	advancedCS = catalog.Sequence{Id: 1, Code: "ADVCS01", Name: "Advanced computer science"}
	statistics = catalog.Sequence{Id: 2, Code: "STAT01", Name: "Statistics"}
)

func contextWith(completed, enrolled []catalog.Unit) Context {
	return NewContext(completed, enrolled, nil, nil, 0)
}

func TestMinimumUnitCount(t *testing.T) {
	t.Run("fulfilled when enough units from the set are completed", func(t *testing.T) {
		// Arrange
		condition, err := NewMinimumUnitCount([]catalog.Unit{algorithms, discrete, databases}, 2)
		require.Nil(t, err)

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms, discrete}, nil)))
		assert.False(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms}, nil)))
	})

	t.Run("completed units outside the set do not count", func(t *testing.T) {
		// Arrange
		condition, err := NewMinimumUnitCount([]catalog.Unit{algorithms, discrete}, 2)
		require.Nil(t, err)

		// Act & Assert
		assert.False(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms, databases, dataScience}, nil)))
	})

	t.Run("empty set with zero minimum is trivially fulfilled", func(t *testing.T) {
		// Arrange
		condition, err := NewMinimumUnitCount(nil, 0)
		require.Nil(t, err)

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith(nil, nil)))
	})

	t.Run("negative minimum is rejected at construction", func(t *testing.T) {
		// Act
		condition, err := NewMinimumUnitCount([]catalog.Unit{algorithms}, -1)

		// Assert
		assert.NotNil(t, err)
		assert.Nil(t, condition)
	})

	t.Run("duplicate units in the set behave like the de-duplicated set", func(t *testing.T) {
		// Arrange
		duplicated, err := NewMinimumUnitCount([]catalog.Unit{algorithms, algorithms, discrete}, 2)
		require.Nil(t, err)
		deduplicated, err := NewMinimumUnitCount([]catalog.Unit{algorithms, discrete}, 2)
		require.Nil(t, err)

		// Act & Assert
		ctx := contextWith([]catalog.Unit{algorithms, discrete}, nil)
		assert.Equal(t, deduplicated.Evaluate(ctx), duplicated.Evaluate(ctx))
		ctx = contextWith([]catalog.Unit{algorithms}, nil)
		assert.Equal(t, deduplicated.Evaluate(ctx), duplicated.Evaluate(ctx))
	})
}

func TestPrerequisitesFulfilled(t *testing.T) {
	t.Run("fulfilled when every prerequisite is completed", func(t *testing.T) {
		// Arrange
		condition := NewPrerequisitesFulfilled([]catalog.Unit{algorithms, discrete})

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms, discrete, databases}, nil)))
		assert.False(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms}, nil)))
	})

	t.Run("currently enrolled units do not fulfill prerequisites", func(t *testing.T) {
		// Arrange
		condition := NewPrerequisitesFulfilled([]catalog.Unit{algorithms})

		// Act & Assert
		assert.False(t, condition.Evaluate(contextWith(nil, []catalog.Unit{algorithms})))
	})

	t.Run("empty prerequisite set is trivially fulfilled", func(t *testing.T) {
		// Arrange
		condition := NewPrerequisitesFulfilled(nil)

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith(nil, nil)))
	})
}

func TestCorequisitesFulfilled(t *testing.T) {
	t.Run("completed and enrolled units both fulfill corequisites", func(t *testing.T) {
		// Arrange
		condition := NewCorequisitesFulfilled([]catalog.Unit{algorithms})

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith(nil, []catalog.Unit{algorithms})))
		assert.True(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms}, nil)))
		assert.False(t, condition.Evaluate(contextWith(nil, nil)))
	})

	t.Run("corequisites split across completed and enrolled are fulfilled", func(t *testing.T) {
		// Arrange
		condition := NewCorequisitesFulfilled([]catalog.Unit{algorithms, discrete})

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms}, []catalog.Unit{discrete})))
	})
}

func TestMutualExclusion(t *testing.T) {
	t.Run("signals a clash when an incompatible unit is completed", func(t *testing.T) {
		// Arrange
		condition := NewMutualExclusion([]catalog.Unit{algorithms})

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith([]catalog.Unit{algorithms}, nil)))
		assert.False(t, condition.Evaluate(contextWith(nil, nil)))
	})

	t.Run("signals a clash when an incompatible unit is being completed", func(t *testing.T) {
		// Arrange
		condition := NewMutualExclusion([]catalog.Unit{algorithms, discrete})

		// Act & Assert
		assert.True(t, condition.Evaluate(contextWith(nil, []catalog.Unit{discrete})))
		assert.False(t, condition.Evaluate(contextWith([]catalog.Unit{databases}, []catalog.Unit{dataScience})))
	})
}

func TestEnrolledInSequence(t *testing.T) {
	t.Run("fulfilled only for the matching sequence", func(t *testing.T) {
		// Arrange
		condition := NewEnrolledInSequence(advancedCS)

		// Act & Assert
		assert.True(t, condition.Evaluate(NewContext(nil, nil, nil, &advancedCS, 0)))
		assert.False(t, condition.Evaluate(NewContext(nil, nil, nil, &statistics, 0)))
	})

	t.Run("not fulfilled when the student has no sequence", func(t *testing.T) {
		// Arrange
		condition := NewEnrolledInSequence(advancedCS)

		// Act & Assert
		assert.False(t, condition.Evaluate(NewContext(nil, nil, nil, nil, 0)))
	})
}

func TestEnrolledInCourse(t *testing.T) {
	t.Run("fulfilled only for the matching course", func(t *testing.T) {
		// Arrange
		condition := NewEnrolledInCourse(computerScience)

		// Act & Assert
		assert.True(t, condition.Evaluate(NewContext(nil, nil, &computerScience, nil, 0)))
		assert.False(t, condition.Evaluate(NewContext(nil, nil, &engineering, nil, 0)))
		assert.False(t, condition.Evaluate(NewContext(nil, nil, nil, nil, 0)))
	})
}

func TestMinimumAverage(t *testing.T) {
	t.Run("fulfilled at or above the minimum", func(t *testing.T) {
		// Arrange
		condition, err := NewMinimumAverage(65.0)
		require.Nil(t, err)

		// Act & Assert
		assert.True(t, condition.Evaluate(NewContext(nil, nil, nil, nil, 70.0)))
		assert.True(t, condition.Evaluate(NewContext(nil, nil, nil, nil, 65.0)))
		assert.False(t, condition.Evaluate(NewContext(nil, nil, nil, nil, 60.0)))
	})

	t.Run("invalid minimums are rejected at construction", func(t *testing.T) {
		// Act & Assert
		_, err := NewMinimumAverage(-1)
		assert.NotNil(t, err)
		_, err = NewMinimumAverage(math.NaN())
		assert.NotNil(t, err)
	})
}

func TestEvaluationIsDeterministic(t *testing.T) {
	// Arrange
	minimumCount, err := NewMinimumUnitCount([]catalog.Unit{algorithms, discrete, databases}, 2)
	require.Nil(t, err)
	minimumWam, err := NewMinimumAverage(65.0)
	require.Nil(t, err)

	conditions := []Condition{
		minimumCount,
		NewPrerequisitesFulfilled([]catalog.Unit{algorithms}),
		NewCorequisitesFulfilled([]catalog.Unit{discrete}),
		NewMutualExclusion([]catalog.Unit{dataScience}),
		NewEnrolledInSequence(advancedCS),
		NewEnrolledInCourse(computerScience),
		minimumWam,
	}
	ctx := NewContext(
		[]catalog.Unit{algorithms, discrete},
		[]catalog.Unit{databases},
		&computerScience,
		&advancedCS,
		72.5,
	)

	// Act & Assert
	for _, condition := range conditions {
		first := condition.Evaluate(ctx)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, condition.Evaluate(ctx))
		}
	}
}
