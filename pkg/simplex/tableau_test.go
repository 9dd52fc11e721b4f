package simplex

import (
	"errors"
	"math"
	"testing"

	"github.com/limaJavier/simplexscheduling/pkg/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableau(t *testing.T) {
	t.Run("Acyclic chain", func(t *testing.T) {
		// Arrange
		instance := chainInstance(t)

		// Act
		tableau, err := buildTableau(instance, "C", acyclicStrategy)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, [][]int{
			{0, 0, 0, 0, 1},
			{-2, 0, 1, -1, 0},
			{-3, 0, 0, 1, -1},
		}, tableau.matrix)
		assert.Equal(t, []int{0, 1, 2}, tableau.nonBasicVariables)
		assert.Equal(t, []int{3, 4}, tableau.basicVariables)
		assert.Equal(t, []int{0, 0, 0}, tableau.implicitColumn)
		assert.Equal(t, 3, tableau.rows)
		assert.Equal(t, 5, tableau.columns)
		assert.Equal(t, 0, tableau.parameterT)
	})

	t.Run("Cyclic strategy fills distances", func(t *testing.T) {
		// Arrange
		instance := twoOperationCycleInstance(t)

		// Act
		tableau, err := buildTableau(instance, "B", cyclicStrategy)

		// Assert
		require.NoError(t, err)
		// Rows follow the destinations' order: B -> A comes before A -> B
		assert.Equal(t, [][]int{
			{0, 0, 0, 1},
			{-2, 1, -1, 1},
			{-2, 0, 1, -1},
		}, tableau.matrix)
		assert.Equal(t, 1, tableau.parameterT)
	})

	t.Run("Acyclic strategy ignores distances", func(t *testing.T) {
		// Arrange
		instance := twoOperationCycleInstance(t)

		// Act
		tableau, err := buildTableau(instance, "B", acyclicStrategy)

		// Assert
		require.NoError(t, err)
		for _, row := range tableau.matrix {
			assert.Zero(t, row[parameterTColumn])
		}
	})

	t.Run("Self-dependence leaves a zero column entry", func(t *testing.T) {
		// Arrange
		instance := newTestInstance(t, []testOperation{{"X", 3}}, dependence("X", "X", 1))

		// Act
		tableau, err := buildTableau(instance, "X", cyclicStrategy)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, [][]int{
			{0, 0, 1},
			{-3, 1, 0},
		}, tableau.matrix)
	})

	t.Run("No dependences", func(t *testing.T) {
		// Arrange
		instance := newTestInstance(t, []testOperation{{"A", 1}, {"B", 1}})

		// Act
		tableau, err := buildTableau(instance, "A", acyclicStrategy)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 0, 1, 0}}, tableau.matrix)
		assert.Empty(t, tableau.basicVariables)
	})

	t.Run("Unknown last operation", func(t *testing.T) {
		// Arrange
		instance := chainInstance(t)

		// Act
		_, err := buildTableau(instance, "Z", acyclicStrategy)

		// Assert
		assert.True(t, errors.Is(err, ErrUnknownOperation))
	})

	t.Run("Unknown dependence endpoint", func(t *testing.T) {
		// Arrange
		instance := chainInstance(t)
		instance.InsertDependence(problem.Dependence{Source: "ghost", Destination: "A"})

		// Act
		_, err := buildTableau(instance, "C", acyclicStrategy)

		// Assert
		assert.ErrorIs(t, err, ErrUnknownOperation)
		assert.ErrorContains(t, err, "ghost")
	})

	t.Run("Latency out of range", func(t *testing.T) {
		// Arrange
		instance := newTestInstance(t,
			[]testOperation{{"A", math.MaxUint64}, {"B", 1}},
			dependence("A", "B", 0),
		)

		// Act
		_, err := buildTableau(instance, "B", acyclicStrategy)

		// Assert
		assert.ErrorIs(t, err, ErrParameterOutOfRange)
		assert.ErrorContains(t, err, "A -> B")
	})

	t.Run("Distance out of range", func(t *testing.T) {
		// Arrange
		instance := newTestInstance(t,
			[]testOperation{{"A", 1}, {"B", 1}},
			dependence("A", "B", 0),
			dependence("B", "A", math.MaxInt32+1),
		)

		// Act
		_, cyclicErr := buildTableau(instance, "B", cyclicStrategy)
		_, acyclicErr := buildTableau(instance, "B", acyclicStrategy)

		// Assert
		assert.ErrorIs(t, cyclicErr, ErrParameterOutOfRange)
		assert.NoError(t, acyclicErr)
	})

	t.Run("Largest accepted latency", func(t *testing.T) {
		// Arrange
		instance := newTestInstance(t,
			[]testOperation{{"A", math.MaxInt32}, {"B", 1}},
			dependence("A", "B", 0),
			dependence("B", "A", math.MaxInt32),
		)

		// Act
		tableau, err := buildTableau(instance, "B", cyclicStrategy)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, -math.MaxInt32, tableau.matrix[2][parameter1Column])
		assert.Equal(t, math.MaxInt32, tableau.matrix[1][parameterTColumn])
	})
}
