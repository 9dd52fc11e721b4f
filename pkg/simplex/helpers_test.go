package simplex

import (
	"testing"

	"github.com/limaJavier/simplexscheduling/pkg/problem"
	"github.com/stretchr/testify/require"
)

type testOperation struct {
	name    problem.Operation
	latency uint64
}

// newTestInstance gives every operation a dedicated operator type carrying its latency
func newTestInstance(t *testing.T, operations []testOperation, dependences ...problem.Dependence) *problem.Instance {
	t.Helper()
	instance := problem.NewInstance(t.Name())
	for _, op := range operations {
		require.NoError(t, instance.InsertOperatorType(problem.OperatorType{Name: string(op.name), Latency: op.latency}))
		require.NoError(t, instance.InsertOperation(op.name, string(op.name)))
	}
	for _, dep := range dependences {
		instance.InsertDependence(dep)
	}
	require.NoError(t, instance.Check())
	return instance
}

func dependence(source, destination problem.Operation, distance uint64) problem.Dependence {
	return problem.Dependence{Source: source, Destination: destination, Distance: distance}
}

func chainInstance(t *testing.T) *problem.Instance {
	return newTestInstance(t,
		[]testOperation{{"A", 2}, {"B", 3}, {"C", 0}},
		dependence("A", "B", 0),
		dependence("B", "C", 0),
	)
}

func diamondInstance(t *testing.T) *problem.Instance {
	return newTestInstance(t,
		[]testOperation{{"A", 1}, {"B", 4}, {"C", 2}, {"D", 0}},
		dependence("A", "B", 0),
		dependence("A", "C", 0),
		dependence("B", "D", 0),
		dependence("C", "D", 0),
	)
}

func twoOperationCycleInstance(t *testing.T) *problem.Instance {
	return newTestInstance(t,
		[]testOperation{{"A", 2}, {"B", 2}},
		dependence("A", "B", 0),
		dependence("B", "A", 1),
	)
}

// newTableau wraps a hand-written matrix; the implicit column starts zeroed
func newTableau(matrix [][]int, basicVariables, nonBasicVariables []int, parameterT int) *tableau {
	return &tableau{
		matrix:            matrix,
		implicitColumn:    make([]int, len(matrix)),
		basicVariables:    basicVariables,
		nonBasicVariables: nonBasicVariables,
		rows:              len(matrix),
		columns:           len(matrix[0]),
		parameterT:        parameterT,
	}
}
