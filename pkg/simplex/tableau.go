package simplex

import (
	"fmt"
	"math"
	"slices"

	"github.com/limaJavier/simplexscheduling/pkg/problem"
	"github.com/samber/lo"
)

const (
	// The first row encodes the LP's objective function
	objectiveRow = 0
	// All other rows encode one precedence constraint each
	firstConstraintRow = 1

	// Column of the always-one parameter
	parameter1Column = 0
	// Column of the parameter T, i.e. the current II
	parameterTColumn = 1
	// All other explicitly stored columns belong to non-basic variables
	firstNonBasicVariableColumn = 2

	// Largest latency or distance accepted. Row constants accumulate sums of latencies and T grows up to their total
	maxParameterValue = math.MaxInt32
)

// tableau is the state of the parametric LP, exclusively owned by one scheduling call.
//
//	                        <---columns--->
//	                       +---+-----------+ - - - - +
//	       objectiveRow >  |~Z | . ~C^T .  |    0
//	                       +---+-----------+ - - - - +
//	 firstConstraintRow >  |   |           |1
//	                       |~B |    ~A     |  1
//	                       |   |           |    1
//	                       +---+-----------+ - - - - +
//	     parameter1Column ^
//	       parameterTColumn ^
//	firstNonBasicVariableColumn ^
//	                          nonBasicVars  basicVars
//
// The identity block of the basic variables is never stored. Entries of ~A are always in {-1, 0, 1}
type tableau struct {
	matrix [][]int
	// Catches the changes to the one implicit identity column modified during a pivot
	implicitColumn []int

	// Variables 0..|ops|-1 are the operations' start times, |ops|..|ops|+|deps|-1 the constraints' slacks.
	// nonBasicVariables[i] sits in column firstNonBasicVariableColumn+i
	nonBasicVariables []int
	// basicVariables[i] sits in row firstConstraintRow+i
	basicVariables []int

	rows    int
	columns int

	// Current value of the II parameter
	parameterT int
}

// buildTableau puts the operations' start times out of basis (one column each, in operation order) and the slacks in
// basis (one row per dependence, in enumeration order). The objective minimizes lastOp's start time
func buildTableau(prob problem.Problem, lastOp problem.Operation, strategy strategy) (*tableau, error) {
	operations := prob.Operations()
	operationColumns := make(map[problem.Operation]int, len(operations))
	t := &tableau{
		nonBasicVariables: make([]int, 0, len(operations)),
		columns:           firstNonBasicVariableColumn + len(operations),
		parameterT:        strategy.initialT,
	}

	variable := 0
	for _, op := range operations {
		operationColumns[op] = firstNonBasicVariableColumn + variable
		t.nonBasicVariables = append(t.nonBasicVariables, variable)
		variable++
	}

	lastColumn, ok := operationColumns[lastOp]
	if !ok {
		return nil, fmt.Errorf("%w: last operation \"%v\"", ErrUnknownOperation, lastOp)
	}

	objective := t.addRow()
	objective[lastColumn] = 1

	for _, op := range operations {
		for _, dep := range prob.Dependences(op) {
			for _, endpoint := range []problem.Operation{dep.Source, dep.Destination} {
				if _, ok := operationColumns[endpoint]; !ok {
					return nil, fmt.Errorf("%w: \"%v\" in dependence %v -> %v", ErrUnknownOperation, endpoint, dep.Source, dep.Destination)
				}
			}
			latency := prob.Latency(dep.Source)
			if latency > maxParameterValue || (strategy.kind == cyclic && dep.Distance > maxParameterValue) {
				return nil, fmt.Errorf("%w: dependence %v -> %v has latency %v and distance %v, the maximum is %v",
					ErrParameterOutOfRange, dep.Source, dep.Destination, latency, dep.Distance, maxParameterValue)
			}
			row := t.addRow()
			t.basicVariables = append(t.basicVariables, variable)
			variable++
			strategy.fillConstraintRow(row, dep, latency, operationColumns)
		}
	}

	t.rows = len(t.matrix)
	return t, nil
}

// addRow grows both the matrix and the implicit column
func (t *tableau) addRow() []int {
	row := make([]int, t.columns)
	t.matrix = append(t.matrix, row)
	t.implicitColumn = append(t.implicitColumn, 0)
	return row
}

// rowValue evaluates the row's parametric constant under the current T
func (t *tableau) rowValue(row int) int {
	return t.matrix[row][parameter1Column] + t.matrix[row][parameterTColumn]*t.parameterT
}

func (t *tableau) snapshot() *Snapshot {
	return &Snapshot{
		Matrix: lo.Map(t.matrix, func(row []int, _ int) []int {
			return slices.Clone(row)
		}),
		BasicVariables:    slices.Clone(t.basicVariables),
		NonBasicVariables: slices.Clone(t.nonBasicVariables),
		ParameterT:        t.parameterT,
	}
}
