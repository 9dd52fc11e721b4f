package simplex

import "github.com/limaJavier/simplexscheduling/pkg/problem"

// startTimes reads the solution: operations in basis take their row's value, operations out of basis are 0.
// Slack variables are ignored
func (t *tableau) startTimes(operations []problem.Operation) map[problem.Operation]uint64 {
	startTimes := make(map[problem.Operation]uint64, len(operations))
	for i, variable := range t.basicVariables {
		if variable < len(operations) {
			startTimes[operations[variable]] = uint64(t.rowValue(firstConstraintRow + i))
		}
	}
	for _, variable := range t.nonBasicVariables {
		if variable < len(operations) {
			startTimes[operations[variable]] = 0
		}
	}
	return startTimes
}
