package simplex

import "errors"

var (
	// ErrInfeasible is reported when a constraint row can neither be pivoted on nor repaired by increasing the II
	ErrInfeasible = errors.New("problem is infeasible")
	// ErrIterationLimit is reported when the solve loop exceeds the limit set through WithIterationLimit
	ErrIterationLimit = errors.New("iteration limit exceeded")
	// ErrUnknownOperation is reported when the last operation or a dependence endpoint is not among the problem's operations
	ErrUnknownOperation = errors.New("operation is not part of the problem")
	// ErrParameterOutOfRange is reported when a latency or a distance exceeds maxParameterValue
	ErrParameterOutOfRange = errors.New("latency or distance out of range")
)
