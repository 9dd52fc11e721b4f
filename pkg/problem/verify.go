package problem

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Check validates the instance's structure before scheduling: every operation is linked to a known operator type and
// every dependence connects known operations
func (instance *Instance) Check() error {
	var errs []error
	for _, op := range instance.operations {
		if _, ok := instance.LinkedOperatorType(op); !ok {
			errs = append(errs, fmt.Errorf("%w: \"%v\" linked to operation \"%v\"", ErrUnknownOperatorType, instance.linkedOperatorType[op], op))
		}
	}

	for _, dep := range instance.insertedDependences {
		for _, op := range []Operation{dep.Source, dep.Destination} {
			if _, ok := instance.linkedOperatorType[op]; !ok {
				errs = append(errs, fmt.Errorf("%w: \"%v\" in dependence %v -> %v", ErrUnknownOperation, op, dep.Source, dep.Destination))
			}
		}
	}
	return errors.Join(errs...)
}

// Verify checks that the computed solution is complete and satisfies every precedence constraint
func (instance *Instance) Verify() error {
	if op, ok := lo.Find(instance.operations, func(op Operation) bool {
		_, ok := instance.startTimes[op]
		return !ok
	}); ok {
		return fmt.Errorf("%w: operation \"%v\"", ErrMissingStartTime, op)
	}

	ii, hasII := instance.InitiationInterval()
	if !hasII && instance.IsCyclic() {
		return ErrMissingInitiationInterval
	}

	for _, dep := range instance.AllDependences() {
		// Check that: start(src) + latency(src) <= start(dst) + distance * II
		earliest := instance.startTimes[dep.Source] + instance.Latency(dep.Source)
		actual := instance.startTimes[dep.Destination] + dep.Distance*ii
		if earliest > actual {
			return fmt.Errorf("%w: %v -> %v (distance %v) requires %v <= %v", ErrPrecedenceViolated, dep.Source, dep.Destination, dep.Distance, earliest, actual)
		}
	}
	return nil
}
