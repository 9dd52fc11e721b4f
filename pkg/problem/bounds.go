package problem

import "github.com/samber/lo"

// EarliestStartTimes computes the ASAP start time of every operation for the given initiation interval, i.e. the length
// of the longest path ending at each operation where a dependence weighs latency(src) - distance*ii.
// Returns false if a positive cycle makes the constraints unsatisfiable for this ii
func EarliestStartTimes(instance *Instance, ii uint64) (map[Operation]uint64, bool) {
	dependences := instance.AllDependences()
	earliest := lo.SliceToMap(instance.Operations(), func(op Operation) (Operation, int64) {
		return op, 0
	})

	// Bellman-Ford relaxation; a change on the |V|+1-th round proves a positive cycle
	for range len(instance.Operations()) + 1 {
		changed := false
		for _, dep := range dependences {
			weight := int64(instance.Latency(dep.Source)) - int64(dep.Distance*ii)
			if earliest[dep.Source]+weight > earliest[dep.Destination] {
				earliest[dep.Destination] = earliest[dep.Source] + weight
				changed = true
			}
		}
		if !changed {
			return lo.MapValues(earliest, func(startTime int64, _ Operation) uint64 {
				return uint64(startTime)
			}), true
		}
	}
	return nil, false
}

// MinimumII computes the recurrence-constrained minimum initiation interval (RecMII), which is at least 1.
// Returns false if no initiation interval satisfies the constraints (a recurrence with positive latency and zero distance)
func MinimumII(instance *Instance) (uint64, bool) {
	// Any recurrence with non-zero distance is satisfied once the II reaches the sum of all latencies
	upper := max(1, lo.SumBy(instance.Operations(), instance.Latency))
	if _, ok := EarliestStartTimes(instance, upper); !ok {
		return 0, false
	}

	// Feasibility is monotone in the II
	lower := uint64(1)
	for lower < upper {
		middle := lower + (upper-lower)/2
		if _, ok := EarliestStartTimes(instance, middle); ok {
			upper = middle
		} else {
			lower = middle + 1
		}
	}
	return lower, true
}
