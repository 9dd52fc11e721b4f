package problem

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Generate builds a random, schedulable instance with the given amount of operations and dependences. Latencies lie in
// [0, maxLatency]. If maxDistance is zero the dependences only point forward in operation order, so the instance is
// acyclic; otherwise distances lie in [0, maxDistance] and dependences pointing backward span at least one iteration,
// so every recurrence does
func Generate(rng *rand.Rand, operations, dependences int, maxLatency, maxDistance uint64) *Instance {
	instance := NewInstance(fmt.Sprintf("random-%v-%v", operations, dependences))
	if operations == 0 {
		return instance
	}

	for i := range operations {
		name := fmt.Sprintf("op%v", i)
		// Names are unique by construction
		lo.Must0(instance.InsertOperatorType(OperatorType{Name: name, Latency: rng.Uint64N(maxLatency + 1)}))
		lo.Must0(instance.InsertOperation(Operation(name), name))
	}

	ops := instance.Operations()
	for range dependences {
		source, destination := rng.IntN(operations), rng.IntN(operations)
		var distance uint64
		if maxDistance == 0 {
			if source == destination {
				continue
			}
			source, destination = min(source, destination), max(source, destination)
		} else {
			distance = rng.Uint64N(maxDistance + 1)
			if source >= destination && distance == 0 {
				distance = 1
			}
		}
		instance.InsertDependence(Dependence{
			Source:      ops[source],
			Destination: ops[destination],
			Distance:    distance,
		})
	}

	return instance
}
