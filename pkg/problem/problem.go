package problem

// Operation identifies a schedulable operation by name
type Operation string

// Dependence requires start(Destination) >= start(Source) + latency(Source) - Distance*II.
// Distance is the number of iterations the dependence spans and is only meaningful for cyclic problems
type Dependence struct {
	Source      Operation
	Destination Operation
	Distance    uint64
}

// Problem is the contract a scheduler consumes. The order of Operations() fixes the numbering of the
// LP variables, therefore it must be stable
type Problem interface {
	// Returns the operations in a stable order
	Operations() []Operation
	// Returns the dependences whose destination is op, in a stable order
	Dependences(op Operation) []Dependence
	// Returns the latency of op's linked operator type
	Latency(op Operation) uint64
	// Records the computed start time of op
	SetStartTime(op Operation, startTime uint64)
	// Reports a scheduling failure
	EmitError(message string)
}

// CyclicProblem is a Problem whose dependences may span iterations, and whose solution includes an initiation interval
type CyclicProblem interface {
	Problem
	// Records the computed initiation interval
	SetInitiationInterval(ii uint64)
}
