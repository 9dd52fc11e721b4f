package simplex

import "github.com/limaJavier/simplexscheduling/pkg/problem"

type strategyKind int

const (
	acyclic strategyKind = iota
	cyclic
)

func (kind strategyKind) String() string {
	switch kind {
	case acyclic:
		return "acyclic"
	case cyclic:
		return "cyclic"
	}
	return "unknown"
}

// strategy holds what differs between the acyclic and the cyclic scheduler: the initial II and whether dependence
// distances enter the T column
type strategy struct {
	kind     strategyKind
	initialT int
}

var (
	acyclicStrategy = strategy{kind: acyclic, initialT: 0}
	cyclicStrategy  = strategy{kind: cyclic, initialT: 1}
)

// fillConstraintRow encodes start(dst) - start(src) <= latency(src) - distance*T as a tableau row.
// Structural entries are accumulated so a self-dependence leaves a zero in its operation's column
func (s strategy) fillConstraintRow(row []int, dep problem.Dependence, latency uint64, operationColumns map[problem.Operation]int) {
	row[parameter1Column] = -int(latency) // Note the negation
	row[operationColumns[dep.Source]] += 1
	row[operationColumns[dep.Destination]] -= 1
	if s.kind == cyclic {
		row[parameterTColumn] = int(dep.Distance)
	}
}
