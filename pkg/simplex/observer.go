package simplex

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type EventKind int

const (
	// The tableau has just been built
	InitialTableau EventKind = iota
	// A pivot step has been applied
	Pivoted
	// The II parameter has grown
	IncreasedII
	// Every constraint row is feasible
	OptimalSolution
	// A row can be neither pivoted on nor repaired
	InfeasibleProblem
)

func (kind EventKind) String() string {
	switch kind {
	case InitialTableau:
		return "initial"
	case Pivoted:
		return "pivoted"
	case IncreasedII:
		return "increased-ii"
	case OptimalSolution:
		return "optimal"
	case InfeasibleProblem:
		return "infeasible"
	}
	return "unknown"
}

// Snapshot is a copy of the tableau taken when an event is emitted
type Snapshot struct {
	Matrix            [][]int
	BasicVariables    []int
	NonBasicVariables []int
	ParameterT        int
}

type Event struct {
	Kind     EventKind
	Strategy string
	// Meaningful for Pivoted; IncreasedII only sets PivotRow
	PivotRow    int
	PivotColumn int
	Tableau     *Snapshot
}

// Observer receives diagnostic events while a problem is being solved
type Observer interface {
	Observe(event Event)
}

type ObserverFunc func(event Event)

func (f ObserverFunc) Observe(event Event) {
	f(event)
}

// NewDumpObserver writes every event with the full tableau to w
func NewDumpObserver(w io.Writer) Observer {
	return ObserverFunc(func(event Event) {
		switch event.Kind {
		case InitialTableau:
			fmt.Fprintf(w, "Initial tableau:\n")
		case Pivoted:
			fmt.Fprintf(w, "Pivoted with %v,%v:\n", event.PivotRow, event.PivotColumn)
		case IncreasedII:
			fmt.Fprintf(w, "Increased II to %v\n", event.Tableau.ParameterT)
			return
		case OptimalSolution:
			fmt.Fprintf(w, "Optimal solution found with II = %v\n", event.Tableau.ParameterT)
		case InfeasibleProblem:
			fmt.Fprintf(w, "Problem is infeasible at row %v:\n", event.PivotRow)
		}
		io.WriteString(w, event.Tableau.String())
	})
}

// NewLogObserver logs every event at debug level, without the tableau itself
func NewLogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(event Event) {
		logger.Debug("simplex event",
			"kind", event.Kind.String(),
			"strategy", event.Strategy,
			"row", event.PivotRow,
			"column", event.PivotColumn,
			"ii", event.Tableau.ParameterT,
		)
	})
}

// String renders the tableau with the parameter columns separated from the non-basic variable columns. Each constraint
// row is annotated with its basic variable, each non-basic column with its variable underneath
func (snapshot *Snapshot) String() string {
	var builder strings.Builder
	columns := 0
	if len(snapshot.Matrix) > 0 {
		columns = len(snapshot.Matrix[0])
	}

	border := strings.Repeat("====", columns) + "==\n"
	builder.WriteString(border)
	for i, row := range snapshot.Matrix {
		if i == firstConstraintRow {
			for j := range columns {
				if j == firstNonBasicVariableColumn {
					builder.WriteString("-+")
				}
				builder.WriteString("----")
			}
			builder.WriteString("\n")
		}
		for j, value := range row {
			if j == firstNonBasicVariableColumn {
				builder.WriteString(" |")
			}
			fmt.Fprintf(&builder, " %3d", value)
		}
		if i >= firstConstraintRow {
			fmt.Fprintf(&builder, " |< %2d", snapshot.BasicVariables[i-firstConstraintRow])
		}
		builder.WriteString("\n")
	}
	builder.WriteString(border)

	builder.WriteString("          ")
	for _, variable := range snapshot.NonBasicVariables {
		fmt.Fprintf(&builder, " %2d^", variable)
	}
	builder.WriteString("\n")
	return builder.String()
}
