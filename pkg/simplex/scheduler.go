package simplex

import (
	"errors"
	"log"
	"log/slog"

	"github.com/limaJavier/simplexscheduling/pkg/problem"
)

type options struct {
	observer       Observer
	logger         *slog.Logger
	iterationLimit int
	strategy       strategy
}

type Option func(*options)

// WithObserver registers an observer notified on the initial tableau, after each pivot, on each II increase and at
// the end of the solve
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIterationLimit aborts the solve after limit pivots and II increases. Zero means no limit
func WithIterationLimit(limit int) Option {
	return func(o *options) {
		o.iterationLimit = limit
	}
}

func (o *options) notify(t *tableau, event Event) {
	if o.observer == nil {
		return
	}
	event.Strategy = o.strategy.kind.String()
	event.Tableau = t.snapshot()
	o.observer.Observe(event)
}

// Solution summarizes a successful solve; the start times themselves are written back into the problem
type Solution struct {
	// Zero for acyclic problems
	InitiationInterval uint64
	LastStartTime      uint64
	Pivots             int
	IIIncreases        int
}

// ScheduleAcyclic computes start times minimizing lastOp's start time. On failure the problem's error sink is invoked
// once and no start time is written
func ScheduleAcyclic(prob problem.Problem, lastOp problem.Operation, opts ...Option) (Solution, error) {
	t, solution, err := solveProblem(prob, lastOp, acyclicStrategy, opts)
	if err != nil {
		return Solution{}, err
	}

	if t.parameterT != 0 {
		log.Panicf("acyclic problem ended with II %v", t.parameterT)
	}

	storeStartTimes(prob, t, &solution, lastOp)
	return solution, nil
}

// ScheduleCyclic computes the minimum feasible initiation interval (RecMII) and start times valid for it that minimize
// lastOp's start time. On failure the problem's error sink is invoked once and nothing is written
func ScheduleCyclic(prob problem.CyclicProblem, lastOp problem.Operation, opts ...Option) (Solution, error) {
	t, solution, err := solveProblem(prob, lastOp, cyclicStrategy, opts)
	if err != nil {
		return Solution{}, err
	}

	solution.InitiationInterval = uint64(t.parameterT)
	prob.SetInitiationInterval(solution.InitiationInterval)
	storeStartTimes(prob, t, &solution, lastOp)
	return solution, nil
}

func solveProblem(prob problem.Problem, lastOp problem.Operation, strategy strategy, opts []Option) (*tableau, Solution, error) {
	config := &options{
		logger:   slog.New(slog.DiscardHandler),
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(config)
	}

	t, err := buildTableau(prob, lastOp, strategy)
	if err != nil {
		prob.EmitError(err.Error())
		return nil, Solution{}, err
	}
	config.logger.Debug("built tableau", "strategy", strategy.kind.String(), "rows", t.rows, "columns", t.columns)
	config.notify(t, Event{Kind: InitialTableau})

	var solution Solution
	if err := t.solve(config, &solution); err != nil {
		pivotRow, _ := t.findPivotRow()
		config.logger.Debug("solve failed", "error", err, "row", pivotRow, "pivots", solution.Pivots)
		if errors.Is(err, ErrInfeasible) {
			config.notify(t, Event{Kind: InfeasibleProblem, PivotRow: pivotRow})
		}
		prob.EmitError(err.Error())
		return nil, Solution{}, err
	}

	config.logger.Debug("optimal solution found", "ii", t.parameterT, "pivots", solution.Pivots, "iiIncreases", solution.IIIncreases)
	config.notify(t, Event{Kind: OptimalSolution})
	return t, solution, nil
}

// storeStartTimes writes one start time per operation, in operation order
func storeStartTimes(prob problem.Problem, t *tableau, solution *Solution, lastOp problem.Operation) {
	operations := prob.Operations()
	startTimes := t.startTimes(operations)
	for _, op := range operations {
		prob.SetStartTime(op, startTimes[op])
	}
	solution.LastStartTime = startTimes[lastOp]
}
