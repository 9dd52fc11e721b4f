package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/simplexscheduling/internal/config"
	"github.com/limaJavier/simplexscheduling/internal/logging"
	"github.com/limaJavier/simplexscheduling/pkg/problem"
	"github.com/limaJavier/simplexscheduling/pkg/simplex"
	"github.com/samber/lo"
)

const (
	exitSolved     = 10
	exitUnverified = 15
	exitInfeasible = 20
)

type scheduler func(*problem.Instance, problem.Operation, ...simplex.Option) (simplex.Solution, error)

var (
	validStrategies = []string{"acyclic", "cyclic"}
	schedulers      = map[string]scheduler{
		"acyclic": func(instance *problem.Instance, lastOp problem.Operation, opts ...simplex.Option) (simplex.Solution, error) {
			return simplex.ScheduleAcyclic(instance, lastOp, opts...)
		},
		"cyclic": func(instance *problem.Instance, lastOp problem.Operation, opts ...simplex.Option) (simplex.Solution, error) {
			return simplex.ScheduleCyclic(instance, lastOp, opts...)
		},
	}
)

type StartTime struct {
	Operation string
	StartTime uint64
}

type Output struct {
	Name               string
	Strategy           string
	InitiationInterval uint64 `json:",omitempty"`
	LastOperation      string
	LastStartTime      uint64
	Pivots             int
	IIIncreases        int
	StartTimes         []StartTime
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the problem file (JSON, or YAML when the extension is .yaml/.yml)")
	strategyPtr := flag.String("strategy", "", "Scheduling strategy. Allowed values are: \"acyclic\" and \"cyclic\"; if empty, it's taken from the problem file")
	lastPtr := flag.String("last", "", "Operation whose start time is minimized; if empty, it's taken from the problem file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	configPathPtr := flag.String("config", "", "Path to the configuration file; if empty, config.json next to the executable is used")
	dumpPtr := flag.Bool("dump", false, "Dump the tableau after every solver step to the Standard Error")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if strategy != "" && !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Load configuration
	configPath := *configPathPtr
	if configPath == "" {
		var err error
		if configPath, err = config.ExecutablePath(); err != nil {
			log.Fatal(err)
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("invalid logging configuration: %v", err)
	}

	// Extract input
	input, err := problem.InputFromFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	if strategy == "" {
		strategy = lo.Ternary(input.Cyclic, "cyclic", "acyclic")
	}
	lastOp := input.LastOperation
	if *lastPtr != "" {
		lastOp = problem.Operation(*lastPtr)
	}

	// Schedule
	opts := []simplex.Option{
		simplex.WithLogger(logger),
		simplex.WithIterationLimit(cfg.IterationLimit),
	}
	if *dumpPtr || cfg.DumpTableau {
		opts = append(opts, simplex.WithObserver(simplex.NewDumpObserver(os.Stderr)))
	}
	logger.Info("scheduling", "problem", input.Instance.Name, "strategy", strategy, "operations", len(input.Instance.Operations()), "dependences", input.Instance.DependenceCount())

	solution, err := schedulers[strategy](input.Instance, lastOp, opts...)
	if errors.Is(err, simplex.ErrInfeasible) {
		logger.Info("problem is infeasible", "problem", input.Instance.Name)
		os.Exit(exitInfeasible)
	} else if err != nil {
		log.Fatalf("an error occurred during scheduling: %v", err)
	}

	// Verify schedule correctness. An acyclic schedule treats every dependence as intra-iteration
	if strategy == "acyclic" && input.Instance.IsCyclic() {
		input.Instance.SetInitiationInterval(0)
	}
	if err := input.Instance.Verify(); err != nil {
		logger.Error("schedule does not satisfy the problem", "error", err)
		os.Exit(exitUnverified)
	}

	output := Output{
		Name:               input.Instance.Name,
		Strategy:           strategy,
		InitiationInterval: solution.InitiationInterval,
		LastOperation:      string(lastOp),
		LastStartTime:      solution.LastStartTime,
		Pivots:             solution.Pivots,
		IIIncreases:        solution.IIIncreases,
		StartTimes: lo.Map(input.Instance.Operations(), func(op problem.Operation, _ int) StartTime {
			startTime, _ := input.Instance.StartTime(op)
			return StartTime{Operation: string(op), StartTime: startTime}
		}),
	}
	writeOutput(output, outFile, logger)
	os.Exit(exitSolved)
}

func writeOutput(output Output, outFile string, logger *slog.Logger) {
	outputJson, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputJson))
		return
	}
	if err := os.WriteFile(outFile, outputJson, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
	logger.Debug("output written", "file", outFile)
}
