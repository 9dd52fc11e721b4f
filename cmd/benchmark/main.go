package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/simplexscheduling/pkg/problem"
	"github.com/limaJavier/simplexscheduling/pkg/simplex"
	"github.com/samber/lo"
)

const (
	maxLatency  = 8
	maxDistance = 3
)

type StrategyType int

const (
	acyclic StrategyType = iota
	cyclic
)

type ResultType int

const (
	solved ResultType = iota
	infeasible
	mismatch
)

var (
	strategyTypes = map[StrategyType]string{
		acyclic: "acyclic",
		cyclic:  "cyclic",
	}
	resultTypes = map[ResultType]string{
		solved:     "solved",
		infeasible: "infeasible",
		mismatch:   "mismatch",
	}
)

type TestMetadata struct {
	Name        string
	Seed        uint64
	Operations  int
	Dependences int
}

type BenchmarkResult struct {
	Strategy           StrategyType
	Test               TestMetadata
	Duration           time.Duration
	Pivots             int
	IIIncreases        int
	InitiationInterval uint64
	LastStartTime      uint64
	Result             ResultType
}

func main() {
	seedsPtr := flag.Int("seeds", 5, "Random instances per size and strategy")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV report")
	flag.Parse()

	tests := getTests(uint64(*seedsPtr))
	results := make([]BenchmarkResult, 0, len(tests)*len(strategyTypes))
	for _, test := range tests {
		for _, strategy := range []StrategyType{acyclic, cyclic} {
			fmt.Printf("Benchmarking test \"%v\" (seed %v) with strategy \"%v\"\n", test.Name, test.Seed, strategyTypes[strategy])
			results = append(results, measure(strategy, test))
		}
	}

	file, err := os.Create(*outFilePathPtr)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()
	toCsv(file, results)

	mismatches := lo.CountBy(results, func(result BenchmarkResult) bool { return result.Result == mismatch })
	if mismatches > 0 {
		log.Fatalf("%v schedules disagree with the reference bounds", mismatches)
	}
}

func getTests(seeds uint64) []TestMetadata {
	sizes := []lo.Tuple2[int, int]{
		lo.T2(10, 20),
		lo.T2(50, 100),
		lo.T2(100, 250),
		lo.T2(250, 600),
		lo.T2(500, 1200),
	}
	return lo.FlatMap(sizes, func(size lo.Tuple2[int, int], _ int) []TestMetadata {
		return lo.Times(int(seeds), func(seed int) TestMetadata {
			return TestMetadata{
				Name:        fmt.Sprintf("random-%v-%v", size.A, size.B),
				Seed:        uint64(seed),
				Operations:  size.A,
				Dependences: size.B,
			}
		})
	})
}

// generate builds the test's instance; the acyclic strategy gets forward-only dependences
func generate(strategy StrategyType, test TestMetadata) *problem.Instance {
	rng := rand.New(rand.NewPCG(test.Seed, uint64(test.Operations)))
	distance := lo.Ternary[uint64](strategy == cyclic, maxDistance, 0)
	return problem.Generate(rng, test.Operations, test.Dependences, maxLatency, distance)
}

// measure schedules the test's instance and checks the outcome against the longest-path and minimum II bounds
func measure(strategy StrategyType, test TestMetadata) BenchmarkResult {
	instance := generate(strategy, test)
	operations := instance.Operations()
	lastOp := operations[len(operations)-1]

	var solution simplex.Solution
	var err error
	start := time.Now()
	if strategy == cyclic {
		solution, err = simplex.ScheduleCyclic(instance, lastOp)
	} else {
		solution, err = simplex.ScheduleAcyclic(instance, lastOp)
	}
	duration := time.Since(start)

	result := BenchmarkResult{
		Strategy:           strategy,
		Test:               test,
		Duration:           duration,
		Pivots:             solution.Pivots,
		IIIncreases:        solution.IIIncreases,
		InitiationInterval: solution.InitiationInterval,
		LastStartTime:      solution.LastStartTime,
		Result:             solved,
	}

	ii, feasible := uint64(0), true
	if strategy == cyclic {
		ii, feasible = problem.MinimumII(instance)
	}
	if errors.Is(err, simplex.ErrInfeasible) {
		result.Result = lo.Ternary(feasible, mismatch, infeasible)
		return result
	} else if err != nil {
		log.Fatalf("an error occurred while scheduling test \"%v\" (seed %v): %v", test.Name, test.Seed, err)
	}

	earliest, _ := problem.EarliestStartTimes(instance, ii)
	if !feasible || ii != solution.InitiationInterval || earliest[lastOp] != solution.LastStartTime || instance.Verify() != nil {
		result.Result = mismatch
	}
	return result
}

func toCsv(w io.Writer, results []BenchmarkResult) {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Strategy", "Test", "Seed", "Operations", "Dependences", "Duration(us)", "Pivots", "IIIncreases", "II", "LastStartTime", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			strategyTypes[result.Strategy],
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Seed),
			fmt.Sprintf("%d", result.Test.Operations),
			fmt.Sprintf("%d", result.Test.Dependences),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
			fmt.Sprintf("%d", result.Pivots),
			fmt.Sprintf("%d", result.IIIncreases),
			fmt.Sprintf("%d", result.InitiationInterval),
			fmt.Sprintf("%d", result.LastStartTime),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
