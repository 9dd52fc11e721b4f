package main

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTests(t *testing.T) {
	tests := getTests(3)

	assert.Len(t, tests, 15)
	assert.Equal(t, TestMetadata{Name: "random-10-20", Seed: 2, Operations: 10, Dependences: 20}, tests[2])
	assert.Equal(t, "random-500-1200", tests[14].Name)
}

func TestMeasure(t *testing.T) {
	for _, test := range getTests(2)[:4] {
		for _, strategy := range []StrategyType{acyclic, cyclic} {
			result := measure(strategy, test)
			assert.Equal(t, solved, result.Result, "%v seed %v with %v", test.Name, test.Seed, strategyTypes[strategy])
		}
	}
}

func TestToCsv(t *testing.T) {
	// Arrange
	var buffer bytes.Buffer
	results := []BenchmarkResult{
		{
			Strategy:           cyclic,
			Test:               TestMetadata{Name: "random-10-20", Seed: 1, Operations: 10, Dependences: 20},
			Duration:           1500 * time.Microsecond,
			Pivots:             12,
			IIIncreases:        2,
			InitiationInterval: 4,
			LastStartTime:      9,
			Result:             solved,
		},
	}

	// Act
	toCsv(&buffer, results)

	// Assert
	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"cyclic", "random-10-20", "1", "10", "20", "1500", "12", "2", "4", "9", "solved"}, records[1])
}
