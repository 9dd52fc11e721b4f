package problem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawOperatorType struct {
	Name    string
	Latency uint64
}

type RawOperation struct {
	Name         string
	OperatorType string
	Latency      *uint64 // Shorthand for a dedicated operator type named after the operation
}

type RawDependence struct {
	Source      string
	Destination string
	Distance    uint64
}

type RawProblemInput struct {
	Name          string
	Cyclic        bool
	LastOperation string
	OperatorTypes []RawOperatorType
	Operations    []RawOperation
	Dependences   []RawDependence
}

type ProblemInput struct {
	Instance      *Instance
	Cyclic        bool
	LastOperation Operation
}

// InputFromFile picks the decoder by file extension: ".yaml" and ".yml" are YAML, anything else JSON
func InputFromFile(file string) (ProblemInput, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return InputFromYaml(file)
	default:
		return InputFromJson(file)
	}
}

func InputFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}
	return decodeInput(inputJson)
}

func InputFromYaml(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return ProblemInput{}, err
	}
	return decodeInput(inputYaml)
}

func decodeInput(input map[string]any) (ProblemInput, error) {
	var rawInput RawProblemInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &rawInput,
	})
	if err != nil {
		return ProblemInput{}, err
	}
	if err := decoder.Decode(input); err != nil {
		return ProblemInput{}, fmt.Errorf("cannot decode problem input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawProblemInput) (ProblemInput, error) {
	instance := NewInstance(rawInput.Name)

	//** Manage operator types
	for _, operatorType := range rawInput.OperatorTypes {
		if err := instance.InsertOperatorType(OperatorType(operatorType)); err != nil {
			return ProblemInput{}, err
		}
	}

	//** Manage operations
	for _, operation := range rawInput.Operations {
		operatorType := operation.OperatorType
		// Latency shorthand creates an operator type dedicated to the operation
		if operation.Latency != nil {
			if operatorType != "" {
				return ProblemInput{}, fmt.Errorf("operation \"%v\" specifies both an operator type and a latency", operation.Name)
			}
			operatorType = operation.Name
			if err := instance.InsertOperatorType(OperatorType{Name: operatorType, Latency: *operation.Latency}); err != nil {
				return ProblemInput{}, err
			}
		}
		if err := instance.InsertOperation(Operation(operation.Name), operatorType); err != nil {
			return ProblemInput{}, err
		}
	}

	//** Manage dependences
	for _, dependence := range rawInput.Dependences {
		instance.InsertDependence(Dependence{
			Source:      Operation(dependence.Source),
			Destination: Operation(dependence.Destination),
			Distance:    dependence.Distance,
		})
	}

	if err := instance.Check(); err != nil {
		return ProblemInput{}, err
	}

	//** Manage last operation
	// Default to the last operation in input order
	lastOperation := Operation(rawInput.LastOperation)
	if lastOperation == "" {
		operations := instance.Operations()
		if len(operations) == 0 {
			return ProblemInput{}, fmt.Errorf("problem \"%v\" has no operations", rawInput.Name)
		}
		lastOperation = operations[len(operations)-1]
	} else if !lo.Contains(instance.Operations(), lastOperation) {
		return ProblemInput{}, fmt.Errorf("%w: last operation \"%v\"", ErrUnknownOperation, lastOperation)
	}

	// A problem with iteration-spanning dependences is cyclic regardless of the flag
	return ProblemInput{
		Instance:      instance,
		Cyclic:        rawInput.Cyclic || instance.IsCyclic(),
		LastOperation: lastOperation,
	}, nil
}
