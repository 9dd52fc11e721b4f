package problem

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
)

type OperatorType struct {
	Name    string
	Latency uint64
}

// Instance is an in-memory CyclicProblem. An Instance without non-zero distances is a plain acyclic Problem.
// It is not safe for concurrent mutation
type Instance struct {
	Name string

	operatorTypes       map[string]OperatorType
	operations          []Operation
	linkedOperatorType  map[Operation]string
	dependences         map[Operation][]Dependence // Dependences indexed by their destination
	insertedDependences []Dependence

	startTimes         map[Operation]uint64
	initiationInterval uint64
	hasII              bool
	errors             []string
}

func NewInstance(name string) *Instance {
	return &Instance{
		Name:               name,
		operatorTypes:      make(map[string]OperatorType),
		operations:         make([]Operation, 0),
		linkedOperatorType: make(map[Operation]string),
		dependences:        make(map[Operation][]Dependence),
		startTimes:         make(map[Operation]uint64),
	}
}

func (instance *Instance) InsertOperatorType(operatorType OperatorType) error {
	if _, ok := instance.operatorTypes[operatorType.Name]; ok {
		return fmt.Errorf("%w: \"%v\"", ErrDuplicateOperatorType, operatorType.Name)
	}
	instance.operatorTypes[operatorType.Name] = operatorType
	return nil
}

// Inserts op linked to the named operator type. The operator type may be inserted later; Check reports dangling links
func (instance *Instance) InsertOperation(op Operation, operatorType string) error {
	if _, ok := instance.linkedOperatorType[op]; ok {
		return fmt.Errorf("%w: \"%v\"", ErrDuplicateOperation, op)
	}
	instance.operations = append(instance.operations, op)
	instance.linkedOperatorType[op] = operatorType
	return nil
}

// Inserts dep. Its endpoints may be inserted later; Check reports unknown endpoints
func (instance *Instance) InsertDependence(dep Dependence) {
	instance.dependences[dep.Destination] = append(instance.dependences[dep.Destination], dep)
	instance.insertedDependences = append(instance.insertedDependences, dep)
}

// Returns a copy of the operations in insertion order, which fixes the variable numbering of a schedule
func (instance *Instance) Operations() []Operation {
	return slices.Clone(instance.operations)
}

func (instance *Instance) Dependences(op Operation) []Dependence {
	return slices.Clone(instance.dependences[op])
}

// Returns all dependences ordered by destination (in operation order) and then by insertion
func (instance *Instance) AllDependences() []Dependence {
	return lo.FlatMap(instance.operations, func(op Operation, _ int) []Dependence {
		return instance.dependences[op]
	})
}

func (instance *Instance) DependenceCount() int {
	return len(instance.insertedDependences)
}

func (instance *Instance) OperatorTypes() []OperatorType {
	return lo.Map(slices.Sorted(maps.Keys(instance.operatorTypes)), func(name string, _ int) OperatorType {
		return instance.operatorTypes[name]
	})
}

func (instance *Instance) LinkedOperatorType(op Operation) (OperatorType, bool) {
	name, ok := instance.linkedOperatorType[op]
	if !ok {
		return OperatorType{}, false
	}
	operatorType, ok := instance.operatorTypes[name]
	return operatorType, ok
}

func (instance *Instance) Latency(op Operation) uint64 {
	operatorType, _ := instance.LinkedOperatorType(op)
	return operatorType.Latency
}

// Checks whether any dependence spans at least one iteration
func (instance *Instance) IsCyclic() bool {
	return lo.SomeBy(instance.AllDependences(), func(dep Dependence) bool {
		return dep.Distance > 0
	})
}

func (instance *Instance) SetStartTime(op Operation, startTime uint64) {
	instance.startTimes[op] = startTime
}

func (instance *Instance) StartTime(op Operation) (uint64, bool) {
	startTime, ok := instance.startTimes[op]
	return startTime, ok
}

func (instance *Instance) StartTimes() map[Operation]uint64 {
	return maps.Clone(instance.startTimes)
}

func (instance *Instance) SetInitiationInterval(ii uint64) {
	instance.initiationInterval = ii
	instance.hasII = true
}

func (instance *Instance) InitiationInterval() (uint64, bool) {
	return instance.initiationInterval, instance.hasII
}

func (instance *Instance) EmitError(message string) {
	instance.errors = append(instance.errors, message)
}

func (instance *Instance) Errors() []string {
	return slices.Clone(instance.errors)
}

// Clears start times, initiation interval and reported errors, so the instance can be scheduled again
func (instance *Instance) Reset() {
	clear(instance.startTimes)
	instance.initiationInterval = 0
	instance.hasII = false
	instance.errors = nil
}
