package problem

import "errors"

var (
	ErrUnknownOperation          = errors.New("problem: unknown operation")
	ErrDuplicateOperation        = errors.New("problem: duplicate operation")
	ErrUnknownOperatorType       = errors.New("problem: unknown operator type")
	ErrDuplicateOperatorType     = errors.New("problem: duplicate operator type")
	ErrMissingStartTime          = errors.New("problem: missing start time")
	ErrMissingInitiationInterval = errors.New("problem: missing initiation interval")
	ErrPrecedenceViolated        = errors.New("problem: precedence constraint violated")
)
