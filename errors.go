package main

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrUndefinedOperation = errors.New("undefined operation")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrBlockUnderrun      = errors.New("block underrun: } without matching {")
	ErrUnterminatedBlock  = errors.New("unterminated block: { without matching }")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrDepthExceeded      = errors.New("evaluation depth exceeded")
)

// TypeError reports an operand whose kind did not match what an operation
// required.
type TypeError struct {
	Expected Kind
	Found    Kind
}

func typeError(expected, found Kind) error { return &TypeError{expected, found} }

func (err *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %v, found %v", err.Expected, err.Found)
}

func (err *TypeError) Is(target error) bool { return target == ErrTypeMismatch }

// UndefinedError reports a name with no binding.
type UndefinedError struct{ Name string }

func (err *UndefinedError) Error() string {
	return fmt.Sprintf("undefined operation %q", err.Name)
}

func (err *UndefinedError) Is(target error) bool { return target == ErrUndefinedOperation }

// IndexError reports an index operand outside of the operand stack.
type IndexError struct {
	Index int32
	Depth int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("index %v out of range for stack depth %v", err.Index, err.Depth)
}

func (err *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// LiteralError reports a number-shaped token that could not be parsed.
type LiteralError struct {
	Token string
	Err   error
}

func (err *LiteralError) Error() string {
	return fmt.Sprintf("invalid number literal %q: %v", err.Token, err.Err)
}

func (err *LiteralError) Unwrap() error { return err.Err }

// OpError annotates an error with the name of the operator being executed.
type OpError struct {
	Op  string
	Err error
}

func (err *OpError) Error() string { return fmt.Sprintf("%v: %v", err.Op, err.Err) }
func (err *OpError) Unwrap() error { return err.Err }
