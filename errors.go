package opexpr

import (
	"errors"
	"strconv"
)

var (
	// ErrDuplicate is the reason for a definition whose key already exists.
	ErrDuplicate = errors.New("already defined")
	// ErrNotDefined is the reason for changing an operator that does not
	// exist.
	ErrNotDefined = errors.New("not defined")
	// ErrPrecedence is the reason for a negative operator precedence.
	ErrPrecedence = errors.New("negative precedence")
	// ErrSpelling is the reason for an operator spelling that the tokenizer
	// could never produce.
	ErrSpelling = errors.New("invalid spelling")
	// ErrArity is the reason for a negative function arity.
	ErrArity = errors.New("negative arity")
	// ErrCallback is the reason for a definition with a nil callback.
	ErrCallback = errors.New("nil callback")
)

// DefineError is an error indicating a rejected change to an expression's
// operators or functions. It unwraps to one of the reasons above.
type DefineError struct {
	// Name is the operator spelling or function name.
	Name string
	// Func is whether the definition was of a function.
	Func bool
	// Fixity is the fixity of the operator, if the definition was not of a
	// function.
	Fixity Fixity
	// Err is the reason for rejection.
	Err error
}

func (err *DefineError) Error() string {
	what := "function " + strconv.Quote(err.Name)
	if !err.Func {
		what = err.Fixity.String() + " operator " + strconv.Quote(err.Name)
	}
	return "opexpr: " + what + ": " + err.Err.Error()
}

func (err *DefineError) Unwrap() error {
	return err.Err
}

// NameError is an error from a lookup for a variable that does not appear in
// the expression.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "opexpr: undefined variable: " + strconv.Quote(err.Name)
}

// IndexError is an error from a lookup for a variable by an index outside the
// variable table.
type IndexError struct {
	// Index is the requested index.
	Index int
	// Len is the number of variables in the expression.
	Len int
}

func (err *IndexError) Error() string {
	return "opexpr: variable index " + strconv.Itoa(err.Index) + " out of range with " + strconv.Itoa(err.Len) + " variables"
}
