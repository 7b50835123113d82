package dynamic

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchMember signals that a member cannot be invoked: nothing is stored
	// under the name, or the stored value is not callable.
	ErrNoSuchMember = errors.New("no such member")

	// ErrInvalidArguments signals that the arguments passed to InvokeMember
	// cannot be bound to the parameters of the stored function.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// MemberError reports a member invocation that could not be dispatched.
type MemberError struct {
	Name string
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNoSuchMember, e.Name)
}

func (e *MemberError) Unwrap() error {
	return ErrNoSuchMember
}

// ArgumentError reports arguments that do not fit the invoked function.
type ArgumentError struct {
	Member string // the invoked member name
	Index  int    // position of the offending argument, -1 for an arity mismatch
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invoke %q: %v: %s", e.Member, ErrInvalidArguments, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArguments
}
