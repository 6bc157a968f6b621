package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVoterNotFound     = errors.New("voter not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrNotRegistered     = errors.New("wallet is not registered as a voter")
	ErrAlreadyCandidate  = errors.New("already registered as a candidate")
	ErrAlreadyVoted      = errors.New("voter has already voted")
	ErrInvalidCandidate  = errors.New("target is not a registered candidate")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrInternal          = errors.New("internal server error")
)

// ValidationError reports which field failed which rule so the boundary
// layer can render a field-level message.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Rule)
}

// DuplicateIdentityError names the unique field that collided.
type DuplicateIdentityError struct {
	Field string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// UnderageError carries the age threshold the subject failed to meet.
type UnderageError struct {
	RequiredAge int
}

func (e *UnderageError) Error() string {
	return fmt.Sprintf("must be at least %d years old", e.RequiredAge)
}

// PartialTallyError marks a tally run aborted because one candidate's vote
// count could not be read. The failed candidate is named rather than
// reported as zero, which would corrupt the ranking.
type PartialTallyError struct {
	WalletAddress string
	Name          string
	Err           error
}

func (e *PartialTallyError) Error() string {
	return fmt.Sprintf("vote count unavailable for candidate %s (%s): %v", e.Name, e.WalletAddress, e.Err)
}

func (e *PartialTallyError) Unwrap() error {
	return e.Err
}
