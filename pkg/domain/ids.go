// Package domain holds the identifier and value types shared across the
// role authority, registry, and credit ledger. Identifiers are parsed at
// trust boundaries; direct casting bypasses validation.
package domain

import (
	"strconv"
	"strings"

	dErrors "bluecarbon/pkg/domain-errors"
)

// AccountID is the opaque caller identity used consistently across role
// membership, project ownership, and ledger balances.
type AccountID string

// ParseAccountID constructs an AccountID from external input.
//
// Errors: CodeInvalidInput when the value is empty or whitespace.
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}
	return AccountID(s), nil
}

func (a AccountID) String() string { return string(a) }

// IsZero reports whether the account id is unset, used for the verifier
// field of an unprocessed submission.
func (a AccountID) IsZero() bool { return a == "" }

// ProjectID identifies a registered project. The sequence starts at 1 and
// ids are never reused.
type ProjectID uint64

// ParseProjectID parses a decimal project id from external input.
func ParseProjectID(s string) (ProjectID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "project id must be a positive integer")
	}
	return ProjectID(n), nil
}

func (p ProjectID) String() string { return strconv.FormatUint(uint64(p), 10) }

// SubmissionID identifies an MRV submission. Same sequencing rules as
// ProjectID.
type SubmissionID uint64

// ParseSubmissionID parses a decimal submission id from external input.
func ParseSubmissionID(s string) (SubmissionID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "submission id must be a positive integer")
	}
	return SubmissionID(n), nil
}

func (s SubmissionID) String() string { return strconv.FormatUint(uint64(s), 10) }
