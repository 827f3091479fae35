package domain

import (
	"math/big"
	"strings"

	dErrors "bluecarbon/pkg/domain-errors"
)

// CreditScale is the fixed factor relating a submission's claimed quantity
// (whole tonnes CO2e) to the ledger's smallest unit: one credit equals
// 10^18 smallest units. Balances are exact integers throughout.
var CreditScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// TonnesToUnits converts a claimed whole-tonne quantity to smallest units.
func TonnesToUnits(tonnes uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(tonnes), CreditScale)
}

// ParseAmount parses a non-negative integer amount in smallest units from
// external input.
//
// Errors: CodeInvalidInput for empty, non-numeric, or negative values.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "amount cannot be empty")
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "amount must be a base-10 integer")
	}
	if n.Sign() < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "amount cannot be negative")
	}
	return n, nil
}

// ParsePositiveAmount is ParseAmount with a strictly-positive requirement,
// used by mint, transfer, and retire where zero is meaningless.
func ParsePositiveAmount(s string) (*big.Int, error) {
	n, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "amount must be greater than zero")
	}
	return n, nil
}
