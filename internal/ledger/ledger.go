// Package ledger holds per-account balances of the fungible credit, minted
// under the issuer capability and permanently removed by retirement. State
// is unsynchronized; the core node serializes every mutating call.
package ledger

import (
	"math/big"

	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
	dErrors "bluecarbon/pkg/domain-errors"
)

// RoleChecker is the capability lookup the ledger consults before minting.
type RoleChecker interface {
	Has(role domain.Role, account domain.AccountID) bool
}

// Ledger is the credit balance book. Amounts are exact non-negative
// integers in smallest units (see domain.CreditScale).
type Ledger struct {
	balances     map[domain.AccountID]*big.Int
	retiredBy    map[domain.AccountID]*big.Int
	totalRetired *big.Int

	roles RoleChecker
	log   *eventlog.Log
}

// New builds an empty ledger.
func New(roles RoleChecker, log *eventlog.Log) *Ledger {
	return &Ledger{
		balances:     make(map[domain.AccountID]*big.Int),
		retiredBy:    make(map[domain.AccountID]*big.Int),
		totalRetired: new(big.Int),
		roles:        roles,
		log:          log,
	}
}

// Mint credits amount to the recipient. The caller must hold Issuer. The
// provenance locator ties the issuance back to the evidence package that
// justified it. No supply cap.
func (l *Ledger) Mint(caller, to domain.AccountID, amount *big.Int, provenanceLocator string) error {
	if err := l.CheckMint(caller, amount); err != nil {
		return err
	}
	l.credit(to, amount)
	l.log.Append(eventlog.TypeCreditsIssued, eventlog.CreditsIssued{
		To:                to,
		Amount:            amount.String(),
		ProvenanceLocator: provenanceLocator,
	})
	return nil
}

// CheckMint validates every mint precondition without mutating anything.
// The registry runs it during approval's validate phase so the nested mint
// cannot fail after the submission record has been touched.
func (l *Ledger) CheckMint(caller domain.AccountID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "mint amount must be greater than zero")
	}
	if !l.roles.Has(domain.RoleIssuer, caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "caller lacks issuer role")
	}
	return nil
}

// Transfer moves amount from the caller to the recipient. Total supply is
// conserved; a transfer to self is a permitted no-op on the balance.
func (l *Ledger) Transfer(caller, to domain.AccountID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "transfer amount must be greater than zero")
	}
	if l.balance(caller).Cmp(amount) < 0 {
		return dErrors.New(dErrors.CodeInsufficientBalance, "transfer exceeds caller balance")
	}
	l.debit(caller, amount)
	l.credit(to, amount)
	l.log.Append(eventlog.TypeCreditsTransferred, eventlog.CreditsTransferred{
		From:   caller,
		To:     to,
		Amount: amount.String(),
	})
	return nil
}

// Retire permanently removes amount from the caller's balance, recording it
// against both the caller's and the global retirement counters. There is no
// un-retire.
func (l *Ledger) Retire(caller domain.AccountID, amount *big.Int, reason string) error {
	if amount == nil || amount.Sign() <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "retire amount must be greater than zero")
	}
	if l.balance(caller).Cmp(amount) < 0 {
		return dErrors.New(dErrors.CodeInsufficientBalance, "retire exceeds caller balance")
	}
	l.debit(caller, amount)
	if l.retiredBy[caller] == nil {
		l.retiredBy[caller] = new(big.Int)
	}
	l.retiredBy[caller].Add(l.retiredBy[caller], amount)
	l.totalRetired.Add(l.totalRetired, amount)
	l.log.Append(eventlog.TypeCreditsRetired, eventlog.CreditsRetired{
		Account: caller,
		Amount:  amount.String(),
		Reason:  reason,
	})
	return nil
}

// BalanceOf returns a copy of the account's current balance.
func (l *Ledger) BalanceOf(account domain.AccountID) *big.Int {
	return new(big.Int).Set(l.balance(account))
}

// TotalRetired returns a copy of the global ever-retired counter.
func (l *Ledger) TotalRetired() *big.Int {
	return new(big.Int).Set(l.totalRetired)
}

// RetiredByAccount returns a copy of the account's lifetime retired counter.
func (l *Ledger) RetiredByAccount(account domain.AccountID) *big.Int {
	if r := l.retiredBy[account]; r != nil {
		return new(big.Int).Set(r)
	}
	return new(big.Int)
}

func (l *Ledger) balance(account domain.AccountID) *big.Int {
	if b := l.balances[account]; b != nil {
		return b
	}
	return new(big.Int)
}

func (l *Ledger) credit(account domain.AccountID, amount *big.Int) {
	if l.balances[account] == nil {
		l.balances[account] = new(big.Int)
	}
	l.balances[account].Add(l.balances[account], amount)
}

func (l *Ledger) debit(account domain.AccountID, amount *big.Int) {
	l.balances[account].Sub(l.balances[account], amount)
}
