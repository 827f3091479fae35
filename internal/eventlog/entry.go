// Package eventlog is the append-only, ordered record of every mutation the
// core applies. Entries are hash-chained so independent auditors can replay
// the log and detect tampering without consulting current state.
package eventlog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bluecarbon/pkg/domain"
)

// EntryType tags each log entry with the operation that produced it.
type EntryType string

const (
	TypeProjectRegistered  EntryType = "project_registered"
	TypeMRVSubmitted       EntryType = "mrv_submitted"
	TypeMRVApproved        EntryType = "mrv_approved"
	TypeMRVRejected        EntryType = "mrv_rejected"
	TypeCreditsIssued      EntryType = "credits_issued"
	TypeCreditsTransferred EntryType = "credits_transferred"
	TypeCreditsRetired     EntryType = "credits_retired"
	TypeRoleGranted        EntryType = "role_granted"
	TypeRoleRevoked        EntryType = "role_revoked"
	TypeSystemPaused       EntryType = "system_paused"
	TypeSystemUnpaused     EntryType = "system_unpaused"
)

// Entry is one committed log record. Index starts at 1 and increases by one
// per entry; Hash covers the previous hash, index, type, timestamp, and
// payload, forming the tamper-evidence chain.
type Entry struct {
	ID         uuid.UUID       `json:"id"`
	Index      int64           `json:"index"`
	Type       EntryType       `json:"type"`
	PrevHash   string          `json:"prev_hash,omitempty"`
	Hash       string          `json:"hash"`
	Payload    json.RawMessage `json:"payload"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// entryHash derives the chain hash for an entry's fields.
func entryHash(prevHash string, index int64, typ EntryType, recordedAt time.Time, payload []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|", prevHash, index, typ, recordedAt.UTC().Format(time.RFC3339Nano))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyChain replays entries (which must be ordered by index) and reports
// the first index at which the chain breaks, or 0 when it is intact.
func VerifyChain(entries []Entry) (int64, bool) {
	prev := ""
	next := int64(1)
	for _, e := range entries {
		if e.Index != next {
			return e.Index, false
		}
		if e.PrevHash != prev {
			return e.Index, false
		}
		if entryHash(e.PrevHash, e.Index, e.Type, e.RecordedAt, e.Payload) != e.Hash {
			return e.Index, false
		}
		prev = e.Hash
		next++
	}
	return 0, true
}

// Payload shapes. Amounts are decimal strings in smallest units so replays
// stay exact regardless of the consumer's numeric types.

type ProjectRegistered struct {
	ProjectID domain.ProjectID `json:"project_id"`
	Owner     domain.AccountID `json:"owner"`
	Name      string           `json:"name"`
}

type MRVSubmitted struct {
	SubmissionID    domain.SubmissionID `json:"submission_id"`
	ProjectID       domain.ProjectID    `json:"project_id"`
	ClaimedQuantity uint64              `json:"claimed_quantity"`
	PackageLocator  string              `json:"package_locator"`
}

type MRVApproved struct {
	SubmissionID domain.SubmissionID `json:"submission_id"`
	Verifier     domain.AccountID    `json:"verifier"`
	MintedAmount string              `json:"minted_amount"`
}

type MRVRejected struct {
	SubmissionID domain.SubmissionID `json:"submission_id"`
	Verifier     domain.AccountID    `json:"verifier"`
	Reason       string              `json:"reason"`
}

type CreditsIssued struct {
	To                domain.AccountID `json:"to"`
	Amount            string           `json:"amount"`
	ProvenanceLocator string           `json:"provenance_locator"`
}

type CreditsTransferred struct {
	From   domain.AccountID `json:"from"`
	To     domain.AccountID `json:"to"`
	Amount string           `json:"amount"`
}

type CreditsRetired struct {
	Account domain.AccountID `json:"account"`
	Amount  string           `json:"amount"`
	Reason  string           `json:"reason"`
}

type RoleGranted struct {
	Role      domain.Role      `json:"role"`
	Account   domain.AccountID `json:"account"`
	GrantedBy domain.AccountID `json:"granted_by"`
}

type RoleRevoked struct {
	Role      domain.Role      `json:"role"`
	Account   domain.AccountID `json:"account"`
	RevokedBy domain.AccountID `json:"revoked_by"`
}

type SystemPaused struct {
	By domain.AccountID `json:"by"`
}

type SystemUnpaused struct {
	By domain.AccountID `json:"by"`
}
