package domain

import "time"

// Document statuses. A freshly created document carries no status at all; the
// workflow stamps one on the first transition. StatusDraft names the implicit
// initial state of the machine.
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// History actions recorded by the workflow.
const (
	ActionSubmission = "Submission"
	ActionApproval   = "Approbation"
	ActionRejection  = "Rejet"
)

// Document is a report document moving through the elaboration workflow.
type Document struct {
	ID        string         `json:"id"`
	Category  string         `json:"category,omitempty"`
	Title     string         `json:"title,omitempty"`
	Content   string         `json:"content,omitempty"`
	Status    string         `json:"status,omitempty"`
	EntityID  string         `json:"entityId,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	History   []HistoryEntry `json:"history"`
	Signature *Signature     `json:"signature,omitempty"`
}

func (d Document) RecordID() string { return d.ID }

func (d Document) WithID(id string) Document { d.ID = id; return d }

// HistoryEntry is one line of a document's append-only audit trail.
type HistoryEntry struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
}

// Signature is the mock e-signature attached to a document. Signing is
// independent of the workflow status and overwrites any prior signature.
type Signature struct {
	Signed   bool      `json:"signed"`
	SignedBy string    `json:"signedBy,omitempty"`
	SignedAt time.Time `json:"signedAt"`
}
