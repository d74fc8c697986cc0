package model

import "time"

// CaseStatus is the lifecycle status reported by the school backend.
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusClosed     CaseStatus = "closed"
)

// Case is a student incident case as read from the school backend.
type Case struct {
	ID          string
	Folio       string // Human-facing case number
	StudentName string
	Title       string
	Status      CaseStatus
	CreatedAt   time.Time
	Steps       []ProtocolStep
}

// ProtocolStep is one step of the protocol a case follows.
// Either Deadline or EstimatedTime may be set; Deadline wins when both are.
type ProtocolStep struct {
	ID            string
	Name          string
	Order         int
	EstimatedTime string     // Duration descriptor such as "3 días hábiles"
	Deadline      *time.Time // Explicit deadline set by the backend
	Completed     bool
}

// IsClosed reports whether the case has been closed.
func (c Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}
