package casefile

import (
	"time"

	"school-case-management/internal/model"
	"school-case-management/pkg/datemath"
)

// DeadlineSource tells where a step's deadline came from.
type DeadlineSource string

const (
	SourceNone      DeadlineSource = ""
	SourceExplicit  DeadlineSource = "explicit"
	SourceEstimated DeadlineSource = "estimated"
)

// --- Resolved views ---

// ResolvedStep is a protocol step with its deadline worked out.
// Completed steps keep their deadline but carry UrgencyNone.
type ResolvedStep struct {
	Step          model.ProtocolStep
	Deadline      time.Time
	Source        DeadlineSource
	Urgency       datemath.Urgency
	DaysRemaining int
}

// CaseView is a case with the urgency of its most pressing pending step.
type CaseView struct {
	Case          model.Case
	Steps         []ResolvedStep
	Urgency       datemath.Urgency
	Deadline      time.Time // earliest pending deadline, zero if none
	DaysRemaining int
}

// --- UseCase Inputs ---

type ListCasesInput struct {
	Status        string
	Urgency       string
	IncludeClosed bool
	Limit         int
	Offset        int
}

// --- UseCase Outputs ---

type ListCasesOutput struct {
	Cases  []CaseView
	Total  int
	Limit  int
	Offset int
}

type DetailCaseOutput struct {
	Case CaseView
}

type SummaryOutput struct {
	Total       int
	ByUrgency   map[datemath.Urgency]int
	GeneratedAt time.Time
}
