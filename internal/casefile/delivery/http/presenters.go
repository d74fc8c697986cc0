package http

import (
	"time"

	"school-case-management/internal/casefile"
	"school-case-management/pkg/datemath"
	"school-case-management/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Status        string `form:"status"         binding:"omitempty,oneof=open in_progress closed"`
	Urgency       string `form:"urgency"        binding:"omitempty,oneof=critical warning on_time none"`
	IncludeClosed bool   `form:"include_closed"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listReq) toInput() casefile.ListCasesInput {
	return casefile.ListCasesInput{
		Status:        r.Status,
		Urgency:       r.Urgency,
		IncludeClosed: r.IncludeClosed,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}
}

// --- Response DTOs ---

type stepResp struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Order         int            `json:"order"`
	EstimatedTime string         `json:"estimated_time,omitempty"`
	Completed     bool           `json:"completed"`
	Deadline      *time.Time     `json:"deadline"`
	DeadlineDate  *response.Date `json:"deadline_date,omitempty"`
	Source        string         `json:"deadline_source,omitempty"`
	Urgency       string         `json:"urgency"`
	Color         string         `json:"color"`
	DaysRemaining *int           `json:"days_remaining"`
}

type caseResp struct {
	ID            string     `json:"id"`
	Folio         string     `json:"folio"`
	StudentName   string     `json:"student_name"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	Urgency       string     `json:"urgency"`
	Color         string     `json:"color"`
	Deadline      *time.Time `json:"deadline"`
	DaysRemaining *int       `json:"days_remaining"`
	Steps         []stepResp `json:"steps,omitempty"`
}

func newStepResp(rs casefile.ResolvedStep) stepResp {
	resp := stepResp{
		ID:            rs.Step.ID,
		Name:          rs.Step.Name,
		Order:         rs.Step.Order,
		EstimatedTime: rs.Step.EstimatedTime,
		Completed:     rs.Step.Completed,
		Source:        string(rs.Source),
		Urgency:       string(rs.Urgency),
		Color:         rs.Urgency.Color(),
	}
	if !rs.Deadline.IsZero() {
		due := rs.Deadline
		date := response.Date(due)
		days := rs.DaysRemaining
		resp.Deadline = &due
		resp.DeadlineDate = &date
		resp.DaysRemaining = &days
	}
	return resp
}

func newCaseResp(v casefile.CaseView, withSteps bool) caseResp {
	resp := caseResp{
		ID:          v.Case.ID,
		Folio:       v.Case.Folio,
		StudentName: v.Case.StudentName,
		Title:       v.Case.Title,
		Status:      string(v.Case.Status),
		CreatedAt:   v.Case.CreatedAt,
		Urgency:     string(v.Urgency),
		Color:       v.Urgency.Color(),
	}
	if !v.Deadline.IsZero() {
		due := v.Deadline
		days := v.DaysRemaining
		resp.Deadline = &due
		resp.DaysRemaining = &days
	}
	if withSteps {
		resp.Steps = make([]stepResp, len(v.Steps))
		for i, rs := range v.Steps {
			resp.Steps[i] = newStepResp(rs)
		}
	}
	return resp
}

type listResp struct {
	Cases  []caseResp `json:"cases"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out casefile.ListCasesOutput) listResp {
	cases := make([]caseResp, len(out.Cases))
	for i, v := range out.Cases {
		cases[i] = newCaseResp(v, false)
	}
	return listResp{
		Cases:  cases,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Case caseResp `json:"case"`
}

func (h *handler) newDetailResp(out casefile.DetailCaseOutput) detailResp {
	return detailResp{Case: newCaseResp(out.Case, true)}
}

type summaryResp struct {
	Total       int               `json:"total"`
	Critical    int               `json:"critical"`
	Warning     int               `json:"warning"`
	OnTime      int               `json:"on_time"`
	None        int               `json:"none"`
	GeneratedAt response.DateTime `json:"generated_at"`
}

func (h *handler) newSummaryResp(out casefile.SummaryOutput) summaryResp {
	return summaryResp{
		Total:       out.Total,
		Critical:    out.ByUrgency[datemath.UrgencyCritical],
		Warning:     out.ByUrgency[datemath.UrgencyWarning],
		OnTime:      out.ByUrgency[datemath.UrgencyOnTime],
		None:        out.ByUrgency[datemath.UrgencyNone],
		GeneratedAt: response.DateTime(out.GeneratedAt),
	}
}
