package http

import (
	"time"

	"school-case-management/internal/deadline"
	"school-case-management/pkg/response"
)

// --- Request DTOs ---

type computeReq struct {
	Duration string `form:"duration" binding:"required,max=255"`
	Start    string `form:"start"    binding:"max=64"`
}

func (r computeReq) toInput() deadline.ComputeInput {
	return deadline.ComputeInput{
		Duration: r.Duration,
		Start:    r.Start,
	}
}

type classifyReq struct {
	Deadline string `form:"deadline" binding:"max=64"`
}

func (r classifyReq) toInput() deadline.ClassifyInput {
	return deadline.ClassifyInput{Deadline: r.Deadline}
}

// --- Response DTOs ---

type durationResp struct {
	Magnitude        int    `json:"magnitude"`
	Unit             string `json:"unit"`
	BusinessDaysOnly bool   `json:"business_days_only"`
}

type computeResp struct {
	Start         time.Time     `json:"start"`
	Duration      durationResp  `json:"duration"`
	Deadline      time.Time     `json:"deadline"`
	DeadlineDate  response.Date `json:"deadline_date"`
	Urgency       string        `json:"urgency"`
	Color         string        `json:"color"`
	DaysRemaining int           `json:"days_remaining"`
}

func (h *handler) newComputeResp(out deadline.ComputeOutput) computeResp {
	return computeResp{
		Start: out.Start,
		Duration: durationResp{
			Magnitude:        out.Duration.Magnitude,
			Unit:             string(out.Duration.Unit),
			BusinessDaysOnly: out.Duration.BusinessDaysOnly,
		},
		Deadline:      out.Deadline,
		DeadlineDate:  response.Date(out.Deadline),
		Urgency:       string(out.Urgency),
		Color:         out.Urgency.Color(),
		DaysRemaining: out.DaysRemaining,
	}
}

type classifyResp struct {
	Deadline      *time.Time `json:"deadline"`
	Urgency       string     `json:"urgency"`
	Color         string     `json:"color"`
	DaysRemaining *int       `json:"days_remaining"`
}

func (h *handler) newClassifyResp(out deadline.ClassifyOutput) classifyResp {
	resp := classifyResp{
		Urgency: string(out.Urgency),
		Color:   out.Urgency.Color(),
	}
	if !out.Deadline.IsZero() {
		due := out.Deadline
		days := out.DaysRemaining
		resp.Deadline = &due
		resp.DaysRemaining = &days
	}
	return resp
}
