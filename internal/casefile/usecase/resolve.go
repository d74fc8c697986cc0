package usecase

import (
	"sort"
	"time"

	"school-case-management/internal/casefile"
	"school-case-management/internal/model"
	"school-case-management/pkg/datemath"
)

// resolveCase works out every step deadline of c and the case-level
// urgency from its pending steps.
func (uc *implUseCase) resolveCase(c model.Case, now time.Time) casefile.CaseView {
	view := casefile.CaseView{
		Case:    c,
		Steps:   make([]casefile.ResolvedStep, 0, len(c.Steps)),
		Urgency: datemath.UrgencyNone,
	}

	for _, step := range c.Steps {
		rs := uc.resolveStep(c, step, now)
		view.Steps = append(view.Steps, rs)

		if step.Completed || rs.Deadline.IsZero() {
			continue
		}
		if rs.Urgency.Rank() < view.Urgency.Rank() {
			view.Urgency = rs.Urgency
		}
		if view.Deadline.IsZero() || rs.Deadline.Before(view.Deadline) {
			view.Deadline = rs.Deadline
		}
	}

	if !view.Deadline.IsZero() {
		view.DaysRemaining = uc.dateMath.DaysRemaining(view.Deadline, now)
	}
	return view
}

// resolveStep prefers the explicit deadline and falls back to projecting
// the estimated time from the case creation instant.
func (uc *implUseCase) resolveStep(c model.Case, step model.ProtocolStep, now time.Time) casefile.ResolvedStep {
	rs := casefile.ResolvedStep{
		Step:    step,
		Source:  casefile.SourceNone,
		Urgency: datemath.UrgencyNone,
	}

	switch {
	case step.Deadline != nil && !step.Deadline.IsZero():
		rs.Deadline = step.Deadline.In(uc.dateMath.Location())
		rs.Source = casefile.SourceExplicit
	case !c.CreatedAt.IsZero():
		if due, ok := uc.dateMath.ComputeDeadline(step.EstimatedTime, c.CreatedAt); ok {
			rs.Deadline = due
			rs.Source = casefile.SourceEstimated
		}
	}

	if rs.Deadline.IsZero() {
		return rs
	}
	rs.DaysRemaining = uc.dateMath.DaysRemaining(rs.Deadline, now)
	if !step.Completed {
		rs.Urgency = uc.dateMath.Classify(rs.Deadline, now)
	}
	return rs
}

// sortViews orders cases by urgency, then earliest deadline, then newest
// case, then ID so the order is total.
func sortViews(views []casefile.CaseView) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if ra, rb := a.Urgency.Rank(), b.Urgency.Rank(); ra != rb {
			return ra < rb
		}
		if !a.Deadline.Equal(b.Deadline) {
			switch {
			case a.Deadline.IsZero():
				return false
			case b.Deadline.IsZero():
				return true
			default:
				return a.Deadline.Before(b.Deadline)
			}
		}
		if !a.Case.CreatedAt.Equal(b.Case.CreatedAt) {
			return a.Case.CreatedAt.After(b.Case.CreatedAt)
		}
		return a.Case.ID < b.Case.ID
	})
}
