package backend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"school-case-management/internal/casefile/repository"
	"school-case-management/internal/model"
	pkgLog "school-case-management/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a CaseRepository backed by the school backend.
func New(client *Client, l pkgLog.Logger) repository.CaseRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListCases(ctx context.Context, opt repository.ListCasesOptions) ([]model.Case, error) {
	dtos, err := r.client.ListCases(ctx, opt.Status)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: failed to list cases: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	cases := make([]model.Case, 0, len(dtos))
	for i := range dtos {
		c, err := r.dtoToCase(&dtos[i])
		if err != nil {
			// partial success: skip records the backend sent malformed
			r.l.Warnf(ctx, "backend repository: skipping case %q: %v", dtos[i].ID, err)
			continue
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (r *implRepository) GetCase(ctx context.Context, id string) (model.Case, error) {
	dto, err := r.client.GetCase(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Case{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "backend repository: failed to get case %s: %v", id, err)
		return model.Case{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return r.dtoToCase(dto)
}

// dtoToCase converts a backend CaseDTO to model.Case, ordering steps by Order.
func (r *implRepository) dtoToCase(dto *CaseDTO) (model.Case, error) {
	createdAt, err := parseTimestamp(dto.CreatedAt)
	if err != nil {
		return model.Case{}, fmt.Errorf("%w: created_at: %v", repository.ErrMalformedValue, err)
	}

	steps := make([]model.ProtocolStep, 0, len(dto.ProtocolSteps))
	for _, s := range dto.ProtocolSteps {
		step := model.ProtocolStep{
			ID:            s.ID,
			Name:          s.Name,
			Order:         s.Order,
			EstimatedTime: s.EstimatedTime,
			Completed:     s.Completed,
		}
		if s.Deadline != nil && strings.TrimSpace(*s.Deadline) != "" {
			deadline, err := parseTimestamp(*s.Deadline)
			if err != nil {
				return model.Case{}, fmt.Errorf("%w: step %s deadline: %v", repository.ErrMalformedValue, s.ID, err)
			}
			step.Deadline = &deadline
		}
		steps = append(steps, step)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	return model.Case{
		ID:          dto.ID,
		Folio:       dto.Folio,
		StudentName: dto.StudentName,
		Title:       dto.Title,
		Status:      model.CaseStatus(strings.ToLower(dto.Status)),
		CreatedAt:   createdAt,
		Steps:       steps,
	}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts the formats the backend is known to emit.
// Timestamps without an offset are read as UTC.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
