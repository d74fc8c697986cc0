package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"school-case-management/internal/casefile/repository"
	"school-case-management/internal/model"
	pkgLog "school-case-management/pkg/log"
)

// Config sizes the cache.
type Config struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	next  repository.CaseRepository
	cases *expirable.LRU[string, model.Case]
	lists *expirable.LRU[string, []model.Case]
	l     pkgLog.Logger
}

// New wraps next with an expiring LRU for recently read cases and lists.
// Not-found and failed reads are never cached.
func New(next repository.CaseRepository, cfg Config, l pkgLog.Logger) repository.CaseRepository {
	size := cfg.Size
	if size <= 0 {
		size = 256
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &implRepository{
		next:  next,
		cases: expirable.NewLRU[string, model.Case](size, nil, ttl),
		lists: expirable.NewLRU[string, []model.Case](size, nil, ttl),
		l:     l,
	}
}

func (r *implRepository) ListCases(ctx context.Context, opt repository.ListCasesOptions) ([]model.Case, error) {
	key := opt.CacheKey()
	if cached, ok := r.lists.Get(key); ok {
		r.l.Debugf(ctx, "case cache: list hit %s", key)
		return cached, nil
	}

	cases, err := r.next.ListCases(ctx, opt)
	if err != nil {
		return nil, err
	}

	r.lists.Add(key, cases)
	for _, c := range cases {
		r.cases.Add(c.ID, c)
	}
	return cases, nil
}

func (r *implRepository) GetCase(ctx context.Context, id string) (model.Case, error) {
	if cached, ok := r.cases.Get(id); ok {
		r.l.Debugf(ctx, "case cache: hit %s", id)
		return cached, nil
	}

	c, err := r.next.GetCase(ctx, id)
	if err != nil {
		return model.Case{}, err
	}

	r.cases.Add(id, c)
	return c, nil
}
