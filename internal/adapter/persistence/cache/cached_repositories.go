// Package cache wraps the house and profile repositories with an in-process
// read-through cache. Contact summaries and owner phone lookups read the same
// few listings and owners over and over.
package cache

import (
	"context"
	"log"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/karlseguin/ccache/v3"
)

const defaultMaxSize = 5000

type HouseRepository struct {
	next  interfaces.IHouseRepository
	cache *ccache.Cache[entities.House]
	ttl   time.Duration
}

var _ interfaces.IHouseRepository = (*HouseRepository)(nil)

func NewHouseRepository(next interfaces.IHouseRepository, ttl time.Duration) *HouseRepository {
	return &HouseRepository{
		next:  next,
		cache: ccache.New(ccache.Configure[entities.House]().MaxSize(defaultMaxSize)),
		ttl:   ttl,
	}
}

func (r *HouseRepository) Create(ctx context.Context, h entities.House) (entities.House, error) {
	created, err := r.next.Create(ctx, h)
	if err != nil {
		return entities.House{}, err
	}
	r.cache.Set(created.ID, created, r.ttl)
	return created, nil
}

// GetByID serves from the cache when fresh. Misses are not cached so a listing
// created by another instance becomes visible on the next read.
func (r *HouseRepository) GetByID(ctx context.Context, id string) (entities.House, error) {
	if item := r.cache.Get(id); item != nil && !item.Expired() {
		return item.Value(), nil
	}
	h, err := r.next.GetByID(ctx, id)
	if err != nil {
		return entities.House{}, err
	}
	if h.ID != "" {
		r.cache.Set(id, h, r.ttl)
	}
	return h, nil
}

func (r *HouseRepository) List(ctx context.Context, filter interfaces.HouseFilter) ([]entities.House, error) {
	return r.next.List(ctx, filter)
}

func (r *HouseRepository) Stop() {
	r.cache.Stop()
}

type ProfileRepository struct {
	next  interfaces.IProfileRepository
	cache *ccache.Cache[entities.Profile]
	ttl   time.Duration
}

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(next interfaces.IProfileRepository, ttl time.Duration) *ProfileRepository {
	return &ProfileRepository{
		next:  next,
		cache: ccache.New(ccache.Configure[entities.Profile]().MaxSize(defaultMaxSize)),
		ttl:   ttl,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	if item := r.cache.Get(id); item != nil && !item.Expired() {
		return item.Value(), nil
	}
	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID != "" {
		r.cache.Set(id, p, r.ttl)
	}
	return p, nil
}

// Put writes through and drops the cached copy when the write fails, since the
// stored state is then unknown.
func (r *ProfileRepository) Put(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	saved, err := r.next.Put(ctx, p)
	if err != nil {
		if r.cache.Delete(p.ID) {
			log.Printf("[profile][cache] evicted after failed put profile_id=%s", p.ID)
		}
		return entities.Profile{}, err
	}
	r.cache.Set(saved.ID, saved, r.ttl)
	return saved, nil
}

func (r *ProfileRepository) Stop() {
	r.cache.Stop()
}
