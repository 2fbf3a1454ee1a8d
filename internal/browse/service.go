package browse

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/angelmondragon/skinshop-backend/internal/catalog"
)

// Source is a named, versioned set of skins. Version must change whenever the
// skins do.
type Source interface {
	Name() string
	Version() uint64
	Snapshot() (uint64, []catalog.Skin)
}

type queryRecorder interface {
	ObserveQuery(source string, cacheHit bool)
}

// Service memoises query views per (source, version, params).
type Service struct {
	views   *expirable.LRU[string, []catalog.Skin]
	metrics queryRecorder
}

// NewService builds a query cache holding up to size views for ttl.
func NewService(size int, ttl time.Duration, metrics queryRecorder) (*Service, error) {
	if size <= 0 {
		return nil, fmt.Errorf("browse cache size must be positive")
	}
	return &Service{
		views:   expirable.NewLRU[string, []catalog.Skin](size, nil, ttl),
		metrics: metrics,
	}, nil
}

// Query returns the view of src for p, computing it when the cache has no
// entry for the current version.
func (s *Service) Query(src Source, p Params) []catalog.Skin {
	key := viewKey(src.Name(), src.Version(), p)
	if view, ok := s.views.Get(key); ok {
		s.observe(src.Name(), true)
		return slices.Clone(view)
	}

	version, skins := src.Snapshot()
	view := Query(skins, p)
	s.views.Add(viewKey(src.Name(), version, p), view)
	s.observe(src.Name(), false)
	return slices.Clone(view)
}

func (s *Service) observe(source string, hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(source, hit)
	}
}

func viewKey(source string, version uint64, p Params) string {
	return source + "\x00" + strconv.FormatUint(version, 10) + "\x00" + p.cacheKey()
}

// CatalogSource exposes the immutable catalog as a Source whose version never
// changes.
type CatalogSource struct {
	Catalog *catalog.Catalog
}

func (c CatalogSource) Name() string    { return "catalog" }
func (c CatalogSource) Version() uint64 { return 0 }
func (c CatalogSource) Snapshot() (uint64, []catalog.Skin) {
	return 0, c.Catalog.All()
}
