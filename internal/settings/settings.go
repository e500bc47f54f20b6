// Package settings provides typed access to the back-office key/value
// settings with a read-through cache.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Well-known setting keys.
const (
	KeyFeatured = "featured_vehicles"
	KeyBanner   = "banner"
)

var (
	// ErrInvalidKey is returned for keys outside the allowed alphabet.
	ErrInvalidKey = errors.New("invalid setting key")
	// ErrNoStore is returned for writes when no hosted store is configured.
	ErrNoStore = errors.New("no settings store configured")
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,63}$`)

// Service reads and writes settings through the store. Reads are cached
// until the TTL expires or the key is written through this Service.
type Service struct {
	store store.Store
	cache *expirable.LRU[string, json.RawMessage]
}

// New creates a Service caching up to size keys for ttl. With a nil store
// every key reads as unset and writes fail with ErrNoStore.
func New(s store.Store, size int, ttl time.Duration) *Service {
	return &Service{
		store: s,
		cache: expirable.NewLRU[string, json.RawMessage](size, nil, ttl),
	}
}

// ValidKey reports whether key may be stored.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// Get returns the raw value for key, or store.ErrNotFound.
func (s *Service) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if !ValidKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if v, ok := s.cache.Get(key); ok {
		metrics.SettingsCacheHitsTotal.Inc()
		return v, nil
	}
	metrics.SettingsCacheMissesTotal.Inc()
	if s.store == nil {
		return nil, store.ErrNotFound
	}

	st, err := s.store.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, st.Value)
	return st.Value, nil
}

// Put stores value under key and drops the cached copy.
func (s *Service) Put(ctx context.Context, key string, value json.RawMessage) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if !json.Valid(value) {
		return fmt.Errorf("setting %q: value is not valid JSON", key)
	}
	if s.store == nil {
		return ErrNoStore
	}
	if err := s.store.PutSetting(ctx, key, value); err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	s.cache.Remove(key)
	return nil
}

// FeaturedIDs returns the featured vehicle ids in display order. An unset
// key yields no ids. The value may be a JSON array or a comma separated
// string.
func (s *Service) FeaturedIDs(ctx context.Context) ([]string, error) {
	raw, err := s.Get(ctx, KeyFeatured)
	if errors.Is(err, store.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var t domain.Text
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", KeyFeatured, err)
	}

	items := t.List
	if !t.IsList {
		items = strings.Split(t.Str, ",")
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, id := range items {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// SetFeaturedIDs replaces the featured vehicle list.
func (s *Service) SetFeaturedIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyFeatured, err)
	}
	return s.Put(ctx, KeyFeatured, b)
}

// Banner returns the landing page banner. An unset key yields a disabled
// banner.
func (s *Service) Banner(ctx context.Context) (domain.Banner, error) {
	raw, err := s.Get(ctx, KeyBanner)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Banner{}, nil
	}
	if err != nil {
		return domain.Banner{}, err
	}

	var b domain.Banner
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.Banner{}, fmt.Errorf("decoding %s: %w", KeyBanner, err)
	}
	return b, nil
}

// SetBanner replaces the landing page banner.
func (s *Service) SetBanner(ctx context.Context, b domain.Banner) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyBanner, err)
	}
	return s.Put(ctx, KeyBanner, raw)
}
