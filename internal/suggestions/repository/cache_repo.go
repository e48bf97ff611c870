package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

const (
	setKeyPrefix      = "sugg:doc:"      // Latest suggestion set per document: sugg:doc:{document_id}
	inFlightKeyPrefix = "sugg:inflight:" // Re-entrancy markers: sugg:inflight:{kind}:{document_id}
	setTTL            = time.Hour        // A generated list goes stale quickly as the user edits
	inFlightTTL       = 2 * time.Minute  // Bounds how long a crashed request can block new ones
)

// ErrSetNotFound is returned when no suggestion set is cached for a document.
var ErrSetNotFound = errors.New("no cached suggestion set")

// CacheRepository handles Redis operations for suggestion sets and the
// in-flight markers guarding re-entrancy.
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository creates a new CacheRepository
func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// AcquireInFlight claims the marker for one kind+document. It reports false
// when another request already holds it.
func (r *CacheRepository) AcquireInFlight(ctx context.Context, kind, documentID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.inFlightKey(kind, documentID), time.Now().UTC().Format(time.RFC3339), inFlightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire in-flight marker: %w", err)
	}
	return ok, nil
}

// ReleaseInFlight returns the kind+document to the idle state.
func (r *CacheRepository) ReleaseInFlight(ctx context.Context, kind, documentID string) error {
	if err := r.client.Del(ctx, r.inFlightKey(kind, documentID)).Err(); err != nil {
		return fmt.Errorf("release in-flight marker: %w", err)
	}
	return nil
}

// PutSet stores the latest suggestion set for a document, replacing any
// previous one.
func (r *CacheRepository) PutSet(ctx context.Context, set *domain.SuggestionSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal suggestion set: %w", err)
	}
	if err := r.client.Set(ctx, r.setKey(set.DocumentID), data, setTTL).Err(); err != nil {
		return fmt.Errorf("store suggestion set: %w", err)
	}
	return nil
}

// GetSet retrieves the cached suggestion set for a document.
func (r *CacheRepository) GetSet(ctx context.Context, documentID string) (*domain.SuggestionSet, error) {
	data, err := r.client.Get(ctx, r.setKey(documentID)).Result()
	if err == redis.Nil {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get suggestion set: %w", err)
	}

	var set domain.SuggestionSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("unmarshal suggestion set: %w", err)
	}
	return &set, nil
}

// DropSet removes the cached set for a document, typically after an apply.
func (r *CacheRepository) DropSet(ctx context.Context, documentID string) error {
	if err := r.client.Del(ctx, r.setKey(documentID)).Err(); err != nil {
		return fmt.Errorf("drop suggestion set: %w", err)
	}
	return nil
}

// PurgeOrphanedMarkers deletes in-flight markers left behind by crashed
// requests. TTLs already bound their lifetime; this keeps the keyspace tidy
// when Redis persistence outlives restarts.
func (r *CacheRepository) PurgeOrphanedMarkers(ctx context.Context) (int, error) {
	var purged int
	iter := r.client.Scan(ctx, 0, inFlightKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ttl, err := r.client.TTL(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}
		// A marker with no expiry should not exist; reap it.
		if ttl < 0 {
			if r.client.Del(ctx, iter.Val()).Err() == nil {
				purged++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return purged, fmt.Errorf("scan in-flight markers: %w", err)
	}
	return purged, nil
}

func (r *CacheRepository) setKey(documentID string) string {
	return setKeyPrefix + documentID
}

func (r *CacheRepository) inFlightKey(kind, documentID string) string {
	return inFlightKeyPrefix + kind + ":" + documentID
}
