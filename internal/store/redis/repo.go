package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Collection describes one resource collection: its key namespace, its
// list cap, and whether listing is newest-first by the temporal field.
type Collection struct {
	Name   string
	Cap    int
	Sorted bool
}

// The three non-singleton collections. Bookmarks are unordered; history
// and downloads are newest-first.
var (
	Bookmarks = Collection{Name: "bookmarks", Cap: 1000}
	History   = Collection{Name: "history", Cap: 100, Sorted: true}
	Downloads = Collection{Name: "downloads", Cap: 100, Sorted: true}
)

// Save persists one record and registers its id in the collection index.
// Sorted collections index by the record's temporal field so listing can
// come straight out of the sorted set, newest first.
// (Methods cannot take type parameters, hence package-level functions.)
func Save[T domain.Record](ctx context.Context, s *Store, c Collection, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", c.Name, err)
	}

	key := RecordKey(c.Name, rec.Key())
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return storeErr("save "+c.Name+" record", err)
	}

	if c.Sorted {
		member := redis.Z{Score: float64(rec.StampedAt().UnixNano()), Member: rec.Key()}
		if err := s.client.ZAdd(ctx, IndexKey(c.Name), member).Err(); err != nil {
			return storeErr("index "+c.Name+" record", err)
		}
		return nil
	}
	if err := s.client.SAdd(ctx, IndexKey(c.Name), rec.Key()).Err(); err != nil {
		return storeErr("index "+c.Name+" record", err)
	}
	return nil
}

// List returns up to limit records. Sorted collections come back
// newest-first (strictly non-increasing by temporal field); limit values
// outside (0, Cap] are clamped to the collection cap.
func List[T any](ctx context.Context, s *Store, c Collection, limit int) ([]T, error) {
	if limit <= 0 || limit > c.Cap {
		limit = c.Cap
	}

	ids, err := listIDs(ctx, s, c, limit)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(ids))
	for _, id := range ids {
		rec, err := getRecord[T](ctx, s, c, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// The index can briefly reference a record deleted by a
				// concurrent caller; skip it.
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// Delete removes the record with the given id. Deleting an id that was
// never created, or that was already deleted, is ErrNotFound.
func Delete(ctx context.Context, s *Store, c Collection, id string) error {
	deleted, err := s.client.Del(ctx, RecordKey(c.Name, id)).Result()
	if err != nil {
		return storeErr("delete "+c.Name+" record", err)
	}

	// Drop the index entry even when the record key was already gone.
	if c.Sorted {
		if err := s.client.ZRem(ctx, IndexKey(c.Name), id).Err(); err != nil {
			return storeErr("unindex "+c.Name+" record", err)
		}
	} else {
		if err := s.client.SRem(ctx, IndexKey(c.Name), id).Err(); err != nil {
			return storeErr("unindex "+c.Name+" record", err)
		}
	}

	if deleted == 0 {
		return fmt.Errorf("%s record %s: %w", c.Name, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll unconditionally clears the collection. Always succeeds on a
// reachable store, even when the collection is already empty.
func DeleteAll(ctx context.Context, s *Store, c Collection) error {
	ids, err := allIDs(ctx, s, c)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, RecordKey(c.Name, id))
	}
	pipe.Del(ctx, IndexKey(c.Name))
	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr("clear "+c.Name, err)
	}
	return nil
}

// listIDs returns up to limit ids in the collection's listing order.
func listIDs(ctx context.Context, s *Store, c Collection, limit int) ([]string, error) {
	if c.Sorted {
		ids, err := s.client.ZRevRange(ctx, IndexKey(c.Name), 0, int64(limit-1)).Result()
		if err != nil {
			return nil, storeErr("list "+c.Name+" ids", err)
		}
		return ids, nil
	}

	ids, err := s.client.SMembers(ctx, IndexKey(c.Name)).Result()
	if err != nil {
		return nil, storeErr("list "+c.Name+" ids", err)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// allIDs returns every id in the collection, in listing order for sorted
// collections.
func allIDs(ctx context.Context, s *Store, c Collection) ([]string, error) {
	if c.Sorted {
		ids, err := s.client.ZRevRange(ctx, IndexKey(c.Name), 0, -1).Result()
		if err != nil {
			return nil, storeErr("list "+c.Name+" ids", err)
		}
		return ids, nil
	}

	ids, err := s.client.SMembers(ctx, IndexKey(c.Name)).Result()
	if err != nil {
		return nil, storeErr("list "+c.Name+" ids", err)
	}
	return ids, nil
}

// getRecord fetches and decodes one record. A malformed stored timestamp
// surfaces as ErrMalformedTimestamp through the decode, never as a
// silently defaulted value.
func getRecord[T any](ctx context.Context, s *Store, c Collection, id string) (T, error) {
	var rec T

	data, err := s.client.Get(ctx, RecordKey(c.Name, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rec, fmt.Errorf("%s record %s: %w", c.Name, id, domain.ErrNotFound)
		}
		return rec, storeErr("get "+c.Name+" record", err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to decode %s record %s: %w", c.Name, id, err)
	}
	return rec, nil
}
