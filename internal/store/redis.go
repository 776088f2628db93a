package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

// RedisStore keeps the roster document at a single well-known key and the
// version snapshots as per-ID values indexed by a timestamp-scored sorted
// set. Change notification rides Redis pub/sub on a channel derived from
// the key prefix.
type RedisStore struct {
	client     *redis.Client
	prefix     string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewRedisStore(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", conf.Redis.Addr, err)
	}

	return &RedisStore{
		client:     client,
		prefix:     conf.Redis.KeyPrefix,
		compressor: compressor,
		logger:     logger,
	}, nil
}

// NewRedisStoreWithClient is used by tests to point the store at an
// in-process Redis.
func NewRedisStoreWithClient(client *redis.Client, prefix string, compressor CompressorInterface, logger providers.Logger) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, compressor: compressor, logger: logger}
}

func (s *RedisStore) rosterKey() string     { return s.prefix + ":roster" }
func (s *RedisStore) changeChannel() string { return s.prefix + ":roster:changed" }
func (s *RedisStore) snapshotIndex() string { return s.prefix + ":snapshots" }
func (s *RedisStore) snapshotKey(id string) string {
	return s.prefix + ":snapshot:" + id
}
func (s *RedisStore) snapshotMetaKey(id string) string {
	return s.prefix + ":snapshot-meta:" + id
}

func (s *RedisStore) Get(ctx context.Context) (*RosterDocument, error) {
	raw, err := s.client.Get(ctx, s.rosterKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get roster document: %w", err)
	}
	var doc RosterDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode roster document: %w", err)
	}
	return &doc, nil
}

// Set replaces the whole roster document and publishes the new write
// timestamp so every subscriber, including the writer, sees the change.
func (s *RedisStore) Set(ctx context.Context, doc *RosterDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode roster document: %w", err)
	}
	if err := s.client.Set(ctx, s.rosterKey(), raw, 0).Err(); err != nil {
		return fmt.Errorf("set roster document: %w", err)
	}
	if err := s.client.Publish(ctx, s.changeChannel(), doc.UpdatedAt.Format(time.RFC3339Nano)).Err(); err != nil {
		// the poll fallback covers missed notifications
		s.logger.Warnf(providers.TypeSync, "publish change notification: %s", err)
	}
	return nil
}

// Subscribe delivers the current document on every published write. The
// returned function stops the listener.
func (s *RedisStore) Subscribe(ctx context.Context, fn func(doc *RosterDocument)) (func(), error) {
	pubsub := s.client.Subscribe(ctx, s.changeChannel())
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", s.changeChannel(), err)
	}

	go func() {
		for range pubsub.Channel() {
			doc, err := s.Get(ctx)
			if err != nil {
				s.logger.Warnf(providers.TypeSync, "read after change notification: %s", err)
				continue
			}
			fn(doc)
		}
	}()

	return func() { _ = pubsub.Close() }, nil
}

func (s *RedisStore) AddSnapshot(ctx context.Context, snap *models.VersionSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}
	compressed, err := s.compressor.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress snapshot %s: %w", snap.ID, err)
	}
	meta, err := json.Marshal(snap.SnapshotMeta)
	if err != nil {
		return fmt.Errorf("encode snapshot meta %s: %w", snap.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.snapshotKey(snap.ID), compressed, 0)
	pipe.Set(ctx, s.snapshotMetaKey(snap.ID), meta, 0)
	pipe.ZAdd(ctx, s.snapshotIndex(), redis.Z{
		Score:  float64(snap.Timestamp.UnixMilli()),
		Member: snap.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store snapshot %s: %w", snap.ID, err)
	}
	return nil
}

// ListSnapshots returns metadata only, newest first. Payloads stay
// compressed and untouched.
func (s *RedisStore) ListSnapshots(ctx context.Context, limit int) ([]models.SnapshotMeta, error) {
	if limit <= 0 {
		return []models.SnapshotMeta{}, nil
	}
	ids, err := s.client.ZRevRange(ctx, s.snapshotIndex(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	metas := make([]models.SnapshotMeta, 0, len(ids))
	for _, id := range ids {
		raw, err := s.client.Get(ctx, s.snapshotMetaKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // trimmed between index read and meta read
		}
		if err != nil {
			return nil, fmt.Errorf("get snapshot meta %s: %w", id, err)
		}
		var meta models.SnapshotMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode snapshot meta %s: %w", id, err)
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

func (s *RedisStore) GetSnapshot(ctx context.Context, id string) (*models.VersionSnapshot, error) {
	raw, err := s.client.Get(ctx, s.snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	payload, err := s.compressor.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot %s: %w", id, err)
	}
	var snap models.VersionSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return &snap, nil
}

func (s *RedisStore) DeleteSnapshot(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.snapshotKey(id), s.snapshotMetaKey(id))
	pipe.ZRem(ctx, s.snapshotIndex(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) SnapshotCount(ctx context.Context) (int64, error) {
	count, err := s.client.ZCard(ctx, s.snapshotIndex()).Result()
	if err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return count, nil
}

// OldestSnapshotIDs returns up to n snapshot IDs, oldest first, for
// retention trimming.
func (s *RedisStore) OldestSnapshotIDs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ids, err := s.client.ZRange(ctx, s.snapshotIndex(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("oldest snapshots: %w", err)
	}
	return ids, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
