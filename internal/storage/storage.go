package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"tafseel/backend/internal/config"
	"tafseel/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence contract consumed by the handlers and the
// preview hub. Documents are opaque JSON blobs keyed by slug; no schema
// enforcement happens here.
type Storage interface {
	SaveSpec(rec *models.SpecRecord) error
	GetSpec(slug string) (*models.SpecRecord, error)
	DeleteSpec(slug string) error
	ListSlugs() ([]string, error)

	PublishSpecUpdate(update models.SpecUpdate) error
}

// Service implements Storage over PostgreSQL (source of truth) and Redis
// (read-through cache by slug plus the live-preview pub/sub bus). Redis may be
// nil, e.g. in the admin CLI; caching and publishing then become no-ops.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func cacheKey(slug string) string {
	return "spec:" + slug
}

func channelName(slug string) string {
	return "spec-updates:" + slug
}

// SaveSpec upserts the record by its slug primary key, refreshes the Redis
// cache, and bumps UpdatedAt.
func (s *Service) SaveSpec(rec *models.SpecRecord) error {
	rec.UpdatedAt = time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = rec.UpdatedAt
	}

	if err := s.DB.Save(rec).Error; err != nil {
		log.Printf("ERROR: Failed to save spec %s: %v", rec.Slug, err)
		return err
	}

	s.cacheSet(rec)
	return nil
}

// GetSpec returns the stored record for a slug, or (nil, nil) when absent.
// Cache hits skip the database entirely.
func (s *Service) GetSpec(slug string) (*models.SpecRecord, error) {
	if rec := s.cacheGet(slug); rec != nil {
		return rec, nil
	}

	var rec models.SpecRecord
	err := s.DB.Where("slug = ?", slug).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get spec %s: %v", slug, err)
		return nil, err
	}

	s.cacheSet(&rec)
	return &rec, nil
}

// DeleteSpec removes the record and invalidates its cache entry.
func (s *Service) DeleteSpec(slug string) error {
	if err := s.DB.Where("slug = ?", slug).Delete(&models.SpecRecord{}).Error; err != nil {
		log.Printf("ERROR: Failed to delete spec %s: %v", slug, err)
		return err
	}
	if s.Redis != nil {
		s.Redis.Del(s.Ctx, cacheKey(slug))
	}
	return nil
}

// ListSlugs returns every stored slug, oldest first.
func (s *Service) ListSlugs() ([]string, error) {
	var slugs []string
	if err := s.DB.Model(&models.SpecRecord{}).
		Order("created_at asc").
		Pluck("slug", &slugs).Error; err != nil {
		log.Printf("ERROR: Failed to list spec slugs: %v", err)
		return nil, err
	}
	return slugs, nil
}

// PublishSpecUpdate announces a saved document on the per-slug pub/sub
// channel so live preview hubs (this process or others) can push it to
// connected viewers.
func (s *Service) PublishSpecUpdate(update models.SpecUpdate) error {
	if s.Redis == nil {
		return nil
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, channelName(update.Slug), string(payload)).Err()
}

// SubscribeToSpecUpdates subscribes to update events for every slug.
func (s *Service) SubscribeToSpecUpdates() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, channelName("*"))
}

func (s *Service) cacheGet(slug string) *models.SpecRecord {
	if s.Redis == nil {
		return nil
	}

	data, err := s.Redis.Get(s.Ctx, cacheKey(slug)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		log.Printf("WARN: Redis get failed for spec %s: %v", slug, err)
		return nil
	}

	var rec models.SpecRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		log.Printf("WARN: Dropping malformed cache entry for spec %s: %v", slug, err)
		s.Redis.Del(s.Ctx, cacheKey(slug))
		return nil
	}
	return &rec
}

func (s *Service) cacheSet(rec *models.SpecRecord) {
	if s.Redis == nil {
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.Redis.Set(s.Ctx, cacheKey(rec.Slug), string(payload), config.SpecCacheTTL).Err(); err != nil {
		log.Printf("WARN: Redis set failed for spec %s: %v", rec.Slug, err)
	}
}
