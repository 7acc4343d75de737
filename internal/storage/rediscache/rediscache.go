// Package rediscache caches profile reads in redis on top of another storage.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "rediscache")

type cached struct {
	storage.Storage

	rdb *redis.Client
	ttl time.Duration
}

// New wraps s with a profile cache.
func New(s storage.Storage, rdb *redis.Client, ttl time.Duration) storage.Storage {
	return &cached{
		Storage: s,
		rdb:     rdb,
		ttl:     ttl,
	}
}

func profileKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}

func (s *cached) GetProfiles(ctx context.Context, ids ...uuid.UUID) ([]*entities.Profile, error) {
	if len(ids) == 0 {
		return []*entities.Profile{}, nil
	}

	out := make([]*entities.Profile, 0, len(ids))
	miss := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		b, err := s.rdb.Get(ctx, profileKey(id)).Bytes()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				log.WithError(err).Error("failed to get profile from cache")
			}
			miss = append(miss, id)
			continue
		}

		var p entities.Profile
		if err := json.Unmarshal(b, &p); err != nil {
			log.WithError(err).Error("failed to unmarshal cached profile")
			miss = append(miss, id)
			continue
		}

		out = append(out, &p)
	}

	if len(miss) == 0 {
		return out, nil
	}

	pp, err := s.Storage.GetProfiles(ctx, miss...)
	if err != nil {
		return nil, err
	}

	for _, p := range pp {
		b, err := json.Marshal(p)
		if err != nil {
			log.WithError(err).Error("failed to marshal profile")
			continue
		}

		if err := s.rdb.Set(ctx, profileKey(p.ID), b, s.ttl).Err(); err != nil {
			log.WithError(err).Error("failed to cache profile")
		}
	}

	return append(out, pp...), nil
}

func (s *cached) SetProfile(ctx context.Context, p *entities.Profile) error {
	if err := s.Storage.SetProfile(ctx, p); err != nil {
		return err
	}

	if err := s.rdb.Del(ctx, profileKey(p.ID)).Err(); err != nil {
		log.WithError(err).Error("failed to invalidate cached profile")
	}

	return nil
}
