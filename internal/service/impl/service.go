// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
	"github.com/twizzapp/feed-service/internal/storage"
)

// service ...
type srv struct {
	s storage.Storage
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s: s,
	}
}

func (s srv) CreatePost(ctx context.Context, p *service.CreatePostParams) (*entities.PostView, error) {
	if err := validateCreatePost(p); err != nil {
		return nil, err
	}

	if p.ParentID != nil {
		parent, err := s.getPost(ctx, *p.ParentID)
		if err != nil {
			return nil, err
		}

		author, err := s.getProfile(ctx, parent.AuthorID)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			return nil, err
		}

		// replying to a post you can not see is forbidden
		if err := canView(parent, author, &p.AuthorID); err != nil {
			return nil, err
		}
	}

	params := storage.CreatePostParams{
		ID:         uuid.New(),
		AuthorID:   p.AuthorID,
		ParentID:   p.ParentID,
		Relation:   p.Relation,
		Audience:   p.Audience,
		Text:       p.Text,
		Media:      p.Media,
		MentionIDs: p.Mentions,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		for _, name := range p.Hashtags {
			h, err := tx.UpsertHashtag(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to upsert hashtag: %w", err)
			}
			params.HashtagIDs = append(params.HashtagIDs, h.ID)
		}

		return tx.CreatePost(ctx, &params)
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post, err := s.getPost(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	vv, err := s.project(ctx, []*entities.Post{post}, &p.AuthorID)
	if err != nil {
		return nil, err
	}

	return vv[0], nil
}

func validateCreatePost(p *service.CreatePostParams) error {
	if !p.Relation.Valid() || !p.Audience.Valid() {
		return service.ErrInvalidArgument
	}

	if (p.Relation == entities.RelationOriginal) != (p.ParentID == nil) {
		return service.ErrInvalidArgument
	}

	if p.Relation != entities.RelationRepost && p.Text == "" && len(p.Media) == 0 {
		return service.ErrInvalidArgument
	}

	return nil
}

func (s srv) DeletePost(ctx context.Context, id, deletedBy uuid.UUID) error {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != deletedBy {
		return service.ErrNotInAudience
	}

	if err := s.s.DeletePost(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFound
		}

		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s srv) Like(ctx context.Context, owner, postID uuid.UUID) (*service.EdgeState, error) {
	return s.setEngagement(ctx, entities.EdgeLike, owner, postID)
}

func (s srv) Unlike(ctx context.Context, owner, postID uuid.UUID) error {
	return s.deleteEngagement(ctx, entities.EdgeLike, owner, postID)
}

func (s srv) Bookmark(ctx context.Context, owner, postID uuid.UUID) (*service.EdgeState, error) {
	return s.setEngagement(ctx, entities.EdgeBookmark, owner, postID)
}

func (s srv) Unbookmark(ctx context.Context, owner, postID uuid.UUID) error {
	return s.deleteEngagement(ctx, entities.EdgeBookmark, owner, postID)
}

func (s srv) setEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID) (*service.EdgeState, error) {
	if err := s.gate(ctx, postID, &owner); err != nil {
		return nil, err
	}

	ts := time.Now().UTC()

	created, err := s.s.SetEngagement(ctx, kind, owner, postID, ts)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to set %s: %w", kind, err)
	}

	if !created {
		// repeated toggle, report the original edge
		ee, err := s.s.GetEngagements(ctx, kind, owner, postID)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", kind, err)
		}

		if existing, ok := ee[postID]; ok {
			ts = existing
		}
	}

	return &service.EdgeState{
		PostID:    postID,
		CreatedAt: ts,
	}, nil
}

func (s srv) deleteEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID) error {
	if err := s.gate(ctx, postID, &owner); err != nil {
		return err
	}

	if err := s.s.DeleteEngagement(ctx, kind, owner, postID); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	return nil
}

func (s srv) Follow(ctx context.Context, follower, followee uuid.UUID) error {
	if follower == followee {
		return service.ErrInvalidArgument
	}

	if _, err := s.getProfile(ctx, followee); err != nil {
		return err
	}

	if err := s.s.Follow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s srv) Unfollow(ctx context.Context, follower, followee uuid.UUID) error {
	if follower == followee {
		return service.ErrInvalidArgument
	}

	if err := s.s.Unfollow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

func (s srv) SetProfile(ctx context.Context, p *entities.Profile) error {
	if p.ID == uuid.Nil || p.Username == "" {
		return service.ErrInvalidArgument
	}

	if err := s.s.SetProfile(ctx, p); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

func (s srv) GetTrendingHashtags(ctx context.Context, limit uint16) ([]*storage.TrendingHashtag, error) {
	hh, err := s.s.GetTrendingHashtags(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending hashtags: %w", err)
	}

	return hh, nil
}

// gate fetches the post and applies the audience check for the viewer.
func (s srv) gate(ctx context.Context, postID uuid.UUID, viewer *uuid.UUID) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	author, err := s.getProfile(ctx, post.AuthorID)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return err
	}

	return canView(post, author, viewer)
}

func (s srv) getPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	post, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (s srv) getProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	pp, err := s.s.GetProfiles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if len(pp) == 0 {
		return nil, service.ErrNotFound
	}

	return pp[0], nil
}
