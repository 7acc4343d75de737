// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a requested post or profile does not exist.
var ErrNotFound = errors.New("not found")

// ErrAuthenticationRequired returned when a guest requests content restricted to authenticated users.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrNotInAudience returned when the viewer is outside the post's audience.
var ErrNotInAudience = errors.New("post is not available to the viewer")

// ErrAuthorUnavailable returned when audience membership can not be resolved.
var ErrAuthorUnavailable = errors.New("author is unavailable")

// ErrInvalidArgument ...
var ErrInvalidArgument = errors.New("invalid argument")

// Pagination is a page request, pages are numbered from 1.
type Pagination struct {
	Page  uint32
	Limit uint16
}

// PostList is a page of posts with the total size of the candidate set.
type PostList struct {
	Posts []*entities.PostView
	Total uint64
}

// CreatePostParams ...
type CreatePostParams struct {
	AuthorID uuid.UUID
	ParentID *uuid.UUID
	Relation entities.RelationType
	Audience entities.Audience
	Text     string
	Media    entities.Medias
	Hashtags []string
	Mentions []uuid.UUID
}

// EdgeState describes a like or bookmark edge after a toggle.
type EdgeState struct {
	PostID    uuid.UUID
	CreatedAt time.Time
}

// Service ...
type Service interface {
	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.PostView, error)
	DeletePost(ctx context.Context, id, deletedBy uuid.UUID) error

	GetPost(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error)
	GetChildren(ctx context.Context, id uuid.UUID, relation *entities.RelationType, p Pagination, viewer *uuid.UUID) (*PostList, error)
	GetTimeline(ctx context.Context, viewer uuid.UUID, p Pagination) (*PostList, error)
	GetUserPosts(ctx context.Context, author uuid.UUID, relation *entities.RelationType, p Pagination, viewer *uuid.UUID) (*PostList, error)

	Like(ctx context.Context, owner, postID uuid.UUID) (*EdgeState, error)
	Unlike(ctx context.Context, owner, postID uuid.UUID) error
	Bookmark(ctx context.Context, owner, postID uuid.UUID) (*EdgeState, error)
	Unbookmark(ctx context.Context, owner, postID uuid.UUID) error

	Follow(ctx context.Context, follower, followee uuid.UUID) error
	Unfollow(ctx context.Context, follower, followee uuid.UUID) error
	SetProfile(ctx context.Context, p *entities.Profile) error

	GetTrendingHashtags(ctx context.Context, limit uint16) ([]*storage.TrendingHashtag, error)
}
