// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreatePost(ctx context.Context, p *CreatePostParams) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	GetPosts(ctx context.Context, ids ...uuid.UUID) ([]*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	CountPosts(ctx context.Context, p *ListPostsParams) (uint64, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	GetProfiles(ctx context.Context, ids ...uuid.UUID) ([]*entities.Profile, error)
	SetProfile(ctx context.Context, p *entities.Profile) error
	GetFollowees(ctx context.Context, follower uuid.UUID) ([]uuid.UUID, error)
	Follow(ctx context.Context, follower, followee uuid.UUID) error
	Unfollow(ctx context.Context, follower, followee uuid.UUID) error

	UpsertHashtag(ctx context.Context, name string) (*entities.Hashtag, error)
	GetPostHashtags(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID][]entities.Hashtag, error)
	GetPostMentions(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID][]*entities.Profile, error)
	GetTrendingHashtags(ctx context.Context, limit uint16) ([]*TrendingHashtag, error)

	GetPostStats(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]entities.PostStats, error)
	GetEngagements(ctx context.Context, kind entities.EdgeKind, owner uuid.UUID, ids ...uuid.UUID) (map[uuid.UUID]time.Time, error)
	SetEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID, timestamp time.Time) (bool, error)
	DeleteEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID) error
	GetReposts(ctx context.Context, owner uuid.UUID, ids ...uuid.UUID) (map[uuid.UUID]uuid.UUID, error)

	IncrementViews(ctx context.Context, authenticated bool, timestamp time.Time, ids ...uuid.UUID) (map[uuid.UUID]entities.ViewStats, error)
}

// ListPostsParams determines the candidate set of a posts listing.
// Viewer drives the audience predicate: nil means a guest who only sees
// Everyone-audience posts.
type ListPostsParams struct {
	Author          *uuid.UUID
	AuthorIn        []uuid.UUID
	ParentID        *uuid.UUID
	Relation        *entities.RelationType
	ExcludeRelation *entities.RelationType
	TopLevelOnly    bool
	Viewer          *uuid.UUID
	Limit           uint16
	Offset          uint64
}

// CreatePostParams ...
type CreatePostParams struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	ParentID   *uuid.UUID
	Relation   entities.RelationType
	Audience   entities.Audience
	Text       string
	Media      entities.Medias
	HashtagIDs []uuid.UUID
	MentionIDs []uuid.UUID
	CreatedAt  time.Time
}

// TrendingHashtag is a hashtag with its usage count.
type TrendingHashtag struct {
	entities.Hashtag
	Uses uint64
}
