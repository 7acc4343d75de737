// Package entities contains main entities of service.
package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RelationType classifies a post relative to its parent.
type RelationType uint8

const (
	// RelationOriginal is a top-level post without a parent.
	RelationOriginal RelationType = iota
	// RelationRepost ...
	RelationRepost
	// RelationReply ...
	RelationReply
	// RelationQuote ...
	RelationQuote
)

// Valid ...
func (r RelationType) Valid() bool {
	return r <= RelationQuote
}

// Audience is a post's visibility policy.
type Audience uint8

const (
	// AudienceEveryone ...
	AudienceEveryone Audience = iota
	// AudienceCircle restricts the post to the author's circle.
	AudienceCircle
	// AudienceOnlyAuthor ...
	AudienceOnlyAuthor
)

// Valid ...
func (a Audience) Valid() bool {
	return a <= AudienceOnlyAuthor
}

// EdgeKind is a kind of engagement edge between a viewer and a post.
type EdgeKind uint8

const (
	// EdgeLike ...
	EdgeLike EdgeKind = iota
	// EdgeBookmark ...
	EdgeBookmark
)

// String ...
func (k EdgeKind) String() string {
	switch k {
	case EdgeLike:
		return "like"
	case EdgeBookmark:
		return "bookmark"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// MediaKind ...
type MediaKind uint8

const (
	// MediaImage ...
	MediaImage MediaKind = iota
	// MediaVideo ...
	MediaVideo
)

// Media is a single media descriptor attached to a post.
type Media struct {
	URL  string    `json:"url"`
	Kind MediaKind `json:"type"`
}

// Medias is stored inline on the post row as jsonb.
type Medias []Media

// Value implements driver.Valuer.
func (m Medias) Value() (driver.Value, error) {
	if m == nil {
		m = Medias{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *Medias) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = Medias{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("unexpected medias type %T", src)
}

// Post ...
type Post struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	ParentID   *uuid.UUID
	Relation   RelationType
	Audience   Audience
	Text       string
	Media      Medias
	UserViews  uint64
	GuestViews uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Profile is a local copy of a user profile synced from the profile service.
type Profile struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Avatar      string
	Bio         string
	Banned      bool
	Circle      []uuid.UUID
	CreatedAt   time.Time
}

// Summary strips the fields which must never leave the service.
func (p *Profile) Summary() AuthorSummary {
	return AuthorSummary{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
	}
}

// AuthorSummary is the public slice of a profile embedded into post views.
type AuthorSummary struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Avatar      string
}

// Hashtag ...
type Hashtag struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// PostStats are live engagement counters of a single post.
type PostStats struct {
	Likes     uint32
	Bookmarks uint32
	Replies   uint32
	Quotes    uint32
	Reposts   uint32
}

// ViewStats are the post-increment view counters of a single post.
type ViewStats struct {
	UserViews  uint64
	GuestViews uint64
	UpdatedAt  time.Time
}

// PostView is a fully resolved, viewer-relative projection of a post.
// Parent is resolved exactly one level deep.
type PostView struct {
	Post

	Author   AuthorSummary
	Hashtags []Hashtag
	Mentions []AuthorSummary

	LikeCount     uint32
	BookmarkCount uint32
	ReplyCount    uint32
	QuoteCount    uint32
	RepostCount   uint32

	IsLiked      bool
	IsBookmarked bool
	IsReposted   bool
	RepostID     *uuid.UUID

	Parent *PostView
}
