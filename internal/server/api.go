package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
	"github.com/twizzapp/feed-service/internal/storage"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Post ...
type Post struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id,omitempty"`
	Relation uint8   `json:"relation"`
	Audience uint8   `json:"audience"`
	Text     string  `json:"text"`
	Media    []Media `json:"media"`

	Author   Author    `json:"author"`
	Hashtags []Hashtag `json:"hashtags"`
	Mentions []Author  `json:"mentions"`

	Likes     uint32 `json:"likes"`
	Bookmarks uint32 `json:"bookmarks"`
	Replies   uint32 `json:"replies"`
	Quotes    uint32 `json:"quotes"`
	Reposts   uint32 `json:"reposts"`

	UserViews  uint64 `json:"user_views"`
	GuestViews uint64 `json:"guest_views"`

	IsLiked      bool    `json:"is_liked"`
	IsBookmarked bool    `json:"is_bookmarked"`
	IsReposted   bool    `json:"is_reposted"`
	RepostID     *string `json:"repost_id,omitempty"`

	Parent *Post `json:"parent,omitempty"`

	CreatedAt int64 `json:"created_at"`
}

// Media ...
type Media struct {
	URL  string `json:"url"`
	Kind uint8  `json:"type"`
}

// Author is the public slice of a profile.
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// Hashtag ...
type Hashtag struct {
	Name string `json:"name"`
}

// TrendingHashtag ...
// swagger:model
type TrendingHashtag struct {
	Name string `json:"name"`
	Uses uint64 `json:"uses"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts      []Post `json:"posts"`
	Total      uint64 `json:"total"`
	Page       uint32 `json:"page"`
	Limit      uint16 `json:"limit"`
	TotalPages uint64 `json:"total_pages"`
}

// EdgeResponse ...
// swagger:model
type EdgeResponse struct {
	PostID    string `json:"post_id"`
	CreatedAt int64  `json:"created_at"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	ParentID *string  `json:"parent_id"`
	Relation uint8    `json:"relation"`
	Audience uint8    `json:"audience"`
	Text     string   `json:"text"`
	Media    []Media  `json:"media"`
	Hashtags []string `json:"hashtags"`
	Mentions []string `json:"mentions"`
}

// SetProfileRequest ...
// swagger:model
type SetProfileRequest struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Banned      bool     `json:"banned"`
	Circle      []string `json:"circle"`
}

func toAPIPost(v *entities.PostView) *Post {
	out := Post{
		ID:         v.ID.String(),
		Relation:   uint8(v.Relation),
		Audience:   uint8(v.Audience),
		Text:       v.Text,
		Media:      make([]Media, 0, len(v.Media)),
		Author:     toAPIAuthor(v.Author),
		Hashtags:   make([]Hashtag, 0, len(v.Hashtags)),
		Mentions:   make([]Author, 0, len(v.Mentions)),
		Likes:      v.LikeCount,
		Bookmarks:  v.BookmarkCount,
		Replies:    v.ReplyCount,
		Quotes:     v.QuoteCount,
		Reposts:    v.RepostCount,
		UserViews:  v.UserViews,
		GuestViews: v.GuestViews,

		IsLiked:      v.IsLiked,
		IsBookmarked: v.IsBookmarked,
		IsReposted:   v.IsReposted,

		CreatedAt: v.CreatedAt.Unix(),
	}

	if v.ParentID != nil {
		id := v.ParentID.String()
		out.ParentID = &id
	}

	if v.RepostID != nil {
		id := v.RepostID.String()
		out.RepostID = &id
	}

	for _, m := range v.Media {
		out.Media = append(out.Media, Media{URL: m.URL, Kind: uint8(m.Kind)})
	}

	for _, h := range v.Hashtags {
		out.Hashtags = append(out.Hashtags, Hashtag{Name: h.Name})
	}

	for _, m := range v.Mentions {
		out.Mentions = append(out.Mentions, toAPIAuthor(m))
	}

	if v.Parent != nil {
		out.Parent = toAPIPost(v.Parent)
	}

	return &out
}

func toAPIAuthor(a entities.AuthorSummary) Author {
	return Author{
		ID:          a.ID.String(),
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Avatar:      a.Avatar,
	}
}

func newListPostsResponse(list *service.PostList, p service.Pagination) ListPostsResponse {
	out := ListPostsResponse{
		Posts: make([]Post, 0, len(list.Posts)),
		Total: list.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}

	if list.Total > 0 {
		out.TotalPages = (list.Total + uint64(p.Limit) - 1) / uint64(p.Limit)
	}

	for _, v := range list.Posts {
		out.Posts = append(out.Posts, *toAPIPost(v))
	}

	return out
}

func newTrendingHashtagsResponse(hh []*storage.TrendingHashtag) []TrendingHashtag {
	out := make([]TrendingHashtag, 0, len(hh))
	for _, h := range hh {
		out = append(out, TrendingHashtag{Name: h.Name, Uses: h.Uses})
	}
	return out
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps service errors onto http statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAuthorUnavailable):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrAuthenticationRequired):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, service.ErrNotInAudience):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid request")
	default:
		writeInternalError(ctx, w, err.Error())
	}
}

func parseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	return id, err == nil
}
