package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
)

// project resolves posts into viewer-relative views, batching every lookup.
// Parents are embedded exactly one level deep.
func (s srv) project(ctx context.Context, posts []*entities.Post, viewer *uuid.UUID) ([]*entities.PostView, error) {
	if len(posts) == 0 {
		return []*entities.PostView{}, nil
	}

	postByID := make(map[uuid.UUID]*entities.Post, len(posts))
	for _, p := range posts {
		postByID[p.ID] = p
	}

	var missingParents []uuid.UUID
	for _, p := range posts {
		if p.ParentID != nil {
			if _, ok := postByID[*p.ParentID]; !ok {
				missingParents = append(missingParents, *p.ParentID)
			}
		}
	}

	if len(missingParents) > 0 {
		pp, err := s.s.GetPosts(ctx, missingParents...)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent posts: %w", err)
		}

		for _, p := range pp {
			postByID[p.ID] = p
		}
	}

	ids := make([]uuid.UUID, 0, len(postByID))
	authors := make([]uuid.UUID, 0, len(postByID))
	for id, p := range postByID {
		ids = append(ids, id)
		authors = append(authors, p.AuthorID)
	}

	profiles, err := s.s.GetProfiles(ctx, authors...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	profileByID := make(map[uuid.UUID]*entities.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	hashtags, err := s.s.GetPostHashtags(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get hashtags: %w", err)
	}

	mentions, err := s.s.GetPostMentions(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentions: %w", err)
	}

	stats, err := s.s.GetPostStats(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	likes := map[uuid.UUID]struct{}{}
	bookmarks := map[uuid.UUID]struct{}{}
	reposts := map[uuid.UUID]uuid.UUID{}

	if viewer != nil {
		ll, err := s.s.GetEngagements(ctx, entities.EdgeLike, *viewer, ids...)
		if err != nil {
			return nil, fmt.Errorf("failed to get likes: %w", err)
		}
		for id := range ll {
			likes[id] = struct{}{}
		}

		bb, err := s.s.GetEngagements(ctx, entities.EdgeBookmark, *viewer, ids...)
		if err != nil {
			return nil, fmt.Errorf("failed to get bookmarks: %w", err)
		}
		for id := range bb {
			bookmarks[id] = struct{}{}
		}

		reposts, err = s.s.GetReposts(ctx, *viewer, ids...)
		if err != nil {
			return nil, fmt.Errorf("failed to get reposts: %w", err)
		}
	}

	build := func(p *entities.Post) *entities.PostView {
		v := entities.PostView{
			Post:     *p,
			Hashtags: []entities.Hashtag{},
			Mentions: []entities.AuthorSummary{},
		}

		if pr, ok := profileByID[p.AuthorID]; ok {
			v.Author = pr.Summary()
		} else {
			// profile sync lag, render a bare author
			v.Author = entities.AuthorSummary{ID: p.AuthorID}
		}

		if hh, ok := hashtags[p.ID]; ok {
			v.Hashtags = hh
		}
		for _, m := range mentions[p.ID] {
			v.Mentions = append(v.Mentions, m.Summary())
		}

		st := stats[p.ID]
		v.LikeCount = st.Likes
		v.BookmarkCount = st.Bookmarks
		v.ReplyCount = st.Replies
		v.QuoteCount = st.Quotes
		v.RepostCount = st.Reposts

		_, v.IsLiked = likes[p.ID]
		_, v.IsBookmarked = bookmarks[p.ID]
		if id, ok := reposts[p.ID]; ok {
			v.IsReposted = true
			repostID := id
			v.RepostID = &repostID
		}

		return &v
	}

	out := make([]*entities.PostView, len(posts))
	for i, p := range posts {
		v := build(p)
		if p.ParentID != nil {
			if parent, ok := postByID[*p.ParentID]; ok {
				v.Parent = build(parent)
			}
		}
		out[i] = v
	}

	return out, nil
}
