package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
	"github.com/twizzapp/feed-service/internal/storage"
)

var log = logrus.WithField("layer", "service")

const maxLimit = 100

func (s srv) GetPost(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.getProfile(ctx, post.AuthorID)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}

	if err := canView(post, author, viewer); err != nil {
		return nil, err
	}

	vv, err := s.project(ctx, []*entities.Post{post}, viewer)
	if err != nil {
		return nil, err
	}

	s.overlayViews(ctx, vv, viewer)

	return vv[0], nil
}

func (s srv) GetChildren(ctx context.Context, id uuid.UUID, relation *entities.RelationType, p service.Pagination, viewer *uuid.UUID) (*service.PostList, error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}

	if relation != nil && (!relation.Valid() || *relation == entities.RelationOriginal) {
		return nil, service.ErrInvalidArgument
	}

	// children of an invisible post are invisible too
	parent, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.getProfile(ctx, parent.AuthorID)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}

	if err := canView(parent, author, viewer); err != nil {
		return nil, err
	}

	return s.list(ctx, &storage.ListPostsParams{
		ParentID: &id,
		Relation: relation,
		Viewer:   viewer,
		Limit:    p.Limit,
		Offset:   offset(p),
	}, viewer)
}

func (s srv) GetTimeline(ctx context.Context, viewer uuid.UUID, p service.Pagination) (*service.PostList, error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}

	followees, err := s.s.GetFollowees(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to get followees: %w", err)
	}

	// the viewer's own posts always belong to the timeline
	authors := append(followees, viewer)
	reply := entities.RelationReply

	return s.list(ctx, &storage.ListPostsParams{
		AuthorIn:        authors,
		ExcludeRelation: &reply,
		Viewer:          &viewer,
		Limit:           p.Limit,
		Offset:          offset(p),
	}, &viewer)
}

func (s srv) GetUserPosts(ctx context.Context, author uuid.UUID, relation *entities.RelationType, p service.Pagination, viewer *uuid.UUID) (*service.PostList, error) {
	if err := validatePagination(p); err != nil {
		return nil, err
	}

	if relation != nil && !relation.Valid() {
		return nil, service.ErrInvalidArgument
	}

	if _, err := s.getProfile(ctx, author); err != nil {
		return nil, err
	}

	params := storage.ListPostsParams{
		Author: &author,
		Viewer: viewer,
		Limit:  p.Limit,
		Offset: offset(p),
	}

	if relation != nil {
		params.Relation = relation
		if *relation == entities.RelationOriginal {
			params.TopLevelOnly = true
		}
	} else {
		// replies stay on the post page by default
		reply := entities.RelationReply
		params.ExcludeRelation = &reply
	}

	return s.list(ctx, &params, viewer)
}

func (s srv) list(ctx context.Context, params *storage.ListPostsParams, viewer *uuid.UUID) (*service.PostList, error) {
	posts, err := s.s.ListPosts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	total, err := s.s.CountPosts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	vv, err := s.project(ctx, posts, viewer)
	if err != nil {
		return nil, err
	}

	s.overlayViews(ctx, vv, viewer)

	return &service.PostList{
		Posts: vv,
		Total: total,
	}, nil
}

// overlayViews counts the delivery as a view of every post on the page and
// overlays the fresh counters. Parents are rendered, not delivered, so they
// are not counted. A failed increment keeps the pre-increment counters, the
// page is still served.
func (s srv) overlayViews(ctx context.Context, vv []*entities.PostView, viewer *uuid.UUID) {
	if len(vv) == 0 {
		return
	}

	ids := make([]uuid.UUID, len(vv))
	for i, v := range vv {
		ids[i] = v.ID
	}

	stats, err := s.s.IncrementViews(ctx, viewer != nil, time.Now().UTC(), ids...)
	if err != nil {
		log.WithError(err).Error("failed to increment views")
		return
	}

	for _, v := range vv {
		if st, ok := stats[v.ID]; ok {
			v.UserViews = st.UserViews
			v.GuestViews = st.GuestViews
			v.UpdatedAt = st.UpdatedAt
		}
	}
}

func validatePagination(p service.Pagination) error {
	if p.Page < 1 || p.Limit < 1 || p.Limit > maxLimit {
		return service.ErrInvalidArgument
	}

	return nil
}

func offset(p service.Pagination) uint64 {
	return uint64(p.Page-1) * uint64(p.Limit)
}
