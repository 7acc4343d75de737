package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
	storageinterface "github.com/twizzapp/feed-service/internal/storage"
	storage "github.com/twizzapp/feed-service/internal/storage/mock"
)

var ctx = context.Background()

func newSrv(t *testing.T) (*storage.MockStorage, service.Service) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	return s, New(s)
}

func expectPost(s *storage.MockStorage, p *entities.Post) {
	s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil)
}

func expectProfile(s *storage.MockStorage, p *entities.Profile) {
	s.EXPECT().GetProfiles(gomock.Any(), p.ID).Return([]*entities.Profile{p}, nil)
}

func TestSrv_CreatePost_Validation(t *testing.T) {
	parent := uuid.New()

	tt := []struct {
		name string
		p    service.CreatePostParams
	}{
		{
			name: "original_with_parent",
			p: service.CreatePostParams{
				Relation: entities.RelationOriginal,
				ParentID: &parent,
				Text:     "text",
			},
		},
		{
			name: "reply_without_parent",
			p: service.CreatePostParams{
				Relation: entities.RelationReply,
				Text:     "text",
			},
		},
		{
			name: "empty_original",
			p: service.CreatePostParams{
				Relation: entities.RelationOriginal,
			},
		},
		{
			name: "unknown_relation",
			p: service.CreatePostParams{
				Relation: entities.RelationType(10),
				Text:     "text",
			},
		},
		{
			name: "unknown_audience",
			p: service.CreatePostParams{
				Relation: entities.RelationOriginal,
				Audience: entities.Audience(10),
				Text:     "text",
			},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			_, svc := newSrv(t)

			tc.p.AuthorID = uuid.New()
			_, err := svc.CreatePost(ctx, &tc.p)
			assert.True(t, errors.Is(err, service.ErrInvalidArgument))
		})
	}
}

func TestSrv_CreatePost(t *testing.T) {
	s, svc := newSrv(t)

	author := uuid.New()
	var created storageinterface.CreatePostParams
	hashtagID := uuid.New()

	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(tx storageinterface.Storage) error) error {
		return f(s)
	})
	s.EXPECT().UpsertHashtag(gomock.Any(), "golang").Return(&entities.Hashtag{ID: hashtagID, Name: "golang"}, nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.CreatePostParams) {
		created = *p
	}).Return(nil)

	// projection of the created post
	s.EXPECT().GetPost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*entities.Post, error) {
		return &entities.Post{ID: id, AuthorID: author, CreatedAt: created.CreatedAt}, nil
	})
	s.EXPECT().GetProfiles(gomock.Any(), author).Return([]*entities.Profile{{ID: author, Username: "gopher"}}, nil)
	s.EXPECT().GetPostHashtags(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]entities.Hashtag{}, nil)
	s.EXPECT().GetPostMentions(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]*entities.Profile{}, nil)
	s.EXPECT().GetPostStats(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]entities.PostStats{}, nil)
	s.EXPECT().GetEngagements(gomock.Any(), entities.EdgeLike, author, gomock.Any()).Return(map[uuid.UUID]time.Time{}, nil)
	s.EXPECT().GetEngagements(gomock.Any(), entities.EdgeBookmark, author, gomock.Any()).Return(map[uuid.UUID]time.Time{}, nil)
	s.EXPECT().GetReposts(gomock.Any(), author, gomock.Any()).Return(map[uuid.UUID]uuid.UUID{}, nil)

	v, err := svc.CreatePost(ctx, &service.CreatePostParams{
		AuthorID: author,
		Relation: entities.RelationOriginal,
		Audience: entities.AudienceEveryone,
		Text:     "hello",
		Hashtags: []string{"golang"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, v.ID)
	assert.Equal(t, author, created.AuthorID)
	assert.Equal(t, []uuid.UUID{hashtagID}, created.HashtagIDs)
	assert.Equal(t, "gopher", v.Author.Username)
}

func TestSrv_CreatePost_InvisibleParent(t *testing.T) {
	s, svc := newSrv(t)

	author := uuid.New()
	parentAuthor := uuid.New()
	parent := entities.Post{ID: uuid.New(), AuthorID: parentAuthor, Audience: entities.AudienceOnlyAuthor}

	expectPost(s, &parent)
	expectProfile(s, &entities.Profile{ID: parentAuthor})

	_, err := svc.CreatePost(ctx, &service.CreatePostParams{
		AuthorID: author,
		Relation: entities.RelationReply,
		ParentID: &parent.ID,
		Text:     "reply",
	})
	assert.True(t, errors.Is(err, service.ErrNotInAudience))
}

func TestSrv_DeletePost(t *testing.T) {
	s, svc := newSrv(t)

	author := uuid.New()
	post := entities.Post{ID: uuid.New(), AuthorID: author}

	expectPost(s, &post)
	s.EXPECT().DeletePost(gomock.Any(), post.ID).Return(nil)

	require.NoError(t, svc.DeletePost(ctx, post.ID, author))
}

func TestSrv_DeletePost_NotAuthor(t *testing.T) {
	s, svc := newSrv(t)

	post := entities.Post{ID: uuid.New(), AuthorID: uuid.New()}

	expectPost(s, &post)

	err := svc.DeletePost(ctx, post.ID, uuid.New())
	assert.True(t, errors.Is(err, service.ErrNotInAudience))
}

func TestSrv_DeletePost_NotFound(t *testing.T) {
	s, svc := newSrv(t)

	id := uuid.New()
	s.EXPECT().GetPost(gomock.Any(), id).Return(nil, storageinterface.ErrNotFound)

	err := svc.DeletePost(ctx, id, uuid.New())
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_Like(t *testing.T) {
	s, svc := newSrv(t)

	owner := uuid.New()
	author := uuid.New()
	post := entities.Post{ID: uuid.New(), AuthorID: author}

	expectPost(s, &post)
	expectProfile(s, &entities.Profile{ID: author})
	s.EXPECT().SetEngagement(gomock.Any(), entities.EdgeLike, owner, post.ID, gomock.Any()).Return(true, nil)

	state, err := svc.Like(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, state.PostID)
	assert.False(t, state.CreatedAt.IsZero())
}

func TestSrv_Like_Repeated(t *testing.T) {
	s, svc := newSrv(t)

	owner := uuid.New()
	author := uuid.New()
	post := entities.Post{ID: uuid.New(), AuthorID: author}
	existing := time.Now().Add(-time.Hour).UTC()

	expectPost(s, &post)
	expectProfile(s, &entities.Profile{ID: author})
	s.EXPECT().SetEngagement(gomock.Any(), entities.EdgeLike, owner, post.ID, gomock.Any()).Return(false, nil)
	s.EXPECT().GetEngagements(gomock.Any(), entities.EdgeLike, owner, post.ID).
		Return(map[uuid.UUID]time.Time{post.ID: existing}, nil)

	state, err := svc.Like(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, state.CreatedAt)
}

func TestSrv_Like_OutOfAudience(t *testing.T) {
	s, svc := newSrv(t)

	owner := uuid.New()
	author := uuid.New()
	post := entities.Post{ID: uuid.New(), AuthorID: author, Audience: entities.AudienceCircle}

	expectPost(s, &post)
	expectProfile(s, &entities.Profile{ID: author})

	_, err := svc.Like(ctx, owner, post.ID)
	assert.True(t, errors.Is(err, service.ErrNotInAudience))
}

func TestSrv_Unbookmark(t *testing.T) {
	s, svc := newSrv(t)

	owner := uuid.New()
	author := uuid.New()
	post := entities.Post{ID: uuid.New(), AuthorID: author}

	expectPost(s, &post)
	expectProfile(s, &entities.Profile{ID: author})
	s.EXPECT().DeleteEngagement(gomock.Any(), entities.EdgeBookmark, owner, post.ID).Return(nil)

	require.NoError(t, svc.Unbookmark(ctx, owner, post.ID))
}

func TestSrv_Follow(t *testing.T) {
	s, svc := newSrv(t)

	follower, followee := uuid.New(), uuid.New()

	expectProfile(s, &entities.Profile{ID: followee})
	s.EXPECT().Follow(gomock.Any(), follower, followee).Return(nil)

	require.NoError(t, svc.Follow(ctx, follower, followee))
}

func TestSrv_Follow_Self(t *testing.T) {
	_, svc := newSrv(t)

	id := uuid.New()
	assert.True(t, errors.Is(svc.Follow(ctx, id, id), service.ErrInvalidArgument))
}

func TestSrv_SetProfile(t *testing.T) {
	s, svc := newSrv(t)

	p := entities.Profile{ID: uuid.New(), Username: "gopher"}
	s.EXPECT().SetProfile(gomock.Any(), &p).Return(nil)

	require.NoError(t, svc.SetProfile(ctx, &p))

	assert.True(t, errors.Is(svc.SetProfile(ctx, &entities.Profile{ID: uuid.New()}), service.ErrInvalidArgument))
}
