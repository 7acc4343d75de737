//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM "like"`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM bookmark`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post_hashtag`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post_mention`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM hashtag`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM follow`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM profile`)
	require.NoError(t, err)
}

func createProfile(t *testing.T, circle ...uuid.UUID) uuid.UUID {
	p := entities.Profile{
		ID:        uuid.New(),
		Username:  uuid.NewString(),
		Circle:    circle,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.SetProfile(ctx, &p))
	return p.ID
}

func createPost(t *testing.T, author uuid.UUID, parent *uuid.UUID, rel entities.RelationType, aud entities.Audience) uuid.UUID {
	id := uuid.New()
	require.NoError(t, s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        id,
		AuthorID:  author,
		ParentID:  parent,
		Relation:  rel,
		Audience:  aud,
		Text:      "text",
		CreatedAt: time.Now().UTC(),
	}))
	return id
}

func TestPg_CreatePost(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)

	h, err := s.UpsertHashtag(ctx, "golang")
	require.NoError(t, err)

	expected := storage.CreatePostParams{
		ID:         uuid.New(),
		AuthorID:   author,
		Relation:   entities.RelationOriginal,
		Audience:   entities.AudienceCircle,
		Text:       "hello world",
		Media:      entities.Medias{{URL: "https://img", Kind: entities.MediaImage}},
		HashtagIDs: []uuid.UUID{h.ID},
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}

	require.NoError(t, s.CreatePost(ctx, &expected))

	p, err := s.GetPost(ctx, expected.ID)
	require.NoError(t, err)

	assert.Equal(t, expected.ID, p.ID)
	assert.Equal(t, expected.AuthorID, p.AuthorID)
	assert.Equal(t, expected.Relation, p.Relation)
	assert.Equal(t, expected.Audience, p.Audience)
	assert.Equal(t, expected.Text, p.Text)
	assert.Equal(t, expected.Media, p.Media)
	assert.EqualValues(t, 0, p.UserViews)
	assert.EqualValues(t, 0, p.GuestViews)

	hh, err := s.GetPostHashtags(ctx, expected.ID)
	require.NoError(t, err)
	require.Len(t, hh[expected.ID], 1)
	assert.Equal(t, "golang", hh[expected.ID][0].Name)
}

func TestPg_CreatePost_UnknownParent(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	parent := uuid.New()

	err := s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        uuid.New(),
		AuthorID:  author,
		ParentID:  &parent,
		Relation:  entities.RelationReply,
		Audience:  entities.AudienceEveryone,
		CreatedAt: time.Now(),
	})
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_GetPost_NotFound(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetPost(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	parent := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)
	child := createPost(t, author, &parent, entities.RelationReply, entities.AudienceEveryone)

	require.NoError(t, s.DeletePost(ctx, parent))

	_, err := s.GetPost(ctx, parent)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	// cascades to children
	_, err = s.GetPost(ctx, child)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.True(t, errors.Is(s.DeletePost(ctx, parent), storage.ErrNotFound))
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	viewer := createProfile(t)
	friend := createProfile(t, viewer)
	stranger := createProfile(t)

	public := createPost(t, friend, nil, entities.RelationOriginal, entities.AudienceEveryone)
	circle := createPost(t, friend, &public, entities.RelationQuote, entities.AudienceCircle)
	private := createPost(t, friend, nil, entities.RelationOriginal, entities.AudienceOnlyAuthor)
	strangersCircle := createPost(t, stranger, nil, entities.RelationOriginal, entities.AudienceCircle)

	t.Run("guest sees public only", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Limit: 10})
		require.NoError(t, err)
		require.Len(t, pp, 1)
		assert.Equal(t, public, pp[0].ID)
	})

	t.Run("circle member sees circle posts", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Viewer: &viewer, Limit: 10})
		require.NoError(t, err)
		require.Len(t, pp, 2)

		ids := []uuid.UUID{pp[0].ID, pp[1].ID}
		assert.Contains(t, ids, circle)
		assert.NotContains(t, ids, private)
		assert.NotContains(t, ids, strangersCircle)
	})

	t.Run("author sees everything of their own", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Author: &friend, Viewer: &friend, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, pp, 3)
	})

	t.Run("exclude relation", func(t *testing.T) {
		rel := entities.RelationQuote
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Viewer: &viewer, ExcludeRelation: &rel, Limit: 10})
		require.NoError(t, err)
		for _, p := range pp {
			assert.NotEqual(t, entities.RelationQuote, p.Relation)
		}
	})

	t.Run("top level only", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Viewer: &viewer, TopLevelOnly: true, Limit: 10})
		require.NoError(t, err)
		for _, p := range pp {
			assert.Nil(t, p.ParentID)
		}
	})

	t.Run("children of post", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{ParentID: &public, Viewer: &viewer, Limit: 10})
		require.NoError(t, err)
		require.Len(t, pp, 1)
		assert.Equal(t, circle, pp[0].ID)
	})

	t.Run("authors filter", func(t *testing.T) {
		pp, err := s.ListPosts(ctx, &storage.ListPostsParams{AuthorIn: []uuid.UUID{stranger}, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, pp)
	})

	t.Run("count matches list", func(t *testing.T) {
		p := storage.ListPostsParams{Viewer: &viewer, Limit: 1}
		pp, err := s.ListPosts(ctx, &p)
		require.NoError(t, err)
		require.Len(t, pp, 1)

		c, err := s.CountPosts(ctx, &p)
		require.NoError(t, err)
		assert.EqualValues(t, 2, c)
	})
}

func TestPg_ListPosts_Pagination(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	for i := 0; i < 5; i++ {
		createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)
		time.Sleep(time.Millisecond * 5)
	}

	first, err := s.ListPosts(ctx, &storage.ListPostsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := s.ListPosts(ctx, &storage.ListPostsParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.True(t, first[1].CreatedAt.After(second[0].CreatedAt) || first[1].CreatedAt.Equal(second[0].CreatedAt))
}

func TestPg_SetEngagement(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	owner := createProfile(t)
	post := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)

	ts := time.Now().UTC().Truncate(time.Millisecond)

	created, err := s.SetEngagement(ctx, entities.EdgeLike, owner, post, ts)
	require.NoError(t, err)
	assert.True(t, created)

	// second set is a no-op, timestamp keeps the first value
	created, err = s.SetEngagement(ctx, entities.EdgeLike, owner, post, ts.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, created)

	ee, err := s.GetEngagements(ctx, entities.EdgeLike, owner, post)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, ts, ee[post].UTC())

	_, err = s.SetEngagement(ctx, entities.EdgeLike, owner, uuid.New(), ts)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_DeleteEngagement(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	owner := createProfile(t)
	post := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)

	_, err := s.SetEngagement(ctx, entities.EdgeBookmark, owner, post, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.DeleteEngagement(ctx, entities.EdgeBookmark, owner, post))
	// idempotent
	require.NoError(t, s.DeleteEngagement(ctx, entities.EdgeBookmark, owner, post))

	ee, err := s.GetEngagements(ctx, entities.EdgeBookmark, owner, post)
	require.NoError(t, err)
	assert.Empty(t, ee)
}

func TestPg_GetPostStats(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	fan := createProfile(t)
	post := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)

	createPost(t, fan, &post, entities.RelationReply, entities.AudienceEveryone)
	createPost(t, fan, &post, entities.RelationReply, entities.AudienceEveryone)
	createPost(t, fan, &post, entities.RelationQuote, entities.AudienceEveryone)
	createPost(t, fan, &post, entities.RelationRepost, entities.AudienceEveryone)

	_, err := s.SetEngagement(ctx, entities.EdgeLike, fan, post, time.Now())
	require.NoError(t, err)
	_, err = s.SetEngagement(ctx, entities.EdgeLike, author, post, time.Now())
	require.NoError(t, err)
	_, err = s.SetEngagement(ctx, entities.EdgeBookmark, fan, post, time.Now())
	require.NoError(t, err)

	ss, err := s.GetPostStats(ctx, post)
	require.NoError(t, err)

	assert.Equal(t, entities.PostStats{
		Likes:     2,
		Bookmarks: 1,
		Replies:   2,
		Quotes:    1,
		Reposts:   1,
	}, ss[post])
}

func TestPg_GetReposts(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	fan := createProfile(t)
	post := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)

	first := createPost(t, fan, &post, entities.RelationRepost, entities.AudienceEveryone)
	time.Sleep(time.Millisecond * 5)
	createPost(t, fan, &post, entities.RelationRepost, entities.AudienceEveryone)

	rr, err := s.GetReposts(ctx, fan, post)
	require.NoError(t, err)
	require.Len(t, rr, 1)
	// oldest repost wins
	assert.Equal(t, first, rr[post])

	rr, err = s.GetReposts(ctx, author, post)
	require.NoError(t, err)
	assert.Empty(t, rr)
}

func TestPg_IncrementViews(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	a := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)
	b := createPost(t, author, nil, entities.RelationOriginal, entities.AudienceEveryone)

	ts := time.Now().UTC().Truncate(time.Millisecond)

	vv, err := s.IncrementViews(ctx, true, ts, a, b)
	require.NoError(t, err)
	require.Len(t, vv, 2)
	assert.EqualValues(t, 1, vv[a].UserViews)
	assert.EqualValues(t, 0, vv[a].GuestViews)
	assert.Equal(t, ts, vv[a].UpdatedAt.UTC())
	assert.Equal(t, ts, vv[b].UpdatedAt.UTC())

	vv, err = s.IncrementViews(ctx, false, ts.Add(time.Second), a)
	require.NoError(t, err)
	require.Len(t, vv, 1)
	assert.EqualValues(t, 1, vv[a].UserViews)
	assert.EqualValues(t, 1, vv[a].GuestViews)

	// unknown ids are simply skipped
	vv, err = s.IncrementViews(ctx, false, ts, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, vv)
}

func TestPg_Follow(t *testing.T) {
	defer cleanup(t)

	follower := createProfile(t)
	followee := createProfile(t)

	require.NoError(t, s.Follow(ctx, follower, followee))
	// idempotent
	require.NoError(t, s.Follow(ctx, follower, followee))

	ff, err := s.GetFollowees(ctx, follower)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{followee}, ff)

	require.NoError(t, s.Unfollow(ctx, follower, followee))

	ff, err = s.GetFollowees(ctx, follower)
	require.NoError(t, err)
	assert.Empty(t, ff)
}

func TestPg_UpsertHashtag(t *testing.T) {
	defer cleanup(t)

	first, err := s.UpsertHashtag(ctx, "golang")
	require.NoError(t, err)

	second, err := s.UpsertHashtag(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestPg_GetTrendingHashtags(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)

	golang, err := s.UpsertHashtag(ctx, "golang")
	require.NoError(t, err)
	rust, err := s.UpsertHashtag(ctx, "rust")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreatePost(ctx, &storage.CreatePostParams{
			ID:         uuid.New(),
			AuthorID:   author,
			Relation:   entities.RelationOriginal,
			Audience:   entities.AudienceEveryone,
			HashtagIDs: []uuid.UUID{golang.ID},
			CreatedAt:  time.Now(),
		}))
	}
	require.NoError(t, s.CreatePost(ctx, &storage.CreatePostParams{
		ID:         uuid.New(),
		AuthorID:   author,
		Relation:   entities.RelationOriginal,
		Audience:   entities.AudienceEveryone,
		HashtagIDs: []uuid.UUID{rust.ID},
		CreatedAt:  time.Now(),
	}))

	hh, err := s.GetTrendingHashtags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hh, 2)
	assert.Equal(t, "golang", hh[0].Name)
	assert.EqualValues(t, 3, hh[0].Uses)
	assert.Equal(t, "rust", hh[1].Name)
}

func TestPg_GetProfiles(t *testing.T) {
	defer cleanup(t)

	friend := uuid.New()
	p := entities.Profile{
		ID:          uuid.New(),
		Username:    "gopher",
		DisplayName: "Gopher",
		Avatar:      "https://avatar",
		Bio:         "bio",
		Circle:      []uuid.UUID{friend},
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.SetProfile(ctx, &p))

	pp, err := s.GetProfiles(ctx, p.ID, uuid.New())
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, p.Username, pp[0].Username)
	assert.Equal(t, []uuid.UUID{friend}, pp[0].Circle)

	p.Banned = true
	require.NoError(t, s.SetProfile(ctx, &p))

	pp, err = s.GetProfiles(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.True(t, pp[0].Banned)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	author := createProfile(t)
	id := uuid.New()

	require.Error(t, s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:        id,
			AuthorID:  author,
			Relation:  entities.RelationOriginal,
			Audience:  entities.AudienceEveryone,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return errors.New("rollback")
	}))

	_, err := s.GetPost(ctx, id)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		return tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:        id,
			AuthorID:  author,
			Relation:  entities.RelationOriginal,
			Audience:  entities.AudienceEveryone,
			CreatedAt: time.Now(),
		})
	}))

	_, err = s.GetPost(ctx, id)
	require.NoError(t, err)

	assert.True(t, errors.Is(s.InTx(ctx, func(tx storage.Storage) error {
		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	}), errBeginCalledWithinTx))
}
