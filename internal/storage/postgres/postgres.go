// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const foreignKeyViolation = "23503"

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type postDTO struct {
	ID         uuid.UUID       `db:"id"`
	AuthorID   uuid.UUID       `db:"author_id"`
	ParentID   *uuid.UUID      `db:"parent_id"`
	Relation   uint8           `db:"relation"`
	Audience   uint8           `db:"audience"`
	Text       string          `db:"text"`
	Media      entities.Medias `db:"media"`
	UserViews  uint64          `db:"user_views"`
	GuestViews uint64          `db:"guest_views"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (p postDTO) toPost() *entities.Post {
	return &entities.Post{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		ParentID:   p.ParentID,
		Relation:   entities.RelationType(p.Relation),
		Audience:   entities.Audience(p.Audience),
		Text:       p.Text,
		Media:      p.Media,
		UserViews:  p.UserViews,
		GuestViews: p.GuestViews,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type profileDTO struct {
	ID          uuid.UUID      `db:"id"`
	Username    string         `db:"username"`
	DisplayName string         `db:"display_name"`
	Avatar      string         `db:"avatar"`
	Bio         string         `db:"bio"`
	Banned      bool           `db:"banned"`
	Circle      pq.StringArray `db:"circle"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (p profileDTO) toProfile() *entities.Profile {
	circle := make([]uuid.UUID, 0, len(p.Circle))
	for _, v := range p.Circle {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		circle = append(circle, id)
	}

	return &entities.Profile{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		Banned:      p.Banned,
		Circle:      circle,
		CreatedAt:   p.CreatedAt,
	}
}

const postColumns = `p.id, p.author_id, p.parent_id, p.relation, p.audience, p.text, p.media, p.user_views, p.guest_views, p.created_at, p.updated_at`

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) error {
	post := postDTO{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		ParentID:  p.ParentID,
		Relation:  uint8(p.Relation),
		Audience:  uint8(p.Audience),
		Text:      p.Text,
		Media:     p.Media,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author_id, parent_id, relation, audience, text, media, created_at, updated_at)
			VALUES(:id, :author_id, :parent_id, :relation, :audience, :text, :media, :created_at, :updated_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	for i, id := range p.HashtagIDs {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO post_hashtag(post_id, hashtag_id, position) VALUES($1, $2, $3) ON CONFLICT DO NOTHING`,
			p.ID, id, i,
		); err != nil {
			return fmt.Errorf("failed to link hashtag: %w", err)
		}
	}

	for i, id := range p.MentionIDs {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO post_mention(post_id, user_id, position) VALUES($1, $2, $3) ON CONFLICT DO NOTHING`,
			p.ID, id, i,
		); err != nil {
			return fmt.Errorf("failed to link mention: %w", err)
		}
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		fmt.Sprintf(`SELECT %s FROM post p WHERE p.id = $1`, postColumns), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toPost(), nil
}

func (s pg) GetPosts(ctx context.Context, ids ...uuid.UUID) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM post p WHERE p.id IN (?)`, postColumns), ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = v.toPost()
	}

	return out, nil
}

// listPostsFilter renders the WHERE clause of ListPosts/CountPosts with ?
// placeholders, to be expanded by sqlx.In and rebound.
func listPostsFilter(p *storage.ListPostsParams) (string, []interface{}, error) {
	conds := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	if p.Author != nil {
		conds = append(conds, `p.author_id = ?`)
		args = append(args, *p.Author)
	}

	if len(p.AuthorIn) > 0 {
		conds = append(conds, `p.author_id IN (?)`)
		args = append(args, p.AuthorIn)
	}

	if p.ParentID != nil {
		conds = append(conds, `p.parent_id = ?`)
		args = append(args, *p.ParentID)
	}

	if p.Relation != nil {
		conds = append(conds, `p.relation = ?`)
		args = append(args, uint8(*p.Relation))
	}

	if p.ExcludeRelation != nil {
		conds = append(conds, `p.relation <> ?`)
		args = append(args, uint8(*p.ExcludeRelation))
	}

	if p.TopLevelOnly {
		conds = append(conds, `p.parent_id IS NULL`)
	}

	if p.Viewer != nil {
		conds = append(conds, `(
			p.audience = 0
			OR p.author_id = ?
			OR (p.audience = 1 AND NOT COALESCE(pr.banned, FALSE) AND ? = ANY(COALESCE(pr.circle, '{}')))
		)`)
		args = append(args, *p.Viewer, *p.Viewer)
	} else {
		conds = append(conds, `p.audience = 0`)
	}

	query, args, err := sqlx.In(strings.Join(conds, " AND "), args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	return query, args, nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	filter, args, err := listPostsFilter(p)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
			SELECT %s FROM post p
			LEFT JOIN profile pr ON pr.id = p.author_id
			WHERE %s
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT ? OFFSET ?
		`, postColumns, filter)
	args = append(args, p.Limit, p.Offset)

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = v.toPost()
	}

	return out, nil
}

func (s pg) CountPosts(ctx context.Context, p *storage.ListPostsParams) (uint64, error) {
	filter, args, err := listPostsFilter(p)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
			SELECT COUNT(*) FROM post p
			LEFT JOIN profile pr ON pr.id = p.author_id
			WHERE %s
		`, filter)

	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, s.ext.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) DeletePost(ctx context.Context, id uuid.UUID) error {
	// children are removed by the parent_id cascade
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) GetProfiles(ctx context.Context, ids ...uuid.UUID) ([]*entities.Profile, error) {
	if len(ids) == 0 {
		return []*entities.Profile{}, nil
	}

	query, args, err := sqlx.In(`
			SELECT id, username, display_name, avatar, bio, banned, circle, created_at FROM profile
			WHERE id IN (?)
		`, uuidsUnique(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*profileDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = v.toProfile()
	}

	return out, nil
}

func (s pg) SetProfile(ctx context.Context, p *entities.Profile) error {
	circle := make(pq.StringArray, len(p.Circle))
	for i, v := range p.Circle {
		circle[i] = v.String()
	}

	profile := profileDTO{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		Banned:      p.Banned,
		Circle:      circle,
		CreatedAt:   p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, username, display_name, avatar, bio, banned, circle, created_at)
			VALUES(:id, :username, :display_name, :avatar, :bio, :banned, :circle, :created_at)
			ON CONFLICT(id) DO UPDATE SET
			username=excluded.username, display_name=excluded.display_name, avatar=excluded.avatar,
			bio=excluded.bio, banned=excluded.banned, circle=excluded.circle
		`, profile,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetFollowees(ctx context.Context, follower uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	if err := sqlx.SelectContext(ctx, s.ext, &out,
		`SELECT followee FROM follow WHERE follower = $1`, follower,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) Follow(ctx context.Context, follower, followee uuid.UUID) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO follow(follower, followee) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		follower, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, followee uuid.UUID) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM follow WHERE follower = $1 AND followee = $2`,
		follower, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) UpsertHashtag(ctx context.Context, name string) (*entities.Hashtag, error) {
	var h struct {
		ID        uuid.UUID `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
	}

	// DO UPDATE makes RETURNING yield the row in the existing case too
	if err := sqlx.GetContext(ctx, s.ext, &h, `
			INSERT INTO hashtag(id, name, created_at) VALUES($1, $2, $3)
			ON CONFLICT(name) DO UPDATE SET name=excluded.name
			RETURNING id, name, created_at
		`, uuid.New(), name, time.Now().UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Hashtag{ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt}, nil
}

func (s pg) GetPostHashtags(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID][]entities.Hashtag, error) {
	out := make(map[uuid.UUID][]entities.Hashtag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT ph.post_id, h.id, h.name, h.created_at
			FROM post_hashtag ph
			JOIN hashtag h ON h.id = ph.hashtag_id
			WHERE ph.post_id IN (?)
			ORDER BY ph.post_id, ph.position
		`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var rows []*struct {
		PostID    uuid.UUID `db:"post_id"`
		ID        uuid.UUID `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range rows {
		out[v.PostID] = append(out[v.PostID], entities.Hashtag{ID: v.ID, Name: v.Name, CreatedAt: v.CreatedAt})
	}

	return out, nil
}

func (s pg) GetPostMentions(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID][]*entities.Profile, error) {
	out := make(map[uuid.UUID][]*entities.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT pm.post_id, pr.id, pr.username, pr.display_name, pr.avatar, pr.bio, pr.banned, pr.created_at
			FROM post_mention pm
			JOIN profile pr ON pr.id = pm.user_id
			WHERE pm.post_id IN (?)
			ORDER BY pm.post_id, pm.position
		`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var rows []*struct {
		PostID      uuid.UUID `db:"post_id"`
		ID          uuid.UUID `db:"id"`
		Username    string    `db:"username"`
		DisplayName string    `db:"display_name"`
		Avatar      string    `db:"avatar"`
		Bio         string    `db:"bio"`
		Banned      bool      `db:"banned"`
		CreatedAt   time.Time `db:"created_at"`
	}
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range rows {
		out[v.PostID] = append(out[v.PostID], &entities.Profile{
			ID:          v.ID,
			Username:    v.Username,
			DisplayName: v.DisplayName,
			Avatar:      v.Avatar,
			Bio:         v.Bio,
			Banned:      v.Banned,
			CreatedAt:   v.CreatedAt,
		})
	}

	return out, nil
}

func (s pg) GetTrendingHashtags(ctx context.Context, limit uint16) ([]*storage.TrendingHashtag, error) {
	var rows []*struct {
		ID        uuid.UUID `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
		Uses      uint64    `db:"uses"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT h.id, h.name, h.created_at, COUNT(*) AS uses
			FROM post_hashtag ph
			JOIN hashtag h ON h.id = ph.hashtag_id
			GROUP BY h.id, h.name, h.created_at
			ORDER BY uses DESC, h.name
			LIMIT $1
		`, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.TrendingHashtag, len(rows))
	for i, v := range rows {
		out[i] = &storage.TrendingHashtag{
			Hashtag: entities.Hashtag{ID: v.ID, Name: v.Name, CreatedAt: v.CreatedAt},
			Uses:    v.Uses,
		}
	}

	return out, nil
}

func (s pg) GetPostStats(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]entities.PostStats, error) {
	out := make(map[uuid.UUID]entities.PostStats, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	type countRow struct {
		PostID uuid.UUID `db:"post_id"`
		Count  uint32    `db:"count"`
	}

	for _, q := range []struct {
		query string
		apply func(st *entities.PostStats, c uint32)
	}{
		{
			query: `SELECT post_id, COUNT(*) AS count FROM "like" WHERE post_id IN (?) GROUP BY post_id`,
			apply: func(st *entities.PostStats, c uint32) { st.Likes = c },
		},
		{
			query: `SELECT post_id, COUNT(*) AS count FROM bookmark WHERE post_id IN (?) GROUP BY post_id`,
			apply: func(st *entities.PostStats, c uint32) { st.Bookmarks = c },
		},
	} {
		query, args, err := sqlx.In(q.query, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to construct IN clause: %w", err)
		}

		var rows []*countRow
		if err := sqlx.SelectContext(ctx, s.ext, &rows, s.ext.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("failed to query: %w", err)
		}

		for _, v := range rows {
			st := out[v.PostID]
			q.apply(&st, v.Count)
			out[v.PostID] = st
		}
	}

	query, args, err := sqlx.In(
		`SELECT parent_id AS post_id, relation, COUNT(*) AS count FROM post WHERE parent_id IN (?) GROUP BY parent_id, relation`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var children []*struct {
		PostID   uuid.UUID `db:"post_id"`
		Relation uint8     `db:"relation"`
		Count    uint32    `db:"count"`
	}
	if err := sqlx.SelectContext(ctx, s.ext, &children, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range children {
		st := out[v.PostID]
		switch entities.RelationType(v.Relation) {
		case entities.RelationReply:
			st.Replies = v.Count
		case entities.RelationQuote:
			st.Quotes = v.Count
		case entities.RelationRepost:
			st.Reposts = v.Count
		}
		out[v.PostID] = st
	}

	return out, nil
}

func engagementTable(kind entities.EdgeKind) (string, error) {
	switch kind {
	case entities.EdgeLike:
		return `"like"`, nil
	case entities.EdgeBookmark:
		return `bookmark`, nil
	}
	return "", fmt.Errorf("unknown engagement kind %s", kind)
}

func (s pg) GetEngagements(ctx context.Context, kind entities.EdgeKind, owner uuid.UUID, ids ...uuid.UUID) (map[uuid.UUID]time.Time, error) {
	out := make(map[uuid.UUID]time.Time, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	table, err := engagementTable(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT post_id, created_at FROM %s WHERE owner = ? AND post_id IN (?)`, table),
		owner, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var rows []*struct {
		PostID    uuid.UUID `db:"post_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range rows {
		out[v.PostID] = v.CreatedAt
	}

	return out, nil
}

func (s pg) SetEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID, timestamp time.Time) (bool, error) {
	table, err := engagementTable(kind)
	if err != nil {
		return false, err
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s(post_id, owner, created_at) VALUES($1, $2, $3) ON CONFLICT DO NOTHING`, table),
		postID, owner, timestamp.UTC(),
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) DeleteEngagement(ctx context.Context, kind entities.EdgeKind, owner, postID uuid.UUID) error {
	table, err := engagementTable(kind)
	if err != nil {
		return err
	}

	// deleting an absent edge is not an error
	if _, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND owner = $2`, table),
		postID, owner,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetReposts(ctx context.Context, owner uuid.UUID, ids ...uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	out := make(map[uuid.UUID]uuid.UUID, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT DISTINCT ON (parent_id) parent_id, id
			FROM post
			WHERE author_id = ? AND relation = ? AND parent_id IN (?)
			ORDER BY parent_id, created_at
		`, owner, uint8(entities.RelationRepost), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var rows []*struct {
		ParentID uuid.UUID `db:"parent_id"`
		ID       uuid.UUID `db:"id"`
	}
	if err := sqlx.SelectContext(ctx, s.ext, &rows, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range rows {
		out[v.ParentID] = v.ID
	}

	return out, nil
}

func (s pg) IncrementViews(ctx context.Context, authenticated bool, timestamp time.Time, ids ...uuid.UUID) (map[uuid.UUID]entities.ViewStats, error) {
	out := make(map[uuid.UUID]entities.ViewStats, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	column := "guest_views"
	if authenticated {
		column = "user_views"
	}

	var rows []*struct {
		ID         uuid.UUID `db:"id"`
		UserViews  uint64    `db:"user_views"`
		GuestViews uint64    `db:"guest_views"`
		UpdatedAt  time.Time `db:"updated_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, fmt.Sprintf(`
			UPDATE post SET %[1]s = %[1]s + 1, updated_at = $1
			WHERE id = ANY($2)
			RETURNING id, user_views, guest_views, updated_at
		`, column), timestamp.UTC(), pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	for _, v := range rows {
		out[v.ID] = entities.ViewStats{
			UserViews:  v.UserViews,
			GuestViews: v.GuestViews,
			UpdatedAt:  v.UpdatedAt,
		}
	}

	return out, nil
}

func uuidsUnique(s []uuid.UUID) []uuid.UUID {
	m := make(map[uuid.UUID]struct{}, len(s))
	out := make([]uuid.UUID, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
