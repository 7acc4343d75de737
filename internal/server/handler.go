package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
)

var (
	errInvalidPage     = errors.New("invalid page")
	errInvalidLimit    = errors.New("invalid limit")
	errInvalidRelation = errors.New("invalid type")
)

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Feed GetPost
	//
	// Get post by id. Authenticated viewers get their like/bookmark/repost
	// flags resolved, restricted posts require a token.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '401':
	//     description: authentication required
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: viewer is out of the audience
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	post, err := s.s.GetPost(r.Context(), id, viewerID(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) getChildren(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/children Feed GetChildren
	//
	// Returns replies, quotes and reposts of a post, newest first, with an
	// independent total.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: type
	//   description: filters children by relation type
	//   in: query
	//   required: false
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Children
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	relation, err := extractRelationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.GetChildren(r.Context(), id, relation, p, viewerID(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, newListPostsResponse(list, p))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Feed CreatePost
	//
	// Publish a post. Reposts, replies and quotes reference a parent post.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: created post
	//     schema:
	//       "$ref": "#/definitions/Post"

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	params := service.CreatePostParams{
		AuthorID: *viewerID(r),
		Relation: entities.RelationType(req.Relation),
		Audience: entities.Audience(req.Audience),
		Text:     req.Text,
		Hashtags: req.Hashtags,
	}

	if req.ParentID != nil {
		id, ok := parseUUID(*req.ParentID)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid parent_id")
			return
		}
		params.ParentID = &id
	}

	for _, m := range req.Media {
		params.Media = append(params.Media, entities.Media{URL: m.URL, Kind: entities.MediaKind(m.Kind)})
	}

	for _, m := range req.Mentions {
		id, ok := parseUUID(m)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid mention")
			return
		}
		params.Mentions = append(params.Mentions, id)
	}

	post, err := s.s.CreatePost(r.Context(), &params)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Feed DeletePost
	//
	// Delete own post, children are removed with it.
	//
	// ---
	// responses:
	//   '204':
	//     description: deleted

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.DeletePost(r.Context(), id, *viewerID(r)); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Feed Like
	//
	// Like a post. Repeated likes are no-ops and report the original edge.
	//
	// ---
	// responses:
	//   '200':
	//     description: like state
	//     schema:
	//       "$ref": "#/definitions/EdgeResponse"

	s.setEdge(w, r, s.s.Like)
}

func (s server) unlike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id}/like Feed Unlike
	//
	// Remove own like, removing an absent like is a no-op.
	//
	// ---
	// responses:
	//   '204':
	//     description: removed

	s.deleteEdge(w, r, s.s.Unlike)
}

func (s server) bookmark(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/bookmark Feed Bookmark
	//
	// Bookmark a post.
	//
	// ---
	// responses:
	//   '200':
	//     description: bookmark state
	//     schema:
	//       "$ref": "#/definitions/EdgeResponse"

	s.setEdge(w, r, s.s.Bookmark)
}

func (s server) unbookmark(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id}/bookmark Feed Unbookmark
	//
	// Remove own bookmark.
	//
	// ---
	// responses:
	//   '204':
	//     description: removed

	s.deleteEdge(w, r, s.s.Unbookmark)
}

func (s server) setEdge(w http.ResponseWriter, r *http.Request, f func(ctx context.Context, owner, postID uuid.UUID) (*service.EdgeState, error)) {
	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	state, err := f(r.Context(), *viewerID(r), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, EdgeResponse{
		PostID:    state.PostID.String(),
		CreatedAt: state.CreatedAt.Unix(),
	})
}

func (s server) deleteEdge(w http.ResponseWriter, r *http.Request, f func(ctx context.Context, owner, postID uuid.UUID) error) {
	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := f(r.Context(), *viewerID(r), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getTimeline(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /timeline Feed GetTimeline
	//
	// Returns posts of the viewer and their followees, replies excluded,
	// newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Timeline
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"

	p, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.GetTimeline(r.Context(), *viewerID(r), p)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, newListPostsResponse(list, p))
}

func (s server) getUserPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/posts Feed GetUserPosts
	//
	// Returns a user's posts, replies excluded unless requested by type.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: type
	//   description: filters posts by relation type
	//   in: query
	//   required: false
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := extractPaginationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	relation, err := extractRelationFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.GetUserPosts(r.Context(), id, relation, p, viewerID(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, newListPostsResponse(list, p))
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/{id}/follow Feed Follow
	//
	// Follow a user.
	//
	// ---
	// responses:
	//   '204':
	//     description: followed

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.Follow(r.Context(), *viewerID(r), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /users/{id}/follow Feed Unfollow
	//
	// Unfollow a user.
	//
	// ---
	// responses:
	//   '204':
	//     description: unfollowed

	id, ok := parseUUID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.Unfollow(r.Context(), *viewerID(r), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) setProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profiles Feed SetProfile
	//
	// Upsert the viewer's local profile copy.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SetProfileRequest"
	// responses:
	//   '204':
	//     description: saved

	var req SetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	p := entities.Profile{
		ID:          *viewerID(r),
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		Banned:      req.Banned,
	}

	for _, v := range req.Circle {
		id, ok := parseUUID(v)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid circle member")
			return
		}
		p.Circle = append(p.Circle, id)
	}

	if err := s.s.SetProfile(r.Context(), &p); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getTrendingHashtags(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /hashtags/trending Feed GetTrendingHashtags
	//
	// Returns the most used hashtags, the response is cached.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Hashtags
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/TrendingHashtag"

	limit := uint16(defaultLimit)
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 16)
		if err != nil || parsed < 1 || parsed > maxLimit {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = uint16(parsed)
	}

	hh, err := s.s.GetTrendingHashtags(r.Context(), limit)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, newTrendingHashtagsResponse(hh))
}

func extractPaginationFromQuery(q url.Values) (service.Pagination, error) {
	out := service.Pagination{
		Page:  1,
		Limit: defaultLimit,
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 32)
		if err != nil || page < 1 {
			return out, errInvalidPage
		}
		out.Page = uint32(page)
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 16)
		if err != nil || limit < 1 || limit > maxLimit {
			return out, errInvalidLimit
		}
		out.Limit = uint16(limit)
	}

	return out, nil
}

func extractRelationFromQuery(q url.Values) (*entities.RelationType, error) {
	v := q.Get("type")
	if v == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(v, 10, 8)
	if err != nil || !entities.RelationType(parsed).Valid() {
		return nil, errInvalidRelation
	}

	out := entities.RelationType(parsed)
	return &out, nil
}
