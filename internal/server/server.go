// Package server Feed
//
// The feed service composes post feeds and aggregates engagement counters.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/twizzapp/feed-service/internal/middleware"
	"github.com/twizzapp/feed-service/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

const trendingCacheTTL = 10 * time.Minute

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, jwtSecret []byte, timeout time.Duration) {
	r.Use(
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	auth := authenticator{secret: jwtSecret}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.optional)

			r.Get("/posts/{id}", srv.getPost)
			r.Get("/posts/{id}/children", srv.getChildren)
			r.Get("/users/{id}/posts", srv.getUserPosts)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.required)

			r.Post("/posts", srv.createPost)
			r.Delete("/posts/{id}", srv.deletePost)
			r.Post("/posts/{id}/like", srv.like)
			r.Delete("/posts/{id}/like", srv.unlike)
			r.Post("/posts/{id}/bookmark", srv.bookmark)
			r.Delete("/posts/{id}/bookmark", srv.unbookmark)
			r.Get("/timeline", srv.getTimeline)
			r.Post("/users/{id}/follow", srv.follow)
			r.Delete("/users/{id}/follow", srv.unfollow)
			r.Put("/profiles", srv.setProfile)
		})

		r.Get("/hashtags/trending", mm.Cached(trendingCacheTTL, srv.getTrendingHashtags))
	})
}

func bodyLimiter(size int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
