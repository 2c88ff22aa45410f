// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

// Package api provides HTTP routing and endpoint handlers using Chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/middleware"
	"github.com/tomtom215/cinelog/internal/store"
)

// Router assembles the middleware stack and route groups.
type Router struct {
	cfg           *config.Config
	handlers      *Handlers
	authenticator *auth.Authenticator
	policies      *Policies
	limits        *Limits
}

// NewRouter wires the full API surface.
func NewRouter(cfg *config.Config, st *store.Store) (*Router, error) {
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, err
	}
	authenticator, err := auth.NewAuthenticator(&cfg.Security, jwtManager, st)
	if err != nil {
		return nil, err
	}

	return &Router{
		cfg:           cfg,
		handlers:      NewHandlers(st, jwtManager),
		authenticator: authenticator,
		policies:      NewPolicies(&cfg.Security, st),
		limits:        NewLimits(&cfg.Security, st),
	}, nil
}

// Setup builds the chi handler tree.
//
// Each resource group mounts the same pipeline: Extract resolves
// credentials, Authorize enforces the group's policy table, and the data
// groups additionally run the persisted request quota. The policy tables
// are built once here and shared by every request.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if !rt.cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(rt.cfg.Security.RateLimitReqs, rt.cfg.Security.RateLimitWindow))
	}
	r.Use(middleware.PrometheusMetrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", rt.handlers.HealthLive)
		r.Get("/ready", rt.handlers.HealthReady)
	})

	extract := rt.authenticator.Extract

	r.Route("/api/v1/accounts", func(r chi.Router) {
		r.Use(extract)
		r.Use(auth.Authorize(rt.policies.AccountsPolicy()))

		r.Post("/user", rt.handlers.CreateUser)
		r.Post("/admin", rt.handlers.CreateAdmin)
		r.Post("/login", rt.handlers.Login)
		r.Get("/{email}", rt.handlers.GetAccount)
		r.Patch("/roles/{email}", rt.handlers.UpdateRole)
		r.Patch("/password/{email}", rt.handlers.UpdatePassword)
		r.Patch("/block/{email}", rt.handlers.BlockAccount)
		r.Patch("/unblock/{email}", rt.handlers.UnblockAccount)
		r.Delete("/{email}", rt.handlers.DeleteAccount)
	})

	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(extract)
		r.Use(auth.Authorize(rt.policies.MoviesPolicy()))
		r.Use(rt.limits.Quota)

		r.Get("/{id}", rt.handlers.GetMovie)
		r.Post("/most-rated", rt.handlers.MostRated)
		r.Post("/most-commented", rt.handlers.MostCommented)
		r.With(rt.limits.VoteOnce).Patch("/{imdbID}", rt.handlers.RateMovie)
	})

	r.Route("/api/v1/comments", func(r chi.Router) {
		r.Use(extract)
		r.Use(auth.Authorize(rt.policies.CommentsPolicy()))
		r.Use(rt.limits.Quota)

		r.Post("/comment", rt.handlers.CreateComment)
		r.Post("/", rt.handlers.UpdateComment)
		r.Get("/comment/{id}", rt.handlers.GetCommentsByMovie)
		r.Get("/{email}", rt.handlers.GetCommentsByEmail)
		r.Delete("/comment/{id}", rt.handlers.DeleteComment)
	})

	r.Route("/api/v1/favorites", func(r chi.Router) {
		r.Use(extract)
		r.Use(auth.Authorize(rt.policies.FavoritesPolicy()))
		r.Use(rt.limits.Quota)

		r.Post("/favorite", rt.handlers.CreateFavorite)
		r.Get("/{email}", rt.handlers.GetFavorites)
		r.Put("/favorite", rt.handlers.UpdateFavorite)
		r.Delete("/favorite", rt.handlers.DeleteFavorite)
	})

	return r
}
