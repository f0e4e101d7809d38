// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Routes are
// organized into public, API, and admin groups with appropriate stacks.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
	"vitrine/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. corsOrigins limits which sites may consume
// the public API; an empty list allows any origin.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Public pages.
	r.Get("/", public.Landing)
	r.Get("/health", public.Health)

	// Public API, consumed by the front-end site, possibly cross-origin.
	r.Route("/api", func(r chi.Router) {
		if len(corsOrigins) == 0 {
			corsOrigins = []string{"*"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Post("/pedido", public.SubmitQuote)
		r.Post("/feedback", public.SubmitFeedback)
		r.Get("/feedbacks-aprovados", public.ListApprovedFeedback)
		r.Get("/projetos", public.ListProjects)
		r.Get("/blog", public.ListBlogPosts)
	})

	// Admin routes require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages, accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)

		// 2FA verify requires auth but NOT a verified session yet.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated and verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireTOTP)

			r.Get("/", admin.Dashboard)
			r.Get("/logout", auth.Logout)

			// Quote requests
			r.Get("/pedidos", admin.PedidosList)
			r.Get("/pedidos/responder/{id}", admin.PedidoResponder)

			// Feedback moderation
			r.Get("/feedbacks", admin.FeedbacksList)
			r.Get("/feedbacks/aprovar/{id}", admin.FeedbackAprovar)

			// Portfolio projects
			r.Get("/projetos", admin.ProjetosList)
			r.Get("/projetos/novo", admin.ProjetoNew)
			r.Post("/projetos/novo", admin.ProjetoCreate)
			r.Get("/projetos/excluir/{id}", admin.ProjetoDelete)

			// Blog posts
			r.Get("/blog", admin.BlogList)
			r.Get("/blog/novo", admin.PostNew)
			r.Post("/blog/novo", admin.PostCreate)
			r.Get("/blog/excluir/{id}", admin.PostDelete)

			// Account security
			r.Get("/seguranca", auth.SecurityPage)
			r.Post("/seguranca/2fa/ativar", auth.TOTPEnrollStart)
			r.Post("/seguranca/2fa/confirmar", auth.TOTPEnrollConfirm)
			r.Post("/seguranca/2fa/desativar", auth.TOTPDisable)
		})
	})

	return r
}
