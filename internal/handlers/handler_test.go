// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Each test gets its own in-memory SQLite database; caching is disabled
// (a nil APICache) so handlers hit the database directly.
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pressly/goose/v3"

	"vitrine/internal/database"
	"vitrine/internal/middleware"
	"vitrine/internal/render"
	"vitrine/internal/session"
	"vitrine/internal/store"
)

var dbCounter atomic.Int64

// testDB opens a fresh in-memory database and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate test db: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	DB        *sql.DB
	Renderer  *render.Renderer
	Users     *store.UserStore
	Quotes    *store.QuoteStore
	Feedbacks *store.FeedbackStore
	Projects  *store.ProjectStore
	Posts     *store.PostStore
	Admin     *Admin
	Public    *Public
}

// newTestEnv creates a complete test environment. The Auth group is not
// included here because it needs a live session store; auth tests build
// their own.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	users := store.NewUserStore(db)
	quotes := store.NewQuoteStore(db)
	feedbacks := store.NewFeedbackStore(db)
	projects := store.NewProjectStore(db)
	posts := store.NewPostStore(db)

	admin := NewAdmin(renderer, quotes, feedbacks, projects, posts, nil)
	public := NewPublic(renderer, quotes, feedbacks, projects, posts, nil)

	return &testEnv{
		DB:        db,
		Renderer:  renderer,
		Users:     users,
		Quotes:    quotes,
		Feedbacks: feedbacks,
		Projects:  projects,
		Posts:     posts,
		Admin:     admin,
		Public:    public,
	}
}

// testSession creates session data for an authenticated administrator.
func testSession() *session.Data {
	return &session.Data{UserID: 1, Username: "admin", TOTPVerified: true}
}

// withSession adds session data to a request using the middleware key.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
