// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// session_test.go holds integration tests for the Valkey-backed session
// store. Tests are skipped when Valkey is not available.
package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testClient returns a Valkey client on DB 15, skipping when unreachable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, keyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// requestWithCookie builds a request carrying the session cookie from a
// recorded response.
func requestWithCookie(rr *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionLifecycle(t *testing.T) {
	store := NewStore(testClient(t), false)
	ctx := context.Background()

	rr := httptest.NewRecorder()
	id, err := store.Create(ctx, rr, &Data{UserID: 1, Username: "admin", TOTPVerified: true})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	data, err := store.Get(ctx, requestWithCookie(rr))
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if data == nil {
		t.Fatal("expected session data, got nil")
	}
	if data.UserID != 1 || data.Username != "admin" || !data.TOTPVerified {
		t.Errorf("round-trip mismatch: %+v", data)
	}
}

func TestSessionGetWithoutCookie(t *testing.T) {
	store := NewStore(testClient(t), false)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	data, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("get without cookie: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil session, got %+v", data)
	}
}

func TestSessionUpdate(t *testing.T) {
	store := NewStore(testClient(t), false)
	ctx := context.Background()

	rr := httptest.NewRecorder()
	if _, err := store.Create(ctx, rr, &Data{UserID: 1, Username: "admin", TOTPVerified: false}); err != nil {
		t.Fatalf("create session: %v", err)
	}

	req := requestWithCookie(rr)
	data, _ := store.Get(ctx, req)
	data.TOTPVerified = true
	if err := store.Update(ctx, req, data); err != nil {
		t.Fatalf("update session: %v", err)
	}

	updated, _ := store.Get(ctx, req)
	if updated == nil || !updated.TOTPVerified {
		t.Errorf("update not persisted: %+v", updated)
	}
}

func TestSessionDestroy(t *testing.T) {
	store := NewStore(testClient(t), false)
	ctx := context.Background()

	rr := httptest.NewRecorder()
	if _, err := store.Create(ctx, rr, &Data{UserID: 1, Username: "admin"}); err != nil {
		t.Fatalf("create session: %v", err)
	}

	req := requestWithCookie(rr)
	destroyRR := httptest.NewRecorder()
	if err := store.Destroy(ctx, destroyRR, req); err != nil {
		t.Fatalf("destroy session: %v", err)
	}

	// The cookie is expired on the response.
	var cleared bool
	for _, c := range destroyRR.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("destroy should expire the session cookie")
	}

	data, _ := store.Get(ctx, req)
	if data != nil {
		t.Errorf("session should be gone after destroy, got %+v", data)
	}
}
