// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggerPassesThrough(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/tea", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want 418", rr.Code)
	}
	if rr.Body.String() != "body" {
		t.Errorf("body: got %q, want %q", rr.Body.String(), "body")
	}
}

func TestResponseWriterDefaultsTo200(t *testing.T) {
	rr := httptest.NewRecorder()
	wrapped := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	wrapped.Write([]byte("ok"))

	if wrapped.statusCode != http.StatusOK {
		t.Errorf("status code: got %d, want 200", wrapped.statusCode)
	}
}

func TestResponseWriterCapturesFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	wrapped := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.Write([]byte("not found"))

	if wrapped.statusCode != http.StatusNotFound {
		t.Errorf("status code: got %d, want 404", wrapped.statusCode)
	}
}
