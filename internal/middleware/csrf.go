// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

const (
	// csrfTokenLength is the byte length of CSRF tokens (32 bytes = 64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie that holds the CSRF token.
	CSRFCookieName = "vt_csrf"

	// CSRFFormField is the hidden form field carrying the token.
	CSRFFormField = "csrf_token"

	// csrfKey is the context key for the current request's CSRF token.
	csrfKey contextKey = "csrf_token"
)

// CSRF provides double-submit cookie CSRF protection for the admin forms.
// It ensures a token cookie exists, makes the token available to templates
// through the request context, and validates that state-changing requests
// (POST, PUT, PATCH, DELETE) echo the same token in a form field.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(CSRFCookieName); err == nil {
			token = cookie.Value
		}
		if token == "" {
			generated, err := generateCSRFToken()
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			token = generated
			http.SetCookie(w, &http.Cookie{
				Name:     CSRFCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: false, // Templates and scripts read this for form fields
				SameSite: http.SameSiteStrictMode,
			})
		}

		// The freshly generated token is not yet in the request cookie,
		// so carry it in the context for the renderer.
		r = r.WithContext(context.WithValue(r.Context(), csrfKey, token))

		// Safe methods don't need CSRF validation.
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		submitted := r.FormValue(CSRFFormField)
		if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
			http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CSRFTokenFromCtx returns the CSRF token for the current request.
// Used in templates to populate the hidden form field.
func CSRFTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(csrfKey).(string)
	return token
}

// generateCSRFToken creates a cryptographically random token.
func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
