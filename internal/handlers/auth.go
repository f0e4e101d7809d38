// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"vitrine/internal/middleware"
	"vitrine/internal/render"
	"vitrine/internal/session"
	"vitrine/internal/store"
)

// totpIssuer is the issuer name shown in authenticator apps.
const totpIssuer = "Vitrine"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		userStore: userStore,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in and verified, redirect to the dashboard.
	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.TOTPVerified {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Entrar",
	})
}

// LoginSubmit processes the login form. A missing account and a wrong
// password produce the same error message.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := a.userStore.FindByUsername(username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Entrar",
			Data:  map[string]any{"Error": "Ocorreu um erro inesperado."},
		})
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, password) {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Entrar",
			Data:  map[string]any{"Error": "Usuário ou senha inválidos."},
		})
		return
	}

	// Accounts without TOTP enrollment are fully verified at login;
	// enrolled accounts owe a code before the admin area opens.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:       user.ID,
		Username:     user.Username,
		TOTPVerified: !user.RequiresTOTP(),
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if user.RequiresTOTP() {
		http.Redirect(w, r, "/admin/2fa/verify", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// TwoFAVerifyPage renders the TOTP code entry form.
func (a *Auth) TwoFAVerifyPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if sess.TOTPVerified {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "2fa_verify", &render.PageData{
		Title: "Verificação",
	})
}

// TwoFAVerifySubmit validates the TOTP code and completes authentication.
func (a *Auth) TwoFAVerifySubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !user.RequiresTOTP() {
		// Enrollment was disabled since login; nothing left to verify.
		sess.TOTPVerified = true
		a.sessions.Update(r.Context(), r, sess)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if !totp.Validate(r.FormValue("code"), *user.TOTPSecret) {
		a.renderer.Page(w, r, "2fa_verify", &render.PageData{
			Title: "Verificação",
			Data:  map[string]any{"Error": "Código inválido. Tente novamente."},
		})
		return
	}

	sess.TOTPVerified = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// SecurityPage renders the account security page. While an enrollment is
// pending (secret saved, not yet confirmed) the QR code is shown again so
// a reload doesn't lose the setup.
func (a *Auth) SecurityPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for security page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{"TOTPEnabled": user.TOTPEnabled}

	if !user.TOTPEnabled && user.TOTPSecret != nil {
		qr, err := enrollmentQR(user.Username, *user.TOTPSecret)
		if err != nil {
			slog.Error("qr code generation failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data["QRCode"] = qr
		data["Secret"] = *user.TOTPSecret
	}

	a.renderer.Page(w, r, "seguranca", &render.PageData{
		Title:   "Segurança",
		Section: "seguranca",
		Data:    data,
	})
}

// TOTPEnrollStart generates a fresh TOTP secret, saves it unconfirmed, and
// shows the QR code for the authenticator app.
func (a *Auth) TOTPEnrollStart(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Username,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "seguranca", &render.PageData{
		Title:   "Segurança",
		Section: "seguranca",
		Data: map[string]any{
			"TOTPEnabled": false,
			"QRCode":      base64.StdEncoding.EncodeToString(qrPNG),
			"Secret":      key.Secret(),
		},
	})
}

// TOTPEnrollConfirm validates the first code against the pending secret and
// activates 2FA for the account.
func (a *Auth) TOTPEnrollConfirm(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa confirm failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if user.TOTPSecret == nil {
		http.Redirect(w, r, "/admin/seguranca", http.StatusSeeOther)
		return
	}

	if !totp.Validate(r.FormValue("code"), *user.TOTPSecret) {
		qr, qrErr := enrollmentQR(user.Username, *user.TOTPSecret)
		if qrErr != nil {
			slog.Error("qr code generation failed", "error", qrErr)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		a.renderer.Page(w, r, "seguranca", &render.PageData{
			Title:   "Segurança",
			Section: "seguranca",
			Data: map[string]any{
				"TOTPEnabled": false,
				"Error":       "Código inválido. Tente novamente.",
				"QRCode":      qr,
				"Secret":      *user.TOTPSecret,
			},
		})
		return
	}

	if err := a.userStore.EnableTOTP(user.ID); err != nil {
		slog.Error("enable totp failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// The current session has proven possession of the secret.
	sess.TOTPVerified = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
	}

	http.Redirect(w, r, "/admin/seguranca", http.StatusSeeOther)
}

// TOTPDisable clears the secret and turns 2FA off for the account.
func (a *Auth) TOTPDisable(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	if err := a.userStore.DisableTOTP(sess.UserID); err != nil {
		slog.Error("disable totp failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/seguranca", http.StatusSeeOther)
}

// enrollmentQR rebuilds the provisioning QR code for a stored secret.
func enrollmentQR(username, secret string) (string, error) {
	url := "otpauth://totp/" + totpIssuer + ":" + username + "?secret=" + secret + "&issuer=" + totpIssuer
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
