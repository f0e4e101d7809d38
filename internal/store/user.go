// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all site entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"vitrine/internal/models"
)

// UserStore handles all administrator-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, username, password_hash, totp_secret, totp_enabled, created_at
		FROM usuarios WHERE username = ?
	`, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.TOTPSecret, &u.TOTPEnabled, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by id. Returns nil if not found.
func (s *UserStore) FindByID(id int64) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, username, password_hash, totp_secret, totp_enabled, created_at
		FROM usuarios WHERE id = ?
	`, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.TOTPSecret, &u.TOTPEnabled, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// SetTOTPSecret saves the TOTP secret for a user (during 2FA enrollment).
// The secret is stored before verification; totp_enabled stays false until
// the first code is confirmed.
func (s *UserStore) SetTOTPSecret(userID int64, secret string) error {
	_, err := s.db.Exec(`UPDATE usuarios SET totp_secret = ? WHERE id = ?`, secret, userID)
	if err != nil {
		return fmt.Errorf("set totp secret: %w", err)
	}
	return nil
}

// EnableTOTP marks 2FA as active for a user (after successful code verification).
func (s *UserStore) EnableTOTP(userID int64) error {
	_, err := s.db.Exec(`UPDATE usuarios SET totp_enabled = 1 WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("enable totp: %w", err)
	}
	return nil
}

// DisableTOTP clears the TOTP secret and disables 2FA for a user.
func (s *UserStore) DisableTOTP(userID int64) error {
	_, err := s.db.Exec(`UPDATE usuarios SET totp_secret = NULL, totp_enabled = 0 WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("disable totp: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the user's stored hash.
// bcrypt's comparison is constant-time with respect to the hash contents.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
