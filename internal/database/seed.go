// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vitrine/internal/config"
)

// Seed creates the administrator account if it does not exist yet.
// The credential comes from configuration; a warning is logged when the
// development default password is still in use. Running Seed against an
// already-seeded database is a no-op.
func Seed(db *sql.DB, username, password string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM usuarios WHERE username = ?", username).Scan(&count); err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}

	if count > 0 {
		slog.Info("administrator already exists, skipping seed", "username", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO usuarios (username, password_hash, totp_enabled, created_at)
		VALUES (?, ?, 0, ?)
	`, username, string(hash), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if password == config.DefaultAdminPassword {
		slog.Warn("administrator seeded with the default development password, set ADMIN_PASSWORD",
			"username", username,
		)
	} else {
		slog.Info("administrator seeded", "username", username)
	}

	return nil
}
