// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/models"
)

// QuoteStore handles all quote-request database operations.
type QuoteStore struct {
	db *sql.DB
}

// NewQuoteStore creates a new QuoteStore with the given database connection.
func NewQuoteStore(db *sql.DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// QuoteRequestInput carries the fields a public submission provides.
type QuoteRequestInput struct {
	Name     string
	Email    string
	Phone    *string
	SiteType *string
	Message  *string
}

// Create inserts a new quote request with status "novo", assigning the
// creation timestamp and a unique protocol reference. The stored record is
// returned with its generated id.
func (s *QuoteStore) Create(in QuoteRequestInput) (*models.QuoteRequest, error) {
	rec := &models.QuoteRequest{
		Protocol:  uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		SiteType:  in.SiteType,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
		Status:    models.QuoteStatusNew,
	}

	res, err := s.db.Exec(`
		INSERT INTO pedidos (protocolo, nome, email, telefone, tipo_site, mensagem, data, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Protocol, rec.Name, rec.Email, rec.Phone, rec.SiteType, rec.Message, rec.CreatedAt, rec.Status)
	if err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create quote request id: %w", err)
	}
	return rec, nil
}

// List returns all quote requests, newest first.
func (s *QuoteStore) List() ([]models.QuoteRequest, error) {
	rows, err := s.db.Query(`
		SELECT id, protocolo, nome, email, telefone, tipo_site, mensagem, data, status
		FROM pedidos
		ORDER BY data DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	defer rows.Close()

	var items []models.QuoteRequest
	for rows.Next() {
		var rec models.QuoteRequest
		if err := rows.Scan(
			&rec.ID, &rec.Protocol, &rec.Name, &rec.Email,
			&rec.Phone, &rec.SiteType, &rec.Message, &rec.CreatedAt, &rec.Status,
		); err != nil {
			return nil, fmt.Errorf("scan quote request: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// MarkAnswered transitions a quote request to "respondido". The transition
// is one-way and idempotent; a missing id is a silent no-op. The number of
// affected rows is returned for callers that care about the distinction.
func (s *QuoteStore) MarkAnswered(id int64) (int64, error) {
	res, err := s.db.Exec(`UPDATE pedidos SET status = ? WHERE id = ?`, models.QuoteStatusAnswered, id)
	if err != nil {
		return 0, fmt.Errorf("mark quote request answered: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark quote request answered: %w", err)
	}
	return n, nil
}

// Count returns the total number of quote requests.
func (s *QuoteStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pedidos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quote requests: %w", err)
	}
	return count, nil
}
