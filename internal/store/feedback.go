// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"vitrine/internal/models"
)

// FeedbackStore handles all customer-feedback database operations.
type FeedbackStore struct {
	db *sql.DB
}

// NewFeedbackStore creates a new FeedbackStore with the given database connection.
func NewFeedbackStore(db *sql.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// Create inserts a new feedback entry, unapproved, with the creation
// timestamp assigned here. The stored record is returned with its id.
func (s *FeedbackStore) Create(customerName, text string, stars int) (*models.Feedback, error) {
	rec := &models.Feedback{
		CustomerName: customerName,
		Text:         text,
		Stars:        stars,
		CreatedAt:    time.Now().UTC(),
		Approved:     false,
	}

	res, err := s.db.Exec(`
		INSERT INTO feedbacks (nome_cliente, feedback, estrelas, data, aprovado)
		VALUES (?, ?, ?, ?, 0)
	`, rec.CustomerName, rec.Text, rec.Stars, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create feedback id: %w", err)
	}
	return rec, nil
}

// List returns all feedback entries, newest first, approved or not.
func (s *FeedbackStore) List() ([]models.Feedback, error) {
	return s.list(`
		SELECT id, nome_cliente, feedback, estrelas, data, aprovado
		FROM feedbacks
		ORDER BY data DESC, id DESC
	`)
}

// ListApproved returns only approved feedback entries, newest first.
// This is the set shown on the public site.
func (s *FeedbackStore) ListApproved() ([]models.Feedback, error) {
	return s.list(`
		SELECT id, nome_cliente, feedback, estrelas, data, aprovado
		FROM feedbacks
		WHERE aprovado = 1
		ORDER BY data DESC, id DESC
	`)
}

func (s *FeedbackStore) list(query string) ([]models.Feedback, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer rows.Close()

	var items []models.Feedback
	for rows.Next() {
		var rec models.Feedback
		if err := rows.Scan(
			&rec.ID, &rec.CustomerName, &rec.Text, &rec.Stars, &rec.CreatedAt, &rec.Approved,
		); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// Approve transitions a feedback entry to approved. One-way, idempotent;
// a missing id is a silent no-op. Returns the number of affected rows.
func (s *FeedbackStore) Approve(id int64) (int64, error) {
	res, err := s.db.Exec(`UPDATE feedbacks SET aprovado = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("approve feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("approve feedback: %w", err)
	}
	return n, nil
}

// Count returns the total number of feedback entries.
func (s *FeedbackStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM feedbacks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count feedbacks: %w", err)
	}
	return count, nil
}
