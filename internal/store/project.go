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

// ProjectStore handles all portfolio-project database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create inserts a new portfolio project and returns the stored record.
func (s *ProjectStore) Create(title string, description, imageURL, link *string) (*models.Project, error) {
	rec := &models.Project{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Link:        link,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := s.db.Exec(`
		INSERT INTO projetos (titulo, descricao, imagem_url, link, data_criacao)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Title, rec.Description, rec.ImageURL, rec.Link, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create project id: %w", err)
	}
	return rec, nil
}

// List returns all portfolio projects, newest first.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, titulo, descricao, imagem_url, link, data_criacao
		FROM projetos
		ORDER BY data_criacao DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		var rec models.Project
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Description, &rec.ImageURL, &rec.Link, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// Delete removes a project by id. Deleting a missing id is a silent no-op.
func (s *ProjectStore) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM projetos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Count returns the total number of portfolio projects.
func (s *ProjectStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projetos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
