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

// PostStore handles all blog-post database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts a new blog post. An empty author falls back to the
// site default. Returns the stored record.
func (s *PostStore) Create(title string, body *string, author string) (*models.BlogPost, error) {
	if author == "" {
		author = models.DefaultAuthor
	}

	rec := &models.BlogPost{
		Title:       title,
		Body:        body,
		Author:      author,
		PublishedAt: time.Now().UTC(),
	}

	res, err := s.db.Exec(`
		INSERT INTO blog_posts (titulo, conteudo, autor, data_publicacao)
		VALUES (?, ?, ?, ?)
	`, rec.Title, rec.Body, rec.Author, rec.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create blog post id: %w", err)
	}
	return rec, nil
}

// List returns all blog posts, newest first.
func (s *PostStore) List() ([]models.BlogPost, error) {
	rows, err := s.db.Query(`
		SELECT id, titulo, conteudo, autor, data_publicacao
		FROM blog_posts
		ORDER BY data_publicacao DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		var rec models.BlogPost
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Body, &rec.Author, &rec.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// Delete removes a blog post by id. Deleting a missing id is a silent no-op.
func (s *PostStore) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// Count returns the total number of blog posts.
func (s *PostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}
