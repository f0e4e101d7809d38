// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"vitrine/internal/models"
)

func TestPostCreateDefaultsAuthor(t *testing.T) {
	db := testDB(t)
	posts := NewPostStore(db)

	rec, err := posts.Create("Primeiro post", str("# Olá\n\nBem-vindos."), "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if rec.Author != models.DefaultAuthor {
		t.Errorf("author default: got %q, want %q", rec.Author, models.DefaultAuthor)
	}

	named, err := posts.Create("Segundo post", nil, "Paula")
	if err != nil {
		t.Fatalf("create post with author: %v", err)
	}
	if named.Author != "Paula" {
		t.Errorf("explicit author: got %q, want %q", named.Author, "Paula")
	}
}

func TestPostListNewestFirst(t *testing.T) {
	db := testDB(t)
	posts := NewPostStore(db)

	for _, title := range []string{"Antigo", "Recente"} {
		if _, err := posts.Create(title, nil, ""); err != nil {
			t.Fatalf("create post %s: %v", title, err)
		}
	}

	items, err := posts.List()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("list length: got %d, want 2", len(items))
	}
	if items[0].Title != "Recente" {
		t.Errorf("expected newest first, got %q", items[0].Title)
	}
}

func TestPostDelete(t *testing.T) {
	db := testDB(t)
	posts := NewPostStore(db)

	rec, err := posts.Create("Descartável", nil, "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := posts.Delete(rec.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	count, _ := posts.Count()
	if count != 0 {
		t.Errorf("count after delete: got %d, want 0", count)
	}

	if err := posts.Delete(9999); err != nil {
		t.Errorf("delete missing id: %v", err)
	}
}
