// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"vitrine/internal/models"
)

func TestQuoteCreateAssignsProtocolAndStatus(t *testing.T) {
	db := testDB(t)
	quotes := NewQuoteStore(db)

	rec, err := quotes.Create(QuoteRequestInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Phone:    str("11 99999-0000"),
		SiteType: str("institucional"),
		Message:  str("Preciso de um site para minha loja."),
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}

	if rec.ID == 0 {
		t.Error("expected a generated id")
	}
	if rec.Protocol == "" {
		t.Error("expected a protocol reference")
	}
	if rec.Status != models.QuoteStatusNew {
		t.Errorf("status: got %q, want %q", rec.Status, models.QuoteStatusNew)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}

	other, err := quotes.Create(QuoteRequestInput{Name: "João", Email: "joao@example.com"})
	if err != nil {
		t.Fatalf("create second quote: %v", err)
	}
	if other.Protocol == rec.Protocol {
		t.Error("protocol references must be unique")
	}
}

func TestQuoteListNewestFirst(t *testing.T) {
	db := testDB(t)
	quotes := NewQuoteStore(db)

	for _, name := range []string{"Primeiro", "Segundo", "Terceiro"} {
		if _, err := quotes.Create(QuoteRequestInput{Name: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("create quote %s: %v", name, err)
		}
	}

	items, err := quotes.List()
	if err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("list length: got %d, want 3", len(items))
	}
	if items[0].Name != "Terceiro" || items[2].Name != "Primeiro" {
		t.Errorf("expected newest first, got %q .. %q", items[0].Name, items[2].Name)
	}
}

func TestQuoteMarkAnswered(t *testing.T) {
	db := testDB(t)
	quotes := NewQuoteStore(db)

	rec, err := quotes.Create(QuoteRequestInput{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}

	n, err := quotes.MarkAnswered(rec.ID)
	if err != nil {
		t.Fatalf("mark answered: %v", err)
	}
	if n != 1 {
		t.Errorf("affected rows: got %d, want 1", n)
	}

	items, err := quotes.List()
	if err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	if items[0].Status != models.QuoteStatusAnswered {
		t.Errorf("status after transition: got %q, want %q", items[0].Status, models.QuoteStatusAnswered)
	}

	// The transition is idempotent: repeating it keeps the same state.
	if _, err := quotes.MarkAnswered(rec.ID); err != nil {
		t.Fatalf("repeat mark answered: %v", err)
	}
	items, _ = quotes.List()
	if items[0].Status != models.QuoteStatusAnswered {
		t.Errorf("status after repeat: got %q, want %q", items[0].Status, models.QuoteStatusAnswered)
	}
}

func TestQuoteMarkAnsweredMissingID(t *testing.T) {
	db := testDB(t)
	quotes := NewQuoteStore(db)

	n, err := quotes.MarkAnswered(9999)
	if err != nil {
		t.Fatalf("mark answered missing id: %v", err)
	}
	if n != 0 {
		t.Errorf("affected rows for missing id: got %d, want 0", n)
	}
}

func TestQuoteCount(t *testing.T) {
	db := testDB(t)
	quotes := NewQuoteStore(db)

	count, err := quotes.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("empty count: got %d, want 0", count)
	}

	quotes.Create(QuoteRequestInput{Name: "Um", Email: "um@example.com"})
	quotes.Create(QuoteRequestInput{Name: "Dois", Email: "dois@example.com"})

	count, err = quotes.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count: got %d, want 2", count)
	}
}
