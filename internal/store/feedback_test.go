// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "testing"

func TestFeedbackCreateStartsUnapproved(t *testing.T) {
	db := testDB(t)
	feedbacks := NewFeedbackStore(db)

	rec, err := feedbacks.Create("Bob", "Great!", 5)
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	if rec.ID == 0 {
		t.Error("expected a generated id")
	}
	if rec.Approved {
		t.Error("new feedback must start unapproved")
	}
	if rec.Stars != 5 {
		t.Errorf("stars: got %d, want 5", rec.Stars)
	}
}

func TestFeedbackListApprovedFiltering(t *testing.T) {
	db := testDB(t)
	feedbacks := NewFeedbackStore(db)

	first, err := feedbacks.Create("Bob", "Great!", 5)
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}
	if _, err := feedbacks.Create("Carla", "Ótimo atendimento.", 4); err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	approved, err := feedbacks.ListApproved()
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("approved before moderation: got %d, want 0", len(approved))
	}

	if _, err := feedbacks.Approve(first.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	approved, err = feedbacks.ListApproved()
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("approved after moderation: got %d, want 1", len(approved))
	}
	if approved[0].CustomerName != "Bob" || approved[0].Text != "Great!" {
		t.Errorf("unexpected approved entry: %+v", approved[0])
	}

	// The full listing still shows both, newest first.
	all, err := feedbacks.List()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("full list: got %d, want 2", len(all))
	}
	if all[0].CustomerName != "Carla" {
		t.Errorf("expected newest first, got %q", all[0].CustomerName)
	}
}

func TestFeedbackApproveIdempotent(t *testing.T) {
	db := testDB(t)
	feedbacks := NewFeedbackStore(db)

	rec, err := feedbacks.Create("Bob", "Great!", 5)
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	if _, err := feedbacks.Approve(rec.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := feedbacks.Approve(rec.ID); err != nil {
		t.Fatalf("repeat approve: %v", err)
	}

	approved, _ := feedbacks.ListApproved()
	if len(approved) != 1 {
		t.Errorf("approved count after repeat: got %d, want 1", len(approved))
	}
}

func TestFeedbackApproveMissingID(t *testing.T) {
	db := testDB(t)
	feedbacks := NewFeedbackStore(db)

	n, err := feedbacks.Approve(9999)
	if err != nil {
		t.Fatalf("approve missing id: %v", err)
	}
	if n != 0 {
		t.Errorf("affected rows for missing id: got %d, want 0", n)
	}
}
