package storage

import (
	"context"
	"testing"
)

func TestEngagementRepo_Likes(t *testing.T) {
	db := newTestDB(t)
	capsuleRepo := NewCapsuleRepo(db)
	itemRepo := NewItemRepo(db)
	repo := NewEngagementRepo(db)
	ctx := context.Background()

	capsule := newTestCapsule(t, capsuleRepo, "Memories", VisibilityGroup, StateUnlocked)
	item := newTestItem(t, itemRepo, capsule.ID, "like me")

	count, err := repo.Like(ctx, item.ID, "ana")
	if err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Like() count = %d, want 1", count)
	}

	// Liking twice from the same handle is a no-op.
	count, err = repo.Like(ctx, item.ID, "ana")
	if err != nil {
		t.Fatalf("Like() repeat error = %v", err)
	}
	if count != 1 {
		t.Errorf("Like() repeat count = %d, want 1", count)
	}

	count, err = repo.Like(ctx, item.ID, "ben")
	if err != nil {
		t.Fatalf("Like() second handle error = %v", err)
	}
	if count != 2 {
		t.Errorf("Like() second handle count = %d, want 2", count)
	}

	count, err = repo.Unlike(ctx, item.ID, "ana")
	if err != nil {
		t.Fatalf("Unlike() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Unlike() count = %d, want 1", count)
	}

	// Removing a like that does not exist changes nothing.
	count, err = repo.Unlike(ctx, item.ID, "ana")
	if err != nil {
		t.Fatalf("Unlike() repeat error = %v", err)
	}
	if count != 1 {
		t.Errorf("Unlike() repeat count = %d, want 1", count)
	}
}

func TestEngagementRepo_Comments(t *testing.T) {
	db := newTestDB(t)
	capsuleRepo := NewCapsuleRepo(db)
	itemRepo := NewItemRepo(db)
	repo := NewEngagementRepo(db)
	ctx := context.Background()

	capsule := newTestCapsule(t, capsuleRepo, "Memories", VisibilityGroup, StateUnlocked)
	item := newTestItem(t, itemRepo, capsule.ID, "talk about me")

	for _, text := range []string{"first", "second", "third"} {
		if err := repo.AddComment(ctx, item.ID, "ana", text); err != nil {
			t.Fatalf("AddComment(%q) error = %v", text, err)
		}
	}

	comments, total, err := repo.ListComments(ctx, item.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if total != 3 {
		t.Errorf("ListComments() total = %d, want 3", total)
	}
	if len(comments) != 2 {
		t.Fatalf("ListComments() page len = %d, want 2", len(comments))
	}
	// Oldest first.
	if comments[0].Text != "first" || comments[1].Text != "second" {
		t.Errorf("ListComments() page = [%q, %q], want [first, second]",
			comments[0].Text, comments[1].Text)
	}

	comments, _, err = repo.ListComments(ctx, item.ID, 2, 2)
	if err != nil {
		t.Fatalf("ListComments() page 2 error = %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "third" {
		t.Errorf("ListComments() page 2 = %v, want [third]", comments)
	}
}
