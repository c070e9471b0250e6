package db

import (
	"errors"
	"testing"

	"github.com/adamavenir/embedg/internal/types"
)

func TestSaveAndGetSavedMessage(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	msg := types.Message{Content: "hello", Embeds: []types.Embed{}, Components: []types.ComponentRow{}}
	saved, err := SaveMessage(db, "greeting", strPtr("first draft"), msg)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected id")
	}

	byName, err := GetSavedMessage(db, "greeting")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	byID, err := GetSavedMessage(db, saved.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byName.ID != saved.ID || byID.Name != "greeting" {
		t.Fatalf("unexpected lookups: %+v %+v", byName, byID)
	}
	if byName.Data.Content != "hello" || types.StringValue(byName.Description) != "first draft" {
		t.Fatalf("unexpected data: %+v", byName)
	}
}

func TestSaveMessageOverwritesByName(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	first, err := SaveMessage(db, "draft", nil, types.Message{Content: "v1"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := SaveMessage(db, "draft", nil, types.Message{Content: "v2"})
	if err != nil {
		t.Fatalf("save again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected id to be kept, got %s and %s", first.ID, second.ID)
	}

	got, err := GetSavedMessage(db, "draft")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Data.Content != "v2" {
		t.Fatalf("expected v2, got %q", got.Data.Content)
	}
}

func TestListSavedMessagesFilter(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	for _, name := range []string{"release-1", "release-2", "welcome"} {
		if _, err := SaveMessage(db, name, nil, types.Message{Content: name}); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	all, err := ListSavedMessages(db, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}

	releases, err := ListSavedMessages(db, "release-*")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(releases) != 2 {
		t.Fatalf("expected 2 releases, got %d", len(releases))
	}
	for _, saved := range releases {
		if saved.Name == "welcome" {
			t.Fatalf("filter leaked %q", saved.Name)
		}
	}

	if _, err := ListSavedMessages(db, "[unclosed"); err == nil {
		t.Fatal("expected invalid glob error")
	}
}

func TestDeleteSavedMessage(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	if _, err := SaveMessage(db, "gone", nil, types.Message{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := DeleteSavedMessage(db, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetSavedMessage(db, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := DeleteSavedMessage(db, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
