package store

import (
	"reflect"
	"testing"

	"github.com/adamavenir/embedg/internal/types"
)

func newRowStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	s.AddComponentRow(types.ComponentRow{ID: 1, Components: []types.Component{}})
	s.AddButton(0, types.Button{ID: 2, Style: types.ButtonStylePrimary, Label: "Click"})
	s.AddSelectMenu(0, types.SelectMenu{ID: 3, Options: []types.SelectMenuOption{}})
	return s
}

func componentIDs(s *Store, row int) []int {
	var ids []int
	for _, c := range s.Message().Components[row].Components {
		ids = append(ids, c.ComponentID())
	}
	return ids
}

func TestWrongTagMutationsAreNoOps(t *testing.T) {
	s := newRowStore(t)
	before := s.Message()

	s.SetButtonStyle(0, 1, types.ButtonStyleDanger)
	s.SetButtonLabel(0, 1, "nope")
	s.SetButtonURL(0, 1, "https://example.com")
	s.SetSelectMenuPlaceholder(0, 0, "nope")
	s.AddSelectMenuOption(0, 0, types.SelectMenuOption{ID: 9, Label: "x"})
	s.ClearSelectMenuOptions(0, 0)

	if !reflect.DeepEqual(before, s.Message()) {
		t.Fatalf("wrong-tag operations changed the document")
	}
}

func TestButtonSetters(t *testing.T) {
	s := newRowStore(t)

	s.SetButtonStyle(0, 0, types.ButtonStyleLink)
	s.SetButtonLabel(0, 0, "Open")
	s.SetButtonURL(0, 0, "https://example.com")

	button := s.GetButton(0, 0)
	if button == nil {
		t.Fatalf("expected button")
	}
	if button.Style != types.ButtonStyleLink || button.Label != "Open" || types.StringValue(button.URL) != "https://example.com" {
		t.Fatalf("unexpected button: %+v", button)
	}
	if s.GetButton(0, 1) != nil {
		t.Fatalf("select menu reported as button")
	}
	if s.GetSelectMenu(0, 0) != nil {
		t.Fatalf("button reported as select menu")
	}
}

func TestGetButtonReturnsCopy(t *testing.T) {
	s := newRowStore(t)
	button := s.GetButton(0, 0)
	button.Label = "mutated"
	if s.GetButton(0, 0).Label != "Click" {
		t.Fatalf("store changed through lookup result")
	}
}

func TestSelectMenuOptions(t *testing.T) {
	s := newRowStore(t)

	s.SetSelectMenuPlaceholder(0, 1, "Pick one")
	s.AddSelectMenuOption(0, 1, types.SelectMenuOption{ID: 10, Label: "a"})
	s.AddSelectMenuOption(0, 1, types.SelectMenuOption{ID: 11, Label: "b"})
	s.MoveSelectMenuOptionDown(0, 1, 0)
	s.SetSelectMenuOptionLabel(0, 1, 0, "B")
	s.DuplicateSelectMenuOption(0, 1, 1)

	menu := s.GetSelectMenu(0, 1)
	if menu == nil || types.StringValue(menu.Placeholder) != "Pick one" {
		t.Fatalf("unexpected menu: %+v", menu)
	}
	if len(menu.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(menu.Options))
	}
	if menu.Options[0].ID != 11 || menu.Options[0].Label != "B" || menu.Options[1].ID != 10 {
		t.Fatalf("unexpected options: %+v", menu.Options)
	}
	if menu.Options[2].Label != "a" || menu.Options[2].ID == 10 || menu.Options[2].ID == 11 {
		t.Fatalf("duplicate should copy label with fresh id: %+v", menu.Options[2])
	}

	s.DeleteSelectMenuOption(0, 1, 0)
	s.MoveSelectMenuOptionUp(0, 1, 0)
	if got := len(s.GetSelectMenu(0, 1).Options); got != 2 {
		t.Fatalf("expected 2 options, got %d", got)
	}
	s.ClearSelectMenuOptions(0, 1)
	if got := len(s.GetSelectMenu(0, 1).Options); got != 0 {
		t.Fatalf("expected no options, got %d", got)
	}
}

func TestComponentListOps(t *testing.T) {
	s := newRowStore(t)

	s.MoveButtonDown(0, 0)
	if got := componentIDs(s, 0); !reflect.DeepEqual(got, []int{3, 2}) {
		t.Fatalf("expected [3 2], got %v", got)
	}
	s.MoveButtonUp(0, 1)
	if got := componentIDs(s, 0); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("expected [2 3], got %v", got)
	}

	s.DuplicateButton(0, 1)
	ids := componentIDs(s, 0)
	if len(ids) != 3 || ids[2] == 3 || ids[2] == 2 {
		t.Fatalf("unexpected ids after duplicate: %v", ids)
	}
	if _, ok := s.Message().Components[0].Components[2].(*types.SelectMenu); !ok {
		t.Fatalf("duplicate should keep the component kind")
	}

	s.DeleteButton(0, 0)
	if got := componentIDs(s, 0); len(got) != 2 || got[0] != 3 {
		t.Fatalf("unexpected ids after delete: %v", got)
	}

	s.ClearButtons(0)
	if got := len(s.Message().Components[0].Components); got != 0 {
		t.Fatalf("expected empty row, got %d", got)
	}
}

func TestComponentRowOps(t *testing.T) {
	s := newRowStore(t)

	s.DuplicateComponentRow(0)
	msg := s.Message()
	if len(msg.Components) != 2 || msg.Components[1].ID == msg.Components[0].ID {
		t.Fatalf("unexpected rows: %+v", msg.Components)
	}

	s.AddComponentRow(types.ComponentRow{ID: 50})
	s.MoveComponentRowUp(2)
	if got := s.Message().Components[1].ID; got != 50 {
		t.Fatalf("expected row 50 at index 1, got %d", got)
	}

	s.DeleteComponentRow(1)
	s.MoveComponentRowDown(1)
	if got := len(s.Message().Components); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}

	s.ClearComponentRows()
	if got := len(s.Message().Components); got != 0 {
		t.Fatalf("expected no rows, got %d", got)
	}
}
