package entities

import (
	"encoding/json"
	"testing"
)

func TestSelectionList_Format(t *testing.T) {
	l := SelectionList{{Category: "A", Option: "x"}, {Category: "B", Option: "y"}}
	if got := l.Format(); got != "A: x; B: y" {
		t.Fatalf("unexpected format %q", got)
	}
	if got := SelectionList(nil).Format(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSelectionList_JSONKeepsOrder(t *testing.T) {
	var l SelectionList
	if err := json.Unmarshal([]byte(`{"ZETA":"z","ALPHA":"a","MID":"m"}`), &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Format(); got != "ZETA: z; ALPHA: a; MID: m" {
		t.Fatalf("order not kept: %q", got)
	}

	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"ZETA":"z","ALPHA":"a","MID":"m"}` {
		t.Fatalf("unexpected encoding %s", b)
	}
}

func TestSelectionList_UnmarshalEdgeCases(t *testing.T) {
	var l SelectionList
	if err := json.Unmarshal([]byte(`null`), &l); err != nil || l != nil {
		t.Fatalf("expected nil list, got %v %v", l, err)
	}

	if err := json.Unmarshal([]byte(`{"A":3,"B":{"k":1}}`), &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Format(); got != `A: 3; B: {"k":1}` {
		t.Fatalf("unexpected raw values %q", got)
	}

	if err := json.Unmarshal([]byte(`["A"]`), &l); err == nil {
		t.Fatalf("expected error for array input")
	}
}

func TestSelectionSet_Select(t *testing.T) {
	var d QuoteDraft
	d.Select(CategoryAVR, "MARANTZ CINEMA 50")
	if d.Selections[CategoryAVR] != "MARANTZ CINEMA 50" {
		t.Fatalf("selection not recorded: %+v", d.Selections)
	}
	d.Select(CategoryAVR, "")
	if _, ok := d.Selections[CategoryAVR]; ok {
		t.Fatalf("empty option must clear the entry")
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("") != nil {
		t.Fatalf("expected nil for empty string")
	}
	if v := OptionalString("a"); v == nil || *v != "a" {
		t.Fatalf("unexpected pointer %v", v)
	}
	if StringOrEmpty(nil) != "" || StringOrEmpty(OptionalString("b")) != "b" {
		t.Fatalf("unexpected StringOrEmpty result")
	}
}
