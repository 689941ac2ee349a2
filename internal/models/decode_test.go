package models

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeSnapshot(t *testing.T) {
	input := `{
		"families": [
			{"id": 1700000000001, "name": "A", "members": 2},
			{"id": "b", "name": "B", "members": "3"},
			{"id": 3, "name": "C", "members": "many"}
		],
		"expenses": [
			{"id": 1, "familyId": 1700000000001, "familyName": "A", "item": "x", "amount": 1000},
			{"id": 2, "familyId": "b", "familyName": "B", "item": "y", "amount": "250.5"},
			{"id": 3, "familyId": "b", "familyName": "B", "item": "z", "amount": "oops"},
			{"id": 4, "familyId": "b", "familyName": "B", "item": "w", "amount": null}
		]
	}`

	snapshot, err := DecodeSnapshot(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}

	if len(snapshot.Families) != 3 || len(snapshot.Expenses) != 4 {
		t.Fatalf("got %d families, %d expenses", len(snapshot.Families), len(snapshot.Expenses))
	}
	if snapshot.Families[0].ID != "1700000000001" {
		t.Errorf("numeric id = %q", snapshot.Families[0].ID)
	}
	if snapshot.Families[1].Members != 3 {
		t.Errorf("string members = %d, want 3", snapshot.Families[1].Members)
	}
	if snapshot.Families[2].Members != 0 {
		t.Errorf("non-numeric members = %d, want 0", snapshot.Families[2].Members)
	}
	if snapshot.Expenses[0].FamilyID != "1700000000001" {
		t.Errorf("familyId = %q", snapshot.Expenses[0].FamilyID)
	}

	wantAmounts := []float64{1000, 250.5, 0, 0}
	for i, want := range wantAmounts {
		if snapshot.Expenses[i].Amount != want {
			t.Errorf("expense %d amount = %v, want %v", i, snapshot.Expenses[i].Amount, want)
		}
		if snapshot.Expenses[i].Position != i {
			t.Errorf("expense %d position = %d", i, snapshot.Expenses[i].Position)
		}
	}
}

func TestDecodeSnapshotRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeSnapshot(strings.NewReader(`{"families": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := DecodeSnapshot(strings.NewReader(`{"families": [{"id": true}]}`)); err == nil {
		t.Error("expected error for boolean id")
	}
}

func TestEncodeDecodeSnapshot(t *testing.T) {
	original := &Snapshot{
		Families: []Family{{ID: "f1", Name: "Karimi", Members: 4}},
		Expenses: []Expense{{ID: "e1", FamilyID: "f1", FamilyName: "Karimi", Item: "Saffron", Amount: 1250000}},
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, original); err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"familyId": "f1"`) {
		t.Errorf("unexpected encoding: %s", buf.String())
	}

	decoded, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if decoded.FamilyByID("f1") == nil || decoded.Expenses[0].Amount != 1250000 {
		t.Errorf("unexpected decoded snapshot: %+v", decoded)
	}
}
