package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DecodeSnapshot reads a snapshot as written by browser clients. Those store
// IDs as numbers and may carry amounts or member counts as strings, so IDs
// accept either form and numeric fields that fail to parse become 0 instead
// of failing the whole import.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var raw struct {
		Families []struct {
			ID      looseID     `json:"id"`
			Name    string      `json:"name"`
			Members looseNumber `json:"members"`
		} `json:"families"`
		Expenses []struct {
			ID         looseID     `json:"id"`
			FamilyID   looseID     `json:"familyId"`
			FamilyName string      `json:"familyName"`
			Item       string      `json:"item"`
			Amount     looseNumber `json:"amount"`
		} `json:"expenses"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snapshot := &Snapshot{
		Families: make([]Family, 0, len(raw.Families)),
		Expenses: make([]Expense, 0, len(raw.Expenses)),
	}
	for i, f := range raw.Families {
		snapshot.Families = append(snapshot.Families, Family{
			ID:       string(f.ID),
			Name:     f.Name,
			Members:  int(math.Trunc(float64(f.Members))),
			Position: i,
		})
	}
	for i, e := range raw.Expenses {
		snapshot.Expenses = append(snapshot.Expenses, Expense{
			ID:         string(e.ID),
			FamilyID:   string(e.FamilyID),
			FamilyName: e.FamilyName,
			Item:       e.Item,
			Amount:     float64(e.Amount),
			Position:   i,
		})
	}
	return snapshot, nil
}

// EncodeSnapshot writes a snapshot in the format DecodeSnapshot reads.
func EncodeSnapshot(w io.Writer, snapshot *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

type looseID string

func (id *looseID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = looseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = looseID(n.String())
	return nil
}

type looseNumber float64

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	*n = 0

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = looseNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			*n = looseNumber(v)
		}
	}
	return nil
}
