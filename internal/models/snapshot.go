package models

// Snapshot is the complete input of one settlement computation: the ordered
// families and expenses of a ledger. It doubles as the import/export format.
type Snapshot struct {
	Families []Family  `json:"families"`
	Expenses []Expense `json:"expenses"`
}

// FamilyByID returns the family with the given ID, or nil.
func (s *Snapshot) FamilyByID(id string) *Family {
	for i := range s.Families {
		if s.Families[i].ID == id {
			return &s.Families[i]
		}
	}
	return nil
}
