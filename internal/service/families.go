package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/models"
)

// AddFamily appends a family to a ledger.
func (s *LedgerService) AddFamily(ctx context.Context, req *connect.Request[AddFamilyRequest]) (*connect.Response[AddFamilyResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	name, err := validateFamily(req.Msg.Name, req.Msg.Members)
	if err != nil {
		return nil, err
	}

	family := &models.Family{
		LedgerID: req.Msg.LedgerID,
		Name:     name,
		Members:  req.Msg.Members,
	}
	if err := s.store.CreateFamily(ctx, family); err != nil {
		return nil, storageError("add family", err)
	}

	s.logger.Debug("Family added", "ledger_id", family.LedgerID, "family_id", family.ID, "members", family.Members)
	return connect.NewResponse(&AddFamilyResponse{Family: toFamily(*family)}), nil
}

// UpdateFamily renames a family or changes its member count. Expenses paid by
// the family pick up the new name.
func (s *LedgerService) UpdateFamily(ctx context.Context, req *connect.Request[UpdateFamilyRequest]) (*connect.Response[UpdateFamilyResponse], error) {
	family, err := s.ledgerFamily(ctx, req.Msg.LedgerID, req.Msg.FamilyID)
	if err != nil {
		return nil, err
	}
	name, err := validateFamily(req.Msg.Name, req.Msg.Members)
	if err != nil {
		return nil, err
	}

	family.Name, family.Members = name, req.Msg.Members
	if err := s.store.UpdateFamily(ctx, family); err != nil {
		return nil, storageError("update family", err)
	}
	return connect.NewResponse(&UpdateFamilyResponse{Family: toFamily(*family)}), nil
}

// DeleteFamily removes a family. Its expenses stay in the ledger and show up
// as unassigned payments in the settlement report.
func (s *LedgerService) DeleteFamily(ctx context.Context, req *connect.Request[DeleteFamilyRequest]) (*connect.Response[DeleteFamilyResponse], error) {
	family, err := s.ledgerFamily(ctx, req.Msg.LedgerID, req.Msg.FamilyID)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteFamily(ctx, family.ID); err != nil {
		return nil, storageError("delete family", err)
	}

	s.logger.Info("Family deleted", "ledger_id", family.LedgerID, "family_id", family.ID)
	return connect.NewResponse(&DeleteFamilyResponse{}), nil
}

// ListFamilies returns the families of a ledger in the order they were added.
func (s *LedgerService) ListFamilies(ctx context.Context, req *connect.Request[ListFamiliesRequest]) (*connect.Response[ListFamiliesResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	families, err := s.store.ListFamilies(ctx, req.Msg.LedgerID)
	if err != nil {
		return nil, storageError("list families", err)
	}

	out := make([]*Family, len(families))
	for i, f := range families {
		out[i] = toFamily(f)
	}
	return connect.NewResponse(&ListFamiliesResponse{Families: out}), nil
}

// ledgerFamily loads a family after checking access to its ledger.
func (s *LedgerService) ledgerFamily(ctx context.Context, ledgerID, familyID string) (*models.Family, error) {
	if _, err := authorizeLedger(ctx, s.store, ledgerID); err != nil {
		return nil, err
	}
	return s.findFamily(ctx, ledgerID, familyID)
}

// findFamily loads a family of an already authorized ledger. A family of
// another ledger is reported as not found.
func (s *LedgerService) findFamily(ctx context.Context, ledgerID, familyID string) (*models.Family, error) {
	family, err := s.store.GetFamily(ctx, familyID)
	if err != nil {
		return nil, storageError("get family", err)
	}
	if family.LedgerID != ledgerID {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("family %s not found in ledger %s", familyID, ledgerID))
	}
	return family, nil
}
