package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/auth"
	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

// LedgerService implements the LedgerService RPCs: ledgers, their families
// and expenses, and snapshot import/export.
type LedgerService struct {
	store         storage.Store
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	logger        *slog.Logger
}

// NewLedgerService creates a ledger service. tokens may be nil, in which case
// ledgers cannot be protected with a passcode.
func NewLedgerService(store storage.Store, authenticator auth.Authenticator, tokens *auth.JWTManager, logger *slog.Logger) *LedgerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{
		store:         store,
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// CreateLedger creates a ledger. With a passcode, the ledger is protected and
// the response carries a token for it.
func (s *LedgerService) CreateLedger(ctx context.Context, req *connect.Request[CreateLedgerRequest]) (*connect.Response[CreateLedgerResponse], error) {
	ledger := &models.Ledger{Name: strings.TrimSpace(req.Msg.Name)}

	if req.Msg.Passcode != "" {
		if s.tokens == nil {
			return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("passcode protection is disabled on this server"))
		}
		hash, err := s.authenticator.Protect(req.Msg.Passcode)
		if err != nil {
			if errors.Is(err, auth.ErrWeakPasscode) {
				return nil, connect.NewError(connect.CodeInvalidArgument, err)
			}
			s.logger.Error("Failed to protect ledger", "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		ledger.PasscodeHash = hash
	}

	if err := s.store.CreateLedger(ctx, ledger); err != nil {
		return nil, storageError("create ledger", err)
	}

	resp := &CreateLedgerResponse{Ledger: toLedger(ledger)}
	if err := s.issueToken(ledger, &resp.Token, &resp.ExpiresAt); err != nil {
		return nil, err
	}

	s.logger.Info("Ledger created", "ledger_id", ledger.ID, "name", ledger.Name, "protected", ledger.Protected())
	return connect.NewResponse(resp), nil
}

// OpenLedger checks the passcode of a ledger and returns an access token.
func (s *LedgerService) OpenLedger(ctx context.Context, req *connect.Request[OpenLedgerRequest]) (*connect.Response[OpenLedgerResponse], error) {
	if req.Msg.LedgerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingLedgerID)
	}

	ledger, err := s.authenticator.Authenticate(ctx, req.Msg.LedgerID, req.Msg.Passcode)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPasscode) {
			s.logger.Warn("Open ledger failed", "ledger_id", req.Msg.LedgerID, "error", err)
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, storageError("open ledger", err)
	}

	resp := &OpenLedgerResponse{Ledger: toLedger(ledger)}
	if err := s.issueToken(ledger, &resp.Token, &resp.ExpiresAt); err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

func (s *LedgerService) issueToken(ledger *models.Ledger, token *string, expiresAt *int64) error {
	if s.tokens == nil {
		return nil
	}
	t, exp, err := s.tokens.Generate(ledger)
	if err != nil {
		s.logger.Error("Failed to generate token", "ledger_id", ledger.ID, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	*token, *expiresAt = t, exp.Unix()
	return nil
}

// GetLedger returns a single ledger.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	ledger, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&GetLedgerResponse{Ledger: toLedger(ledger)}), nil
}

// ListLedgers returns every ledger, newest first. Protected ledgers are
// listed too; only their contents need a token.
func (s *LedgerService) ListLedgers(ctx context.Context, req *connect.Request[ListLedgersRequest]) (*connect.Response[ListLedgersResponse], error) {
	ledgers, err := s.store.ListLedgers(ctx)
	if err != nil {
		return nil, storageError("list ledgers", err)
	}

	out := make([]*Ledger, len(ledgers))
	for i, l := range ledgers {
		out[i] = toLedger(l)
	}
	return connect.NewResponse(&ListLedgersResponse{Ledgers: out}), nil
}

// DeleteLedger removes a ledger with all of its records.
func (s *LedgerService) DeleteLedger(ctx context.Context, req *connect.Request[DeleteLedgerRequest]) (*connect.Response[DeleteLedgerResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteLedger(ctx, req.Msg.LedgerID); err != nil {
		return nil, storageError("delete ledger", err)
	}

	s.logger.Info("Ledger deleted", "ledger_id", req.Msg.LedgerID)
	return connect.NewResponse(&DeleteLedgerResponse{}), nil
}

// ExportSnapshot returns the ledger's families and expenses in the
// import/export JSON shape.
func (s *LedgerService) ExportSnapshot(ctx context.Context, req *connect.Request[ExportSnapshotRequest]) (*connect.Response[ExportSnapshotResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	snapshot, err := s.store.GetSnapshot(ctx, req.Msg.LedgerID)
	if err != nil {
		return nil, storageError("export snapshot", err)
	}
	return connect.NewResponse(&ExportSnapshotResponse{Snapshot: snapshot}), nil
}

// ImportSnapshot replaces the ledger's records with the given snapshot.
// Families are validated like AddFamily; expenses are taken as they come so
// that amounts the engine treats as zero survive a round trip.
func (s *LedgerService) ImportSnapshot(ctx context.Context, req *connect.Request[ImportSnapshotRequest]) (*connect.Response[ImportSnapshotResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	if len(req.Msg.Snapshot) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("snapshot is required"))
	}

	snapshot, err := models.DecodeSnapshot(bytes.NewReader(req.Msg.Snapshot))
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	for i := range snapshot.Families {
		f := &snapshot.Families[i]
		name, err := validateFamily(f.Name, f.Members)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("family %d: %w", i+1, errors.Unwrap(err)))
		}
		f.Name = name
	}

	if err := s.store.ReplaceSnapshot(ctx, req.Msg.LedgerID, snapshot); err != nil {
		return nil, storageError("import snapshot", err)
	}

	s.logger.Info("Snapshot imported",
		"ledger_id", req.Msg.LedgerID,
		"families", len(snapshot.Families),
		"expenses", len(snapshot.Expenses),
	)
	return connect.NewResponse(&ImportSnapshotResponse{
		Families: len(snapshot.Families),
		Expenses: len(snapshot.Expenses),
	}), nil
}
