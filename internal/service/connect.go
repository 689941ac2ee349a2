package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService.
	LedgerServiceName = "costshare.v1.LedgerService"
	// SettlementServiceName is the fully-qualified name of the SettlementService.
	SettlementServiceName = "costshare.v1.SettlementService"
)

// Procedure paths, in the form Connect routes them: /<service>/<method>.
const (
	LedgerServiceCreateLedgerProcedure      = "/" + LedgerServiceName + "/CreateLedger"
	LedgerServiceOpenLedgerProcedure        = "/" + LedgerServiceName + "/OpenLedger"
	LedgerServiceGetLedgerProcedure         = "/" + LedgerServiceName + "/GetLedger"
	LedgerServiceListLedgersProcedure       = "/" + LedgerServiceName + "/ListLedgers"
	LedgerServiceDeleteLedgerProcedure      = "/" + LedgerServiceName + "/DeleteLedger"
	LedgerServiceAddFamilyProcedure         = "/" + LedgerServiceName + "/AddFamily"
	LedgerServiceUpdateFamilyProcedure      = "/" + LedgerServiceName + "/UpdateFamily"
	LedgerServiceDeleteFamilyProcedure      = "/" + LedgerServiceName + "/DeleteFamily"
	LedgerServiceListFamiliesProcedure      = "/" + LedgerServiceName + "/ListFamilies"
	LedgerServiceAddExpenseProcedure        = "/" + LedgerServiceName + "/AddExpense"
	LedgerServiceUpdateExpenseProcedure     = "/" + LedgerServiceName + "/UpdateExpense"
	LedgerServiceDeleteExpenseProcedure     = "/" + LedgerServiceName + "/DeleteExpense"
	LedgerServiceListExpensesProcedure      = "/" + LedgerServiceName + "/ListExpenses"
	LedgerServiceExportSnapshotProcedure    = "/" + LedgerServiceName + "/ExportSnapshot"
	LedgerServiceImportSnapshotProcedure    = "/" + LedgerServiceName + "/ImportSnapshot"
	SettlementServiceGetSettlementProcedure = "/" + SettlementServiceName + "/GetSettlement"
	SettlementServiceCalculateProcedure     = "/" + SettlementServiceName + "/Calculate"
)

// NewLedgerServiceHandler builds an HTTP handler serving every LedgerService
// procedure. It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceCreateLedgerProcedure, connect.NewUnaryHandler(LedgerServiceCreateLedgerProcedure, svc.CreateLedger, opts...))
	mux.Handle(LedgerServiceOpenLedgerProcedure, connect.NewUnaryHandler(LedgerServiceOpenLedgerProcedure, svc.OpenLedger, opts...))
	mux.Handle(LedgerServiceGetLedgerProcedure, connect.NewUnaryHandler(LedgerServiceGetLedgerProcedure, svc.GetLedger, opts...))
	mux.Handle(LedgerServiceListLedgersProcedure, connect.NewUnaryHandler(LedgerServiceListLedgersProcedure, svc.ListLedgers, opts...))
	mux.Handle(LedgerServiceDeleteLedgerProcedure, connect.NewUnaryHandler(LedgerServiceDeleteLedgerProcedure, svc.DeleteLedger, opts...))
	mux.Handle(LedgerServiceAddFamilyProcedure, connect.NewUnaryHandler(LedgerServiceAddFamilyProcedure, svc.AddFamily, opts...))
	mux.Handle(LedgerServiceUpdateFamilyProcedure, connect.NewUnaryHandler(LedgerServiceUpdateFamilyProcedure, svc.UpdateFamily, opts...))
	mux.Handle(LedgerServiceDeleteFamilyProcedure, connect.NewUnaryHandler(LedgerServiceDeleteFamilyProcedure, svc.DeleteFamily, opts...))
	mux.Handle(LedgerServiceListFamiliesProcedure, connect.NewUnaryHandler(LedgerServiceListFamiliesProcedure, svc.ListFamilies, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure, connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceUpdateExpenseProcedure, connect.NewUnaryHandler(LedgerServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...))
	mux.Handle(LedgerServiceDeleteExpenseProcedure, connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure, connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(LedgerServiceExportSnapshotProcedure, connect.NewUnaryHandler(LedgerServiceExportSnapshotProcedure, svc.ExportSnapshot, opts...))
	mux.Handle(LedgerServiceImportSnapshotProcedure, connect.NewUnaryHandler(LedgerServiceImportSnapshotProcedure, svc.ImportSnapshot, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// NewSettlementServiceHandler builds an HTTP handler serving every
// SettlementService procedure.
func NewSettlementServiceHandler(svc *SettlementService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(SettlementServiceGetSettlementProcedure, connect.NewUnaryHandler(SettlementServiceGetSettlementProcedure, svc.GetSettlement, opts...))
	mux.Handle(SettlementServiceCalculateProcedure, connect.NewUnaryHandler(SettlementServiceCalculateProcedure, svc.Calculate, opts...))
	return "/" + SettlementServiceName + "/", mux
}

// LedgerServiceClient calls a remote LedgerService.
type LedgerServiceClient struct {
	createLedger   *connect.Client[CreateLedgerRequest, CreateLedgerResponse]
	openLedger     *connect.Client[OpenLedgerRequest, OpenLedgerResponse]
	getLedger      *connect.Client[GetLedgerRequest, GetLedgerResponse]
	listLedgers    *connect.Client[ListLedgersRequest, ListLedgersResponse]
	deleteLedger   *connect.Client[DeleteLedgerRequest, DeleteLedgerResponse]
	addFamily      *connect.Client[AddFamilyRequest, AddFamilyResponse]
	updateFamily   *connect.Client[UpdateFamilyRequest, UpdateFamilyResponse]
	deleteFamily   *connect.Client[DeleteFamilyRequest, DeleteFamilyResponse]
	listFamilies   *connect.Client[ListFamiliesRequest, ListFamiliesResponse]
	addExpense     *connect.Client[AddExpenseRequest, AddExpenseResponse]
	updateExpense  *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense  *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses   *connect.Client[ListExpensesRequest, ListExpensesResponse]
	exportSnapshot *connect.Client[ExportSnapshotRequest, ExportSnapshotResponse]
	importSnapshot *connect.Client[ImportSnapshotRequest, ImportSnapshotResponse]
}

// NewLedgerServiceClient creates a client for the LedgerService at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &LedgerServiceClient{
		createLedger:   connect.NewClient[CreateLedgerRequest, CreateLedgerResponse](httpClient, baseURL+LedgerServiceCreateLedgerProcedure, opts...),
		openLedger:     connect.NewClient[OpenLedgerRequest, OpenLedgerResponse](httpClient, baseURL+LedgerServiceOpenLedgerProcedure, opts...),
		getLedger:      connect.NewClient[GetLedgerRequest, GetLedgerResponse](httpClient, baseURL+LedgerServiceGetLedgerProcedure, opts...),
		listLedgers:    connect.NewClient[ListLedgersRequest, ListLedgersResponse](httpClient, baseURL+LedgerServiceListLedgersProcedure, opts...),
		deleteLedger:   connect.NewClient[DeleteLedgerRequest, DeleteLedgerResponse](httpClient, baseURL+LedgerServiceDeleteLedgerProcedure, opts...),
		addFamily:      connect.NewClient[AddFamilyRequest, AddFamilyResponse](httpClient, baseURL+LedgerServiceAddFamilyProcedure, opts...),
		updateFamily:   connect.NewClient[UpdateFamilyRequest, UpdateFamilyResponse](httpClient, baseURL+LedgerServiceUpdateFamilyProcedure, opts...),
		deleteFamily:   connect.NewClient[DeleteFamilyRequest, DeleteFamilyResponse](httpClient, baseURL+LedgerServiceDeleteFamilyProcedure, opts...),
		listFamilies:   connect.NewClient[ListFamiliesRequest, ListFamiliesResponse](httpClient, baseURL+LedgerServiceListFamiliesProcedure, opts...),
		addExpense:     connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		updateExpense:  connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+LedgerServiceUpdateExpenseProcedure, opts...),
		deleteExpense:  connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		listExpenses:   connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		exportSnapshot: connect.NewClient[ExportSnapshotRequest, ExportSnapshotResponse](httpClient, baseURL+LedgerServiceExportSnapshotProcedure, opts...),
		importSnapshot: connect.NewClient[ImportSnapshotRequest, ImportSnapshotResponse](httpClient, baseURL+LedgerServiceImportSnapshotProcedure, opts...),
	}
}

func (c *LedgerServiceClient) CreateLedger(ctx context.Context, req *connect.Request[CreateLedgerRequest]) (*connect.Response[CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) OpenLedger(ctx context.Context, req *connect.Request[OpenLedgerRequest]) (*connect.Response[OpenLedgerResponse], error) {
	return c.openLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListLedgers(ctx context.Context, req *connect.Request[ListLedgersRequest]) (*connect.Response[ListLedgersResponse], error) {
	return c.listLedgers.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteLedger(ctx context.Context, req *connect.Request[DeleteLedgerRequest]) (*connect.Response[DeleteLedgerResponse], error) {
	return c.deleteLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddFamily(ctx context.Context, req *connect.Request[AddFamilyRequest]) (*connect.Response[AddFamilyResponse], error) {
	return c.addFamily.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) UpdateFamily(ctx context.Context, req *connect.Request[UpdateFamilyRequest]) (*connect.Response[UpdateFamilyResponse], error) {
	return c.updateFamily.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteFamily(ctx context.Context, req *connect.Request[DeleteFamilyRequest]) (*connect.Response[DeleteFamilyResponse], error) {
	return c.deleteFamily.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListFamilies(ctx context.Context, req *connect.Request[ListFamiliesRequest]) (*connect.Response[ListFamiliesResponse], error) {
	return c.listFamilies.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ExportSnapshot(ctx context.Context, req *connect.Request[ExportSnapshotRequest]) (*connect.Response[ExportSnapshotResponse], error) {
	return c.exportSnapshot.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ImportSnapshot(ctx context.Context, req *connect.Request[ImportSnapshotRequest]) (*connect.Response[ImportSnapshotResponse], error) {
	return c.importSnapshot.CallUnary(ctx, req)
}

// SettlementServiceClient calls a remote SettlementService.
type SettlementServiceClient struct {
	getSettlement *connect.Client[GetSettlementRequest, GetSettlementResponse]
	calculate     *connect.Client[CalculateRequest, CalculateResponse]
}

// NewSettlementServiceClient creates a client for the SettlementService at baseURL.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &SettlementServiceClient{
		getSettlement: connect.NewClient[GetSettlementRequest, GetSettlementResponse](httpClient, baseURL+SettlementServiceGetSettlementProcedure, opts...),
		calculate:     connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+SettlementServiceCalculateProcedure, opts...),
	}
}

func (c *SettlementServiceClient) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}
