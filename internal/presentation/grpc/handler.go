package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
	"github.com/credora/credit-analysis-service/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// actorFromContext extracts the authenticated analyst's ID from JWT claims.
func actorFromContext(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "authentication required")
	}
	return claims.UserID.String(), nil
}

// statusFromError maps application errors to gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, "record not found")
	case errors.Is(err, usecase.ErrClientAlreadyRegistered):
		return status.Error(codes.AlreadyExists, "client already registered")
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, "analysis is already decided")
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, "concurrent update, retry")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// Compile-time assertion that AnalysisHandler implements CreditAnalysisServiceServer.
var _ CreditAnalysisServiceServer = (*AnalysisHandler)(nil)

// AnalysisHandler implements the gRPC CreditAnalysisServiceServer interface.
type AnalysisHandler struct {
	UnimplementedCreditAnalysisServiceServer
	registerClient *usecase.RegisterClientUseCase
	getClient      *usecase.GetClientUseCase
	submit         *usecase.SubmitAnalysisUseCase
	getAnalysis    *usecase.GetAnalysisUseCase
	listAnalyses   *usecase.ListClientAnalysesUseCase
	decide         *usecase.DecideAnalysisUseCase
	reevaluate     *usecase.ReevaluateAnalysisUseCase
	attachDocument *usecase.AttachDocumentUseCase
	quote          *usecase.QuoteLoanUseCase
}

// NewAnalysisHandler creates a new handler with all use-case dependencies.
func NewAnalysisHandler(
	registerClient *usecase.RegisterClientUseCase,
	getClient *usecase.GetClientUseCase,
	submit *usecase.SubmitAnalysisUseCase,
	getAnalysis *usecase.GetAnalysisUseCase,
	listAnalyses *usecase.ListClientAnalysesUseCase,
	decide *usecase.DecideAnalysisUseCase,
	reevaluate *usecase.ReevaluateAnalysisUseCase,
	attachDocument *usecase.AttachDocumentUseCase,
	quote *usecase.QuoteLoanUseCase,
) *AnalysisHandler {
	return &AnalysisHandler{
		registerClient: registerClient,
		getClient:      getClient,
		submit:         submit,
		getAnalysis:    getAnalysis,
		listAnalyses:   listAnalyses,
		decide:         decide,
		reevaluate:     reevaluate,
		attachDocument: attachDocument,
		quote:          quote,
	}
}

// Proto-aligned request/response message types.

// FinancialsMsg represents the proto ApplicantFinancials message.
// Monetary amounts travel as decimal strings.
type FinancialsMsg struct {
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
	CurrentDebt     string `json:"current_debt"`
	RequestedAmount string `json:"requested_amount"`
	AnnualRatePct   string `json:"annual_rate_pct"`
	TermMonths      int    `json:"term_months"`
}

// ClientMsg represents the proto Client message.
type ClientMsg struct {
	ID                   string `json:"id"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	FirstNames           string `json:"first_names"`
	LastNames            string `json:"last_names"`
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	MonthlyIncome        string `json:"monthly_income"`
	RegisteredAt         string `json:"registered_at"`
}

// AnalysisMsg represents the proto CreditAnalysis message.
type AnalysisMsg struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"client_id"`
	AnalystID        string         `json:"analyst_id"`
	CreditType       string         `json:"credit_type"`
	Status           string         `json:"status"`
	Score            *int           `json:"score,omitempty"`
	RiskTier         string         `json:"risk_tier,omitempty"`
	EstimatedPayment string         `json:"estimated_payment"`
	Capacity         string         `json:"capacity"`
	Recommended      bool           `json:"recommended"`
	Financials       *FinancialsMsg `json:"financials"`
	DecidedBy        string         `json:"decided_by,omitempty"`
	DecisionComment  string         `json:"decision_comment,omitempty"`
	DecidedAt        string         `json:"decided_at,omitempty"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// DocumentMsg represents the proto AnalysisDocument message.
type DocumentMsg struct {
	ID         string `json:"id"`
	AnalysisID string `json:"analysis_id"`
	Type       string `json:"document_type"`
	StorageKey string `json:"storage_key"`
	Notes      string `json:"notes,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

// RegisterClientRequest represents the proto RegisterClientRequest message.
type RegisterClientRequest struct {
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	FirstNames           string `json:"first_names"`
	LastNames            string `json:"last_names"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	MonthlyIncome        string `json:"monthly_income"`
}

// RegisterClientResponse represents the proto RegisterClientResponse message.
type RegisterClientResponse struct {
	Client *ClientMsg `json:"client"`
}

// GetClientRequest represents the proto GetClientRequest message.
type GetClientRequest struct {
	ID string `json:"id"`
}

// GetClientResponse represents the proto GetClientResponse message.
type GetClientResponse struct {
	Client *ClientMsg `json:"client"`
}

// SubmitAnalysisRequest represents the proto SubmitAnalysisRequest message.
type SubmitAnalysisRequest struct {
	ClientID   string         `json:"client_id"`
	CreditType string         `json:"credit_type"`
	Financials *FinancialsMsg `json:"financials"`
}

// SubmitAnalysisResponse represents the proto SubmitAnalysisResponse message.
type SubmitAnalysisResponse struct {
	Analysis *AnalysisMsg `json:"analysis"`
}

// GetAnalysisRequest represents the proto GetAnalysisRequest message.
type GetAnalysisRequest struct {
	ID string `json:"id"`
}

// GetAnalysisResponse represents the proto GetAnalysisResponse message.
type GetAnalysisResponse struct {
	Analysis *AnalysisMsg `json:"analysis"`
}

// ListClientAnalysesRequest represents the proto ListClientAnalysesRequest message.
type ListClientAnalysesRequest struct {
	ClientID string `json:"client_id"`
}

// ListClientAnalysesResponse represents the proto ListClientAnalysesResponse message.
type ListClientAnalysesResponse struct {
	Analyses []*AnalysisMsg `json:"analyses"`
}

// DecideAnalysisRequest represents the proto DecideAnalysisRequest message.
type DecideAnalysisRequest struct {
	AnalysisID string `json:"analysis_id"`
	Action     string `json:"action"`
	Comment    string `json:"comment"`
}

// DecideAnalysisResponse represents the proto DecideAnalysisResponse message.
type DecideAnalysisResponse struct {
	Analysis *AnalysisMsg `json:"analysis"`
}

// ReevaluateAnalysisRequest represents the proto ReevaluateAnalysisRequest message.
type ReevaluateAnalysisRequest struct {
	AnalysisID string         `json:"analysis_id"`
	Financials *FinancialsMsg `json:"financials"`
}

// ReevaluateAnalysisResponse represents the proto ReevaluateAnalysisResponse message.
type ReevaluateAnalysisResponse struct {
	Analysis *AnalysisMsg `json:"analysis"`
}

// AttachDocumentRequest represents the proto AttachDocumentRequest message.
type AttachDocumentRequest struct {
	AnalysisID   string `json:"analysis_id"`
	DocumentType string `json:"document_type"`
	StorageKey   string `json:"storage_key"`
	Notes        string `json:"notes"`
}

// AttachDocumentResponse represents the proto AttachDocumentResponse message.
type AttachDocumentResponse struct {
	Document *DocumentMsg `json:"document"`
}

// QuoteLoanRequest represents the proto QuoteLoanRequest message.
type QuoteLoanRequest struct {
	Financials      *FinancialsMsg `json:"financials"`
	IncludeSchedule bool           `json:"include_schedule"`
}

// ScheduleEntryMsg represents the proto AmortizationEntry message.
type ScheduleEntryMsg struct {
	Period           int    `json:"period"`
	DueDate          string `json:"due_date"`
	Principal        string `json:"principal"`
	Interest         string `json:"interest"`
	Total            string `json:"total"`
	RemainingBalance string `json:"remaining_balance"`
}

// QuoteLoanResponse represents the proto QuoteLoanResponse message.
type QuoteLoanResponse struct {
	Score          int                 `json:"score"`
	RiskTier       string              `json:"risk_tier"`
	MonthlyPayment string              `json:"monthly_payment"`
	Capacity       string              `json:"capacity"`
	Recommended    bool                `json:"recommended"`
	Schedule       []*ScheduleEntryMsg `json:"schedule,omitempty"`
}

// RegisterClient handles the gRPC request to register a new client.
func (h *AnalysisHandler) RegisterClient(ctx context.Context, req *RegisterClientRequest) (*RegisterClientResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_income: %v", err)
	}

	resp, err := h.registerClient.Execute(ctx, dto.RegisterClientRequest{
		IdentificationType:   req.IdentificationType,
		IdentificationNumber: req.IdentificationNumber,
		FirstNames:           req.FirstNames,
		LastNames:            req.LastNames,
		Email:                req.Email,
		Phone:                req.Phone,
		Address:              req.Address,
		MonthlyIncome:        income,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RegisterClientResponse{Client: clientMsgFrom(resp)}, nil
}

// GetClient handles the gRPC request to retrieve a client record.
func (h *AnalysisHandler) GetClient(ctx context.Context, req *GetClientRequest) (*GetClientResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAuditor); err != nil {
		return nil, err
	}
	if req == nil || req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	resp, err := h.getClient.Execute(ctx, req.ID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &GetClientResponse{Client: clientMsgFrom(resp)}, nil
}

// SubmitAnalysis handles the gRPC request to open a new credit analysis.
func (h *AnalysisHandler) SubmitAnalysis(ctx context.Context, req *SubmitAnalysisRequest) (*SubmitAnalysisResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil || req.ClientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}

	analystID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fin, err := financialsFromMsg(req.Financials)
	if err != nil {
		return nil, err
	}

	resp, err := h.submit.Execute(ctx, dto.SubmitAnalysisRequest{
		ClientID:   req.ClientID,
		AnalystID:  analystID,
		CreditType: req.CreditType,
		Financials: fin,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &SubmitAnalysisResponse{Analysis: analysisMsgFrom(resp)}, nil
}

// GetAnalysis handles the gRPC request to retrieve a credit analysis.
func (h *AnalysisHandler) GetAnalysis(ctx context.Context, req *GetAnalysisRequest) (*GetAnalysisResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAuditor); err != nil {
		return nil, err
	}
	if req == nil || req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	resp, err := h.getAnalysis.Execute(ctx, req.ID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &GetAnalysisResponse{Analysis: analysisMsgFrom(resp)}, nil
}

// ListClientAnalyses handles the gRPC request for a client's analysis history.
func (h *AnalysisHandler) ListClientAnalyses(ctx context.Context, req *ListClientAnalysesRequest) (*ListClientAnalysesResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAuditor); err != nil {
		return nil, err
	}
	if req == nil || req.ClientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}

	responses, err := h.listAnalyses.Execute(ctx, req.ClientID)
	if err != nil {
		return nil, statusFromError(err)
	}

	analyses := make([]*AnalysisMsg, 0, len(responses))
	for _, r := range responses {
		analyses = append(analyses, analysisMsgFrom(r))
	}
	return &ListClientAnalysesResponse{Analyses: analyses}, nil
}

// DecideAnalysis handles the gRPC request to apply an analyst decision.
func (h *AnalysisHandler) DecideAnalysis(ctx context.Context, req *DecideAnalysisRequest) (*DecideAnalysisResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil || req.AnalysisID == "" {
		return nil, status.Error(codes.InvalidArgument, "analysis_id is required")
	}
	if req.Action == "" {
		return nil, status.Error(codes.InvalidArgument, "action is required")
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.decide.Execute(ctx, dto.DecideAnalysisRequest{
		AnalysisID: req.AnalysisID,
		Action:     req.Action,
		ActorID:    actorID,
		Comment:    req.Comment,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &DecideAnalysisResponse{Analysis: analysisMsgFrom(resp)}, nil
}

// ReevaluateAnalysis handles the gRPC request to re-score with fresh figures.
func (h *AnalysisHandler) ReevaluateAnalysis(ctx context.Context, req *ReevaluateAnalysisRequest) (*ReevaluateAnalysisResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil || req.AnalysisID == "" {
		return nil, status.Error(codes.InvalidArgument, "analysis_id is required")
	}

	fin, err := financialsFromMsg(req.Financials)
	if err != nil {
		return nil, err
	}

	resp, err := h.reevaluate.Execute(ctx, dto.ReevaluateAnalysisRequest{
		AnalysisID: req.AnalysisID,
		Financials: fin,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ReevaluateAnalysisResponse{Analysis: analysisMsgFrom(resp)}, nil
}

// AttachDocument handles the gRPC request to link a document to an analysis.
func (h *AnalysisHandler) AttachDocument(ctx context.Context, req *AttachDocumentRequest) (*AttachDocumentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil || req.AnalysisID == "" {
		return nil, status.Error(codes.InvalidArgument, "analysis_id is required")
	}
	if req.StorageKey == "" {
		return nil, status.Error(codes.InvalidArgument, "storage_key is required")
	}

	resp, err := h.attachDocument.Execute(ctx, dto.AttachDocumentRequest{
		AnalysisID:   req.AnalysisID,
		DocumentType: req.DocumentType,
		StorageKey:   req.StorageKey,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &AttachDocumentResponse{
		Document: &DocumentMsg{
			ID:         resp.ID,
			AnalysisID: resp.AnalysisID,
			Type:       resp.Type,
			StorageKey: resp.StorageKey,
			Notes:      resp.Notes,
			UploadedAt: resp.UploadedAt.Format(time.RFC3339),
		},
	}, nil
}

// QuoteLoan handles the gRPC request for a stateless scoring preview.
func (h *AnalysisHandler) QuoteLoan(ctx context.Context, req *QuoteLoanRequest) (*QuoteLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAuditor); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	fin, err := financialsFromMsg(req.Financials)
	if err != nil {
		return nil, err
	}

	resp, err := h.quote.Execute(dto.QuoteLoanRequest{
		Financials:      fin,
		IncludeSchedule: req.IncludeSchedule,
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid financials: %v", err)
	}

	out := &QuoteLoanResponse{
		Score:          resp.Score,
		RiskTier:       resp.RiskTier,
		MonthlyPayment: resp.MonthlyPayment.String(),
		Capacity:       resp.Capacity.String(),
		Recommended:    resp.Recommended,
	}
	for _, e := range resp.Schedule {
		out.Schedule = append(out.Schedule, &ScheduleEntryMsg{
			Period:           e.Period,
			DueDate:          e.DueDate.Format(time.RFC3339),
			Principal:        e.Principal.String(),
			Interest:         e.Interest.String(),
			Total:            e.Total.String(),
			RemainingBalance: e.RemainingBalance.String(),
		})
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// message mapping
// ---------------------------------------------------------------------------

func financialsFromMsg(msg *FinancialsMsg) (dto.FinancialInput, error) {
	if msg == nil {
		return dto.FinancialInput{}, status.Error(codes.InvalidArgument, "financials are required")
	}

	income, err := decimal.NewFromString(msg.MonthlyIncome)
	if err != nil {
		return dto.FinancialInput{}, status.Errorf(codes.InvalidArgument, "invalid monthly_income: %v", err)
	}
	expenses, err := decimal.NewFromString(msg.MonthlyExpenses)
	if err != nil {
		return dto.FinancialInput{}, status.Errorf(codes.InvalidArgument, "invalid monthly_expenses: %v", err)
	}
	debt, err := decimal.NewFromString(msg.CurrentDebt)
	if err != nil {
		return dto.FinancialInput{}, status.Errorf(codes.InvalidArgument, "invalid current_debt: %v", err)
	}
	amount, err := decimal.NewFromString(msg.RequestedAmount)
	if err != nil {
		return dto.FinancialInput{}, status.Errorf(codes.InvalidArgument, "invalid requested_amount: %v", err)
	}
	rate, err := decimal.NewFromString(msg.AnnualRatePct)
	if err != nil {
		return dto.FinancialInput{}, status.Errorf(codes.InvalidArgument, "invalid annual_rate_pct: %v", err)
	}

	return dto.FinancialInput{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		CurrentDebt:     debt,
		RequestedAmount: amount,
		AnnualRatePct:   rate,
		TermMonths:      msg.TermMonths,
	}, nil
}

func clientMsgFrom(resp dto.ClientResponse) *ClientMsg {
	return &ClientMsg{
		ID:                   resp.ID,
		IdentificationType:   resp.IdentificationType,
		IdentificationNumber: resp.IdentificationNumber,
		FirstNames:           resp.FirstNames,
		LastNames:            resp.LastNames,
		FullName:             resp.FullName,
		Email:                resp.Email,
		Phone:                resp.Phone,
		Address:              resp.Address,
		MonthlyIncome:        resp.MonthlyIncome.String(),
		RegisteredAt:         resp.RegisteredAt.Format(time.RFC3339),
	}
}

func analysisMsgFrom(resp dto.AnalysisResponse) *AnalysisMsg {
	msg := &AnalysisMsg{
		ID:               resp.ID,
		ClientID:         resp.ClientID,
		AnalystID:        resp.AnalystID,
		CreditType:       resp.CreditType,
		Status:           resp.Status,
		Score:            resp.Score,
		RiskTier:         resp.RiskTier,
		EstimatedPayment: resp.EstimatedPayment.String(),
		Capacity:         resp.Capacity.String(),
		Recommended:      resp.Recommended,
		Financials: &FinancialsMsg{
			MonthlyIncome:   resp.Financials.MonthlyIncome.String(),
			MonthlyExpenses: resp.Financials.MonthlyExpenses.String(),
			CurrentDebt:     resp.Financials.CurrentDebt.String(),
			RequestedAmount: resp.Financials.RequestedAmount.String(),
			AnnualRatePct:   resp.Financials.AnnualRatePct.String(),
			TermMonths:      resp.Financials.TermMonths,
		},
		DecidedBy:       resp.DecidedBy,
		DecisionComment: resp.DecisionComment,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.DecidedAt != nil {
		msg.DecidedAt = resp.DecidedAt.Format(time.RFC3339)
	}
	return msg
}
