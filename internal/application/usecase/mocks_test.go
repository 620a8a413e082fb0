package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockAnalysisRepository struct {
	saveFunc           func(ctx context.Context, a model.CreditAnalysis) error
	findByIDFunc       func(ctx context.Context, id string) (model.CreditAnalysis, error)
	findByClientIDFunc func(ctx context.Context, clientID string) ([]model.CreditAnalysis, error)
	savedAnalyses      []model.CreditAnalysis
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a model.CreditAnalysis) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	m.savedAnalyses = append(m.savedAnalyses, a)
	return nil
}

func (m *mockAnalysisRepository) FindByID(ctx context.Context, id string) (model.CreditAnalysis, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.CreditAnalysis{}, port.ErrNotFound
}

func (m *mockAnalysisRepository) FindByClientID(ctx context.Context, clientID string) ([]model.CreditAnalysis, error) {
	if m.findByClientIDFunc != nil {
		return m.findByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

type mockClientRepository struct {
	saveFunc                 func(ctx context.Context, c model.Client) error
	findByIDFunc             func(ctx context.Context, id string) (model.Client, error)
	findByIdentificationFunc func(ctx context.Context, identificationNumber string) (model.Client, error)
	savedClients             []model.Client
}

func (m *mockClientRepository) Save(ctx context.Context, c model.Client) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	m.savedClients = append(m.savedClients, c)
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id string) (model.Client, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return testClient(), nil
}

func (m *mockClientRepository) FindByIdentification(ctx context.Context, identificationNumber string) (model.Client, error) {
	if m.findByIdentificationFunc != nil {
		return m.findByIdentificationFunc(ctx, identificationNumber)
	}
	return model.Client{}, port.ErrNotFound
}

type mockDocumentRepository struct {
	saveFunc  func(ctx context.Context, doc model.AnalysisDocument) error
	savedDocs []model.AnalysisDocument
}

func (m *mockDocumentRepository) Save(ctx context.Context, doc model.AnalysisDocument) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, doc)
	}
	m.savedDocs = append(m.savedDocs, doc)
	return nil
}

func (m *mockDocumentRepository) FindByAnalysisID(_ context.Context, _ string) ([]model.AnalysisDocument, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Fixtures ---

func testClient() model.Client {
	return model.Client{
		ID:                   "client-001",
		IdentificationType:   valueobject.IdentificationTypeDNI,
		IdentificationNumber: "12345678",
		FirstNames:           "Maria Jose",
		LastNames:            "Quispe Flores",
		Email:                "maria@example.com",
		MonthlyIncome:        decimal.NewFromInt(5000),
		RegisteredAt:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func testFinancials() (valueobject.ApplicantFinancials, error) {
	return valueobject.NewApplicantFinancials(
		decimal.NewFromInt(5000),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(10000),
		24,
		decimal.NewFromInt(15),
	)
}

func pendingAnalysis() (model.CreditAnalysis, error) {
	fin, err := testFinancials()
	if err != nil {
		return model.CreditAnalysis{}, err
	}
	a, err := model.NewCreditAnalysis(
		"client-001", "analyst-001", valueobject.CreditTypePersonal, fin,
		time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return model.CreditAnalysis{}, err
	}
	return a.ClearEvents(), nil
}

func decidedAnalysis(status valueobject.AnalysisStatus) (model.CreditAnalysis, error) {
	a, err := pendingAnalysis()
	if err != nil {
		return model.CreditAnalysis{}, err
	}
	now := time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)
	switch status {
	case valueobject.AnalysisStatusApproved:
		a, err = a.Approve("supervisor-001", "ok", now)
	case valueobject.AnalysisStatusRejected:
		a, err = a.Reject("supervisor-001", "no", now)
	case valueobject.AnalysisStatusCancelled:
		a, err = a.Cancel("supervisor-001", "withdrawn", now)
	case valueobject.AnalysisStatusOnHold:
		a, err = a.PutOnHold("supervisor-001", "docs pending", now)
	default:
		return model.CreditAnalysis{}, fmt.Errorf("unsupported fixture status %s", status)
	}
	if err != nil {
		return model.CreditAnalysis{}, err
	}
	return a.ClearEvents(), nil
}
