package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// ErrClientAlreadyRegistered signals a duplicate identification number.
var ErrClientAlreadyRegistered = errors.New("client already registered")

// RegisterClientUseCase creates a new client record.
type RegisterClientUseCase struct {
	clientRepo port.ClientRepository
	publisher  port.EventPublisher
}

// NewRegisterClientUseCase wires dependencies.
func NewRegisterClientUseCase(
	clientRepo port.ClientRepository,
	publisher port.EventPublisher,
) *RegisterClientUseCase {
	return &RegisterClientUseCase{
		clientRepo: clientRepo,
		publisher:  publisher,
	}
}

// Execute validates, persists and announces a new client. Identification
// numbers are unique across the book.
func (uc *RegisterClientUseCase) Execute(
	ctx context.Context,
	req dto.RegisterClientRequest,
) (dto.ClientResponse, error) {
	now := time.Now().UTC()

	idType, err := valueobject.NewIdentificationType(req.IdentificationType)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("parse identification type: %w", err)
	}

	if _, err := uc.clientRepo.FindByIdentification(ctx, req.IdentificationNumber); err == nil {
		return dto.ClientResponse{}, ErrClientAlreadyRegistered
	} else if !errors.Is(err, port.ErrNotFound) {
		return dto.ClientResponse{}, fmt.Errorf("check identification: %w", err)
	}

	client, err := model.NewClient(
		idType, req.IdentificationNumber,
		req.FirstNames, req.LastNames,
		req.Email, req.Phone, req.Address,
		req.MonthlyIncome, now,
	)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("create client: %w", err)
	}

	if err := uc.clientRepo.Save(ctx, client); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("save client: %w", err)
	}

	registered := event.NewClientRegistered(
		client.ID, client.IdentificationType.String(), client.IdentificationNumber,
	)
	if err := uc.publisher.Publish(ctx, registered); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toClientResponse(client), nil
}

// GetClientUseCase retrieves a single client record.
type GetClientUseCase struct {
	clientRepo port.ClientRepository
}

// NewGetClientUseCase wires dependencies.
func NewGetClientUseCase(clientRepo port.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo}
}

// Execute loads a client by ID.
func (uc *GetClientUseCase) Execute(ctx context.Context, clientID string) (dto.ClientResponse, error) {
	client, err := uc.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("load client: %w", err)
	}
	return toClientResponse(client), nil
}

func toClientResponse(c model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                   c.ID,
		IdentificationType:   c.IdentificationType.String(),
		IdentificationNumber: c.IdentificationNumber,
		FirstNames:           c.FirstNames,
		LastNames:            c.LastNames,
		FullName:             c.FullName(),
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		MonthlyIncome:        c.MonthlyIncome,
		RegisteredAt:         c.RegisteredAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
