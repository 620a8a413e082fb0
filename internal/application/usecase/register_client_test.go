package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
)

func validRegisterRequest() dto.RegisterClientRequest {
	return dto.RegisterClientRequest{
		IdentificationType:   "DNI",
		IdentificationNumber: "87654321",
		FirstNames:           "Carlos",
		LastNames:            "Mendoza Rios",
		Email:                "carlos@example.com",
		Phone:                "+51 999 888 777",
		Address:              "Av. Principal 123",
		MonthlyIncome:        decimal.NewFromInt(4500),
	}
}

func TestRegisterClient_Execute(t *testing.T) {
	t.Run("registers a new client and publishes an event", func(t *testing.T) {
		clientRepo := &mockClientRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewRegisterClientUseCase(clientRepo, publisher)

		resp, err := uc.Execute(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "DNI", resp.IdentificationType)
		assert.Equal(t, "Carlos Mendoza Rios", resp.FullName)

		require.Len(t, clientRepo.savedClients, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "client.registered", publisher.publishedEvents[0].EventType())
	})

	t.Run("rejects duplicate identification numbers", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIdentificationFunc: func(_ context.Context, _ string) (model.Client, error) {
				return testClient(), nil
			},
		}
		uc := usecase.NewRegisterClientUseCase(clientRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validRegisterRequest())

		assert.ErrorIs(t, err, usecase.ErrClientAlreadyRegistered)
		assert.Empty(t, clientRepo.savedClients)
	})

	t.Run("surfaces lookup errors other than not-found", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIdentificationFunc: func(_ context.Context, _ string) (model.Client, error) {
				return model.Client{}, fmt.Errorf("database unavailable")
			},
		}
		uc := usecase.NewRegisterClientUseCase(clientRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validRegisterRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "check identification")
	})

	t.Run("fails on unknown identification type", func(t *testing.T) {
		uc := usecase.NewRegisterClientUseCase(&mockClientRepository{}, &mockEventPublisher{})

		req := validRegisterRequest()
		req.IdentificationType = "DRIVER_LICENSE"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse identification type")
	})

	t.Run("fails on invalid client data", func(t *testing.T) {
		uc := usecase.NewRegisterClientUseCase(&mockClientRepository{}, &mockEventPublisher{})

		req := validRegisterRequest()
		req.FirstNames = "  "
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create client")
	})
}

func TestGetClient_Execute(t *testing.T) {
	t.Run("returns the client record", func(t *testing.T) {
		uc := usecase.NewGetClientUseCase(&mockClientRepository{})

		resp, err := uc.Execute(context.Background(), "client-001")

		require.NoError(t, err)
		assert.Equal(t, "client-001", resp.ID)
		assert.Equal(t, "Maria Jose Quispe Flores", resp.FullName)
	})

	t.Run("propagates not-found", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Client, error) {
				return model.Client{}, port.ErrNotFound
			},
		}
		uc := usecase.NewGetClientUseCase(clientRepo)

		_, err := uc.Execute(context.Background(), "missing")

		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}
