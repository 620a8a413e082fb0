package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// Client is the person a credit analysis belongs to. The record carries the
// identity and contact data captured at registration plus the declared
// monthly income used to pre-fill new analyses.
type Client struct {
	ID                   string
	IdentificationType   valueobject.IdentificationType
	IdentificationNumber string
	FirstNames           string
	LastNames            string
	Email                string
	Phone                string
	Address              string
	MonthlyIncome        decimal.Decimal
	RegisteredAt         time.Time
	UpdatedAt            time.Time
}

// NewClient validates and builds a new client record.
func NewClient(
	identificationType valueobject.IdentificationType,
	identificationNumber, firstNames, lastNames, email, phone, address string,
	monthlyIncome decimal.Decimal,
	now time.Time,
) (Client, error) {
	if identificationType.IsZero() {
		return Client{}, errors.New("identification type is required")
	}
	if strings.TrimSpace(identificationNumber) == "" {
		return Client{}, errors.New("identification number is required")
	}
	if strings.TrimSpace(firstNames) == "" || strings.TrimSpace(lastNames) == "" {
		return Client{}, errors.New("client names are required")
	}
	if monthlyIncome.IsNegative() {
		return Client{}, errors.New("monthly income must not be negative")
	}

	return Client{
		ID:                   uuid.New().String(),
		IdentificationType:   identificationType,
		IdentificationNumber: identificationNumber,
		FirstNames:           firstNames,
		LastNames:            lastNames,
		Email:                email,
		Phone:                phone,
		Address:              address,
		MonthlyIncome:        monthlyIncome,
		RegisteredAt:         now,
		UpdatedAt:            now,
	}, nil
}

// FullName returns the client's display name.
func (c Client) FullName() string {
	return c.FirstNames + " " + c.LastNames
}
