package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// CachedClientRepo is a read-through Redis cache in front of a
// port.ClientRepository. Client records change rarely and are read on every
// analysis submission, which makes them the one hot-path lookup worth caching.
// Cache failures degrade to the underlying repository.
type CachedClientRepo struct {
	inner  port.ClientRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClientRepo wraps the given repository with a Redis cache.
func NewCachedClientRepo(
	inner port.ClientRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedClientRepo {
	return &CachedClientRepo{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedClient is the wire form stored in Redis. Value objects flatten to
// strings so the payload round-trips without custom marshaling.
type cachedClient struct {
	ID                   string    `json:"id"`
	IdentificationType   string    `json:"identification_type"`
	IdentificationNumber string    `json:"identification_number"`
	FirstNames           string    `json:"first_names"`
	LastNames            string    `json:"last_names"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Address              string    `json:"address"`
	MonthlyIncome        string    `json:"monthly_income"`
	RegisteredAt         time.Time `json:"registered_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Save writes through to the repository and invalidates the cached entry.
func (r *CachedClientRepo) Save(ctx context.Context, c model.Client) error {
	if err := r.inner.Save(ctx, c); err != nil {
		return err
	}
	if err := r.client.Del(ctx, clientKey(c.ID)).Err(); err != nil {
		r.logger.Warn("client cache invalidation failed", "client_id", c.ID, "error", err)
	}
	return nil
}

// FindByID checks the cache before hitting the repository.
func (r *CachedClientRepo) FindByID(ctx context.Context, id string) (model.Client, error) {
	if c, ok := r.get(ctx, clientKey(id)); ok {
		return c, nil
	}

	c, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	r.set(ctx, clientKey(id), c)
	return c, nil
}

// FindByIdentification always goes to the repository; identification lookups
// happen once per registration and are not worth a second key space.
func (r *CachedClientRepo) FindByIdentification(ctx context.Context, identificationNumber string) (model.Client, error) {
	return r.inner.FindByIdentification(ctx, identificationNumber)
}

func (r *CachedClientRepo) get(ctx context.Context, key string) (model.Client, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("client cache read failed", "key", key, "error", err)
		}
		return model.Client{}, false
	}

	var cc cachedClient
	if err := json.Unmarshal(raw, &cc); err != nil {
		r.logger.Warn("client cache entry corrupt", "key", key, "error", err)
		return model.Client{}, false
	}

	c, err := cc.toModel()
	if err != nil {
		r.logger.Warn("client cache entry invalid", "key", key, "error", err)
		return model.Client{}, false
	}
	return c, true
}

func (r *CachedClientRepo) set(ctx context.Context, key string, c model.Client) {
	raw, err := json.Marshal(fromModel(c))
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("client cache write failed", "key", key, "error", err)
	}
}

func (cc cachedClient) toModel() (model.Client, error) {
	idType, err := valueobject.NewIdentificationType(cc.IdentificationType)
	if err != nil {
		return model.Client{}, err
	}
	income, err := decimal.NewFromString(cc.MonthlyIncome)
	if err != nil {
		return model.Client{}, err
	}
	return model.Client{
		ID:                   cc.ID,
		IdentificationType:   idType,
		IdentificationNumber: cc.IdentificationNumber,
		FirstNames:           cc.FirstNames,
		LastNames:            cc.LastNames,
		Email:                cc.Email,
		Phone:                cc.Phone,
		Address:              cc.Address,
		MonthlyIncome:        income,
		RegisteredAt:         cc.RegisteredAt,
		UpdatedAt:            cc.UpdatedAt,
	}, nil
}

func fromModel(c model.Client) cachedClient {
	return cachedClient{
		ID:                   c.ID,
		IdentificationType:   c.IdentificationType.String(),
		IdentificationNumber: c.IdentificationNumber,
		FirstNames:           c.FirstNames,
		LastNames:            c.LastNames,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		MonthlyIncome:        c.MonthlyIncome.String(),
		RegisteredAt:         c.RegisteredAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func clientKey(id string) string {
	return "client:" + id
}
