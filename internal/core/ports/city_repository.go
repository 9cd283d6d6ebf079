package ports

import (
	"context"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"
)

type CityRepository interface {
	Add(ctx context.Context, c *city.City) error
	Update(ctx context.Context, c *city.City) error
	Get(ctx context.Context, id kernel.UUID) (*city.City, error)

	// Delete removes a city no order refers to; otherwise InvalidState.
	Delete(ctx context.Context, id kernel.UUID) error
}
