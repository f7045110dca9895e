package geo

import (
	"context"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

// Status is the tri-state outcome of a location request. Failures are plain
// statuses, never errors: proximity features degrade when no coordinate is
// available.
type Status string

const (
	StatusOK          Status = "ok"
	StatusDenied      Status = "denied"
	StatusUnavailable Status = "unavailable"
	StatusTimeout     Status = "timeout"
)

// Locator resolves a caller's coordinates. The permission flow is owned by
// the client; the catalog only ever sees a resolved coordinate or a failure
// status.
type Locator interface {
	Locate(ctx context.Context) (*domain.Coordinates, Status)
}

// StaticLocator always yields the same coordinate. Used in tests and for
// clients that pass an explicit location.
type StaticLocator struct {
	Coords *domain.Coordinates
}

func (l StaticLocator) Locate(_ context.Context) (*domain.Coordinates, Status) {
	if l.Coords == nil {
		return nil, StatusUnavailable
	}
	return l.Coords, StatusOK
}
