package request

import (
	"context"

	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
)

// Repository defines the storage contract for blood requests.
type Repository interface {
	Create(ctx context.Context, r domreq.Request) (domreq.Request, error)
	Get(ctx context.Context, id string) (domreq.Request, error)
	Update(ctx context.Context, r domreq.Request) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f domreq.Filter) ([]domreq.Request, error)
}
