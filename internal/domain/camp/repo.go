package camp

import "context"

type Repository interface {
	Create(ctx context.Context, c *Camp) error
	List(ctx context.Context) ([]*Camp, error)
}
