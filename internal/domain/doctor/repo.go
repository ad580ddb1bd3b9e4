package doctor

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
}
