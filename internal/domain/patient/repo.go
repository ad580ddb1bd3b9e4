package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	ListByCamp(ctx context.Context, campID int64) ([]*Patient, error)
	Delete(ctx context.Context, id int64) error
}
