package intake

import (
	"context"
	"mime/multipart"

	"paintpro/internal/domain"
	"paintpro/internal/modules/upload"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error)
}

// MediaStore accepts photo bytes and returns stored references; this
// module keeps only the reference plus per-photo metadata.
type MediaStore interface {
	Store(ctx context.Context, userID int64, file *multipart.FileHeader) (*upload.Upload, error)
}
