package dashboard

import (
	"context"

	"paintpro/internal/domain"
)

type RequestReader interface {
	List(ctx context.Context) ([]domain.Request, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error)
}

type VendorReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Vendor, error)
	List(ctx context.Context) ([]domain.Vendor, error)
}

type AssignmentReader interface {
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error)
}

// MediaResolver resolves a stored photo reference to its public URL.
// A failing lookup degrades the item, never the whole view.
type MediaResolver interface {
	ResolveURL(ctx context.Context, uploadID string) (string, error)
}
