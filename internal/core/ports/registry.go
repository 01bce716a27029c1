package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/registry"
)

// Registry is the read-only view into the user, company, and product data
// owned by the registry collaborator. The ordering core resolves identities
// and categories through it but never writes.
type Registry interface {
	// GetUser resolves a registered user by id.
	GetUser(ctx context.Context, id kernel.UserID) (registry.User, error)

	// GetCompany resolves a vendor company by id.
	GetCompany(ctx context.Context, id kernel.CompanyID) (registry.Company, error)

	// GetProduct resolves a catalog product by id.
	GetProduct(ctx context.Context, id kernel.ProductID) (registry.Product, error)

	// CourierCompanies lists the ids of the companies a courier is affiliated
	// with. An unaffiliated courier yields an empty slice, not an error.
	CourierCompanies(ctx context.Context, courierID kernel.UserID) ([]kernel.CompanyID, error)

	// Couriers lists every registered courier, ordered by id.
	Couriers(ctx context.Context) ([]registry.User, error)
}
