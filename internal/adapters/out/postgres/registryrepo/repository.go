package registryrepo

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/registry"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRegistry implements the Registry port over the registry collaborator's
// tables. All operations are reads on the shared connection; the registry's
// rows never participate in the core's transactions.
type GormRegistry struct {
	db *gorm.DB
}

// NewGormRegistry creates a new GORM-backed registry view.
func NewGormRegistry(db *gorm.DB) *GormRegistry {
	return &GormRegistry{db: db}
}

// GetUser resolves a registered user by id.
func (r *GormRegistry) GetUser(ctx context.Context, id kernel.UserID) (registry.User, error) {
	if err := id.Validate(); err != nil {
		return registry.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registry.User{}, errs.NewObjectNotFoundError("user", int(id))
		}
		return registry.User{}, err
	}

	return userToView(dto), nil
}

// GetCompany resolves a vendor company by id.
func (r *GormRegistry) GetCompany(ctx context.Context, id kernel.CompanyID) (registry.Company, error) {
	if err := id.Validate(); err != nil {
		return registry.Company{}, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registry.Company{}, errs.NewObjectNotFoundError("company", int(id))
		}
		return registry.Company{}, err
	}

	return companyToView(dto), nil
}

// GetProduct resolves a catalog product by id.
func (r *GormRegistry) GetProduct(ctx context.Context, id kernel.ProductID) (registry.Product, error) {
	if err := id.Validate(); err != nil {
		return registry.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registry.Product{}, errs.NewObjectNotFoundError("product", int(id))
		}
		return registry.Product{}, err
	}

	return productToView(dto), nil
}

// Couriers lists every registered courier, ordered by id.
func (r *GormRegistry) Couriers(ctx context.Context) ([]registry.User, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("kind = ?", int(registry.Courier)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]registry.User, 0, len(dtos))
	for _, dto := range dtos {
		couriers = append(couriers, userToView(dto))
	}

	return couriers, nil
}

// CourierCompanies lists the companies a courier is affiliated with.
// An unaffiliated courier yields an empty slice, not an error.
func (r *GormRegistry) CourierCompanies(ctx context.Context, courierID kernel.UserID) ([]kernel.CompanyID, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CourierCompanyDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", int(courierID)).
		Order("company_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.CompanyID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, kernel.CompanyID(dto.CompanyID))
	}

	return ids, nil
}
