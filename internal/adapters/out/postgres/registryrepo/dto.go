// Package registryrepo provides the read-only adapter over the registry
// collaborator's tables. The ordering core never writes these rows; it only
// resolves identities, kinds, and display data.
package registryrepo

import (
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/registry"
)

// UserDTO mirrors the registry's users table.
type UserDTO struct {
	ID      int `gorm:"primaryKey"`
	Kind    int
	Name    string
	Email   string
	Address string
	CPF     string
	Vehicle string
	Plate   string
}

// TableName specifies the registry's table for users.
func (UserDTO) TableName() string {
	return "users"
}

// CompanyDTO mirrors the registry's companies table.
type CompanyDTO struct {
	ID            int `gorm:"primaryKey"`
	Kind          int
	Name          string
	Address       string
	OwnerID       int `gorm:"index"`
	CuisineType   string
	OpensAt       string
	ClosesAt      string
	MarketType    string
	Open24Hours   bool
	EmployeeCount int
}

// TableName specifies the registry's table for companies.
func (CompanyDTO) TableName() string {
	return "companies"
}

// ProductDTO mirrors the registry's products table.
type ProductDTO struct {
	ID        int `gorm:"primaryKey"`
	CompanyID int `gorm:"index"`
	Name      string
	Price     float64
	Category  string
}

// TableName specifies the registry's table for products.
func (ProductDTO) TableName() string {
	return "products"
}

// CourierCompanyDTO mirrors the registry's courier affiliation table.
type CourierCompanyDTO struct {
	CourierID int `gorm:"primaryKey;autoIncrement:false"`
	CompanyID int `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the registry's table for courier affiliations.
func (CourierCompanyDTO) TableName() string {
	return "courier_companies"
}

func userToView(dto UserDTO) registry.User {
	return registry.User{
		ID:      kernel.UserID(dto.ID),
		Kind:    registry.UserKind(dto.Kind),
		Name:    dto.Name,
		Email:   dto.Email,
		Address: dto.Address,
		CPF:     dto.CPF,
		Vehicle: dto.Vehicle,
		Plate:   dto.Plate,
	}
}

func companyToView(dto CompanyDTO) registry.Company {
	return registry.Company{
		ID:            kernel.CompanyID(dto.ID),
		Kind:          registry.CompanyKind(dto.Kind),
		Name:          dto.Name,
		Address:       dto.Address,
		OwnerID:       kernel.UserID(dto.OwnerID),
		CuisineType:   dto.CuisineType,
		OpensAt:       dto.OpensAt,
		ClosesAt:      dto.ClosesAt,
		MarketType:    dto.MarketType,
		Open24Hours:   dto.Open24Hours,
		EmployeeCount: dto.EmployeeCount,
	}
}

func productToView(dto ProductDTO) registry.Product {
	return registry.Product{
		ID:        kernel.ProductID(dto.ID),
		CompanyID: kernel.CompanyID(dto.CompanyID),
		Name:      dto.Name,
		Price:     dto.Price,
		Category:  dto.Category,
	}
}
