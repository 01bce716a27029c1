package registry

import (
	"fmt"
	"strconv"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

// CompanyKind is the closed enumeration of vendor company variants.
type CompanyKind int

const (
	CompanyKindUnknown CompanyKind = iota
	Restaurant
	Market
	Pharmacy
)

// Validate checks that the kind is one of the registered variants.
func (k CompanyKind) Validate() error {
	switch k {
	case Restaurant, Market, Pharmacy:
		return nil
	default:
		return errs.NewValueIsOutOfRangeError("company kind", k, Restaurant, Pharmacy)
	}
}

func (k CompanyKind) String() string {
	switch k {
	case Restaurant:
		return "restaurante"
	case Market:
		return "mercado"
	case Pharmacy:
		return "farmacia"
	default:
		return "desconhecido"
	}
}

// Company is a read-only view of a vendor company. Variant-specific fields are
// populated according to Kind and zero otherwise.
type Company struct {
	ID      kernel.CompanyID
	Kind    CompanyKind
	Name    string
	Address string
	OwnerID kernel.UserID

	// CuisineType is set for Restaurant companies only.
	CuisineType string

	// OpensAt, ClosesAt, and MarketType are set for Market companies only.
	OpensAt    string
	ClosesAt   string
	MarketType string

	// Open24Hours and EmployeeCount are set for Pharmacy companies only.
	Open24Hours   bool
	EmployeeCount int
}

var companyAttributes = map[string]func(Company) string{
	"nome":        func(c Company) string { return c.Name },
	"endereco":    func(c Company) string { return c.Address },
	"tipoEmpresa": func(c Company) string { return c.Kind.String() },
}

var companyKindAttributes = map[CompanyKind]map[string]func(Company) string{
	Restaurant: {
		"tipoCozinha": func(c Company) string { return c.CuisineType },
	},
	Market: {
		"abre":        func(c Company) string { return c.OpensAt },
		"fecha":       func(c Company) string { return c.ClosesAt },
		"tipoMercado": func(c Company) string { return c.MarketType },
	},
	Pharmacy: {
		"aberto24Horas":      func(c Company) string { return strconv.FormatBool(c.Open24Hours) },
		"numeroFuncionarios": func(c Company) string { return strconv.Itoa(c.EmployeeCount) },
	},
}

// Attribute projects the company onto a named attribute. Shared names resolve
// for every variant; variant names resolve only for the matching kind.
func (c Company) Attribute(name string) (string, error) {
	if project, ok := companyAttributes[name]; ok {
		return project(c), nil
	}
	if project, ok := companyKindAttributes[c.Kind][name]; ok {
		return project(c), nil
	}
	return "", ErrUnknownAttribute
}

// Product is a read-only view of a catalog product offered by one company.
type Product struct {
	ID        kernel.ProductID
	CompanyID kernel.CompanyID
	Name      string
	Price     float64
	Category  string
}

var productAttributes = map[string]func(Product) string{
	"nome":      func(p Product) string { return p.Name },
	"categoria": func(p Product) string { return p.Category },
	"valor":     func(p Product) string { return fmt.Sprintf("%.2f", p.Price) },
}

// Attribute projects the product onto a named attribute.
func (p Product) Attribute(name string) (string, error) {
	if project, ok := productAttributes[name]; ok {
		return project(p), nil
	}
	return "", ErrUnknownAttribute
}
