package queries

import (
	"context"
	"fmt"
	"strings"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderAttributeQueryHandler projects persisted orders onto named
// attributes. Uses direct SQL for the order row and the registry for display
// names, following the CQRS read path.
type GetOrderAttributeQueryHandler struct {
	db       *gorm.DB
	registry ports.Registry
}

// NewGetOrderAttributeQueryHandler creates a handler for order projections.
// Requires a GORM database connection and a Registry for name resolution.
func NewGetOrderAttributeQueryHandler(db *gorm.DB, registry ports.Registry) GetOrderAttributeQueryHandler {
	return GetOrderAttributeQueryHandler{db: db, registry: registry}
}

// Handle executes the projection and returns the attribute value as a string.
//
// Recognized names:
//   - cliente: the ordering customer's display name
//   - empresa: the vendor company's display name
//   - estado: the lifecycle state label (aberto, preparando, pronto, entregando, entregue)
//   - valor: the running total formatted with 2 decimal places
//   - produtos: bracketed, comma-joined item names in insertion order, {[]} when empty
func (h GetOrderAttributeQueryHandler) Handle(ctx context.Context, query GetOrderAttributeQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var row struct {
		CustomerID int
		CompanyID  int
		Status     int
		Total      float64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			company_id,
			status,
			total
		FROM orders
		WHERE number = ?
	`, query.OrderNumber().Int()).Scan(&row).Error
	if err != nil {
		return "", err
	}
	if row.CustomerID == 0 {
		return "", errs.NewObjectNotFoundError("order", query.OrderNumber().Int())
	}

	switch query.Name() {
	case "cliente":
		customer, userErr := h.registry.GetUser(ctx, kernel.UserID(row.CustomerID))
		if userErr != nil {
			return "", ErrInvalidAttribute
		}
		name, attrErr := customer.Attribute("nome")
		if attrErr != nil {
			return "", ErrInvalidAttribute
		}
		return name, nil

	case "empresa":
		company, companyErr := h.registry.GetCompany(ctx, kernel.CompanyID(row.CompanyID))
		if companyErr != nil {
			return "", ErrInvalidAttribute
		}
		name, attrErr := company.Attribute("nome")
		if attrErr != nil {
			return "", ErrInvalidAttribute
		}
		return name, nil

	case "estado":
		return order.Status(row.Status).String(), nil

	case "valor":
		return fmt.Sprintf("%.2f", row.Total), nil

	case "produtos":
		return h.listProducts(ctx, query.OrderNumber())

	default:
		return "", ErrUnknownAttribute
	}
}

// listProducts renders the basket item names in insertion order.
func (h GetOrderAttributeQueryHandler) listProducts(ctx context.Context, number kernel.OrderNumber) (string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name
		FROM order_items
		WHERE order_number = ?
		ORDER BY id
	`, number.Int()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return "", err
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return "", err
	}

	return "{[" + strings.Join(names, ", ") + "]}", nil
}
