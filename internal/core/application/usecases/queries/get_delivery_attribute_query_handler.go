package queries

import (
	"context"
	"strconv"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryAttributeQueryHandler projects persisted deliveries onto named
// attributes. Order-sourced names (cliente, empresa) follow the delivery's
// order reference before resolving through the registry.
type GetDeliveryAttributeQueryHandler struct {
	db       *gorm.DB
	registry ports.Registry
}

// NewGetDeliveryAttributeQueryHandler creates a handler for delivery projections.
func NewGetDeliveryAttributeQueryHandler(db *gorm.DB, registry ports.Registry) GetDeliveryAttributeQueryHandler {
	return GetDeliveryAttributeQueryHandler{db: db, registry: registry}
}

// Handle executes the projection and returns the attribute value as a string.
//
// Recognized names:
//   - pedido: the delivered order's number
//   - entregador: the courier's display name
//   - cliente: the ordering customer's display name, sourced from the order
//   - empresa: the vendor company's display name, sourced from the order
//   - destino: the destination address
//
// A recognized name whose identity chain no longer resolves fails with
// ErrInvalidAttribute.
func (h GetDeliveryAttributeQueryHandler) Handle(ctx context.Context, query GetDeliveryAttributeQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var row struct {
		OrderNumber int
		CourierID   int
		Destination string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			courier_id,
			destination
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Int()).Scan(&row).Error
	if err != nil {
		return "", err
	}
	if row.OrderNumber == 0 {
		return "", errs.NewObjectNotFoundError("delivery", query.DeliveryID().Int())
	}

	switch query.Name() {
	case "pedido":
		return strconv.Itoa(row.OrderNumber), nil

	case "entregador":
		courier, userErr := h.registry.GetUser(ctx, kernel.UserID(row.CourierID))
		if userErr != nil {
			return "", ErrInvalidAttribute
		}
		name, attrErr := courier.Attribute("nome")
		if attrErr != nil {
			return "", ErrInvalidAttribute
		}
		return name, nil

	case "cliente", "empresa":
		return h.orderAttribute(ctx, kernel.OrderNumber(row.OrderNumber), query.Name())

	case "destino":
		return row.Destination, nil

	default:
		return "", ErrUnknownAttribute
	}
}

// orderAttribute resolves the names sourced from the delivered order.
func (h GetDeliveryAttributeQueryHandler) orderAttribute(
	ctx context.Context,
	number kernel.OrderNumber,
	name string,
) (string, error) {
	var row struct {
		CustomerID int
		CompanyID  int
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			company_id
		FROM orders
		WHERE number = ?
	`, number.Int()).Scan(&row).Error
	if err != nil {
		return "", err
	}
	if row.CustomerID == 0 {
		return "", ErrInvalidAttribute
	}

	if name == "cliente" {
		customer, userErr := h.registry.GetUser(ctx, kernel.UserID(row.CustomerID))
		if userErr != nil {
			return "", ErrInvalidAttribute
		}
		value, attrErr := customer.Attribute("nome")
		if attrErr != nil {
			return "", ErrInvalidAttribute
		}
		return value, nil
	}

	company, companyErr := h.registry.GetCompany(ctx, kernel.CompanyID(row.CompanyID))
	if companyErr != nil {
		return "", ErrInvalidAttribute
	}
	value, attrErr := company.Attribute("nome")
	if attrErr != nil {
		return "", ErrInvalidAttribute
	}
	return value, nil
}
