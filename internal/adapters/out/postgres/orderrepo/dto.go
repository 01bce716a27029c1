// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the two hot lookups: open order per customer and company, and
// ready orders per company for dispatch.
type OrderDTO struct {
	Number     int `gorm:"primaryKey"`
	CustomerID int `gorm:"index:idx_orders_open"`
	CompanyID  int `gorm:"index:idx_orders_open;index"`
	Status     int `gorm:"index"`
	Total      float64
	Items      []OrderItemDTO `gorm:"foreignKey:OrderNumber;references:Number"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one basket entry. The autoincrement id preserves
// insertion order across reloads.
type OrderItemDTO struct {
	ID          int `gorm:"primaryKey;autoIncrement"`
	OrderNumber int `gorm:"index"`
	ProductID   int
	Name        string
	Price       float64
}

// TableName specifies the database table name for basket entries.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderNumber: aggregate.Number().Int(),
			ProductID:   int(item.ProductID()),
			Name:        item.Name(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		Number:     aggregate.Number().Int(),
		CustomerID: int(aggregate.CustomerID()),
		CompanyID:  int(aggregate.CompanyID()),
		Status:     int(aggregate.Status()),
		Total:      aggregate.Total(),
		Items:      itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including basket and total using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(kernel.ProductID(itemDTO.ProductID), itemDTO.Name, itemDTO.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.OrderNumber(dto.Number),
		kernel.UserID(dto.CustomerID),
		kernel.CompanyID(dto.CompanyID),
		order.Status(dto.Status),
		items,
		dto.Total,
	)
}
