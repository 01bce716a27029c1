// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. Deliveries are immutable records, so the package
// only ever inserts and reads.
package deliveryrepo

import (
	"myfood/internal/core/domain/model/delivery"
	"myfood/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The unique index on OrderNumber enforces the one delivery per order rule at
// the storage level.
type DeliveryDTO struct {
	ID          int `gorm:"primaryKey"`
	OrderNumber int `gorm:"uniqueIndex"`
	CourierID   int `gorm:"index"`
	Destination string
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Int(),
		OrderNumber: aggregate.OrderNumber().Int(),
		CourierID:   int(aggregate.CourierID()),
		Destination: aggregate.Destination(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(
		kernel.DeliveryID(dto.ID),
		kernel.OrderNumber(dto.OrderNumber),
		kernel.UserID(dto.CourierID),
		dto.Destination,
	)
}
