package deliveryrepo

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/delivery"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID allocates the next delivery id from the database sequence.
// Sequence values survive rollbacks, so ids are never reused even when the
// creation attempt that allocated one fails.
func (r *GormDeliveryRepository) NextID(ctx context.Context) (kernel.DeliveryID, error) {
	var id int
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('delivery_ids')").Scan(&id).Error; err != nil {
		return 0, err
	}

	return kernel.DeliveryID(id), nil
}

// Add saves a new delivery record to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().Int(), aggregate)
	return nil
}

// Get retrieves a delivery by id.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.Int())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the delivery bound to the given order.
func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", number.Int())
		}
		return nil, err
	}

	return toDomain(dto)
}
