package orderrepo

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextNumber allocates the next order number from the database sequence.
// Sequence values survive rollbacks, so numbers are never reused even when
// the creation that allocated one fails.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (kernel.OrderNumber, error) {
	var number int
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('order_numbers')").Scan(&number).Error; err != nil {
		return 0, err
	}

	return kernel.OrderNumber(number), nil
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number().Int(), aggregate)
	return nil
}

// Update saves an existing order to the database. The basket rows are
// replaced wholesale; they only change while the order is Open and stay
// small.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Select("CustomerID", "CompanyID", "Status", "Total").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_number = ?", dto.Number).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Number().Int(), aggregate)
	return nil
}

// Get retrieves an order by number, including its basket in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "number = ?", number.Int()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.Int())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpen retrieves the open order a customer holds against a company.
func (r *GormOrderRepository) GetOpen(
	ctx context.Context,
	customerID kernel.UserID,
	companyID kernel.CompanyID,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "customer_id = ? AND company_id = ? AND status = ?",
			int(customerID), int(companyID), int(order.Open)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open order", int(customerID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllReady retrieves every Ready order for the given companies, ordered by
// ascending number.
func (r *GormOrderRepository) GetAllReady(
	ctx context.Context,
	companyIDs []kernel.CompanyID,
) ([]*order.Order, error) {
	if len(companyIDs) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]int, 0, len(companyIDs))
	for _, id := range companyIDs {
		ids = append(ids, int(id))
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where("status = ? AND company_id IN ?", int(order.Ready), ids).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
