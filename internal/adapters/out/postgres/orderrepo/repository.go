package orderrepo

import (
	"context"
	"errors"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	paramName = "order"
	idColumn  = "transaction_id"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and assigns the generated transaction id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, referenceValues(aggregate))
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves every attribute and the status of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("transaction_id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Select("*").
		Omit(idColumn).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, referenceValues(aggregate))
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("transaction_id = ?", aggregate.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError(paramName, aggregate.ID())
		}
		return errs.NewConcurrencyConflictError(paramName, aggregate.ID(), aggregate.Version())
	}

	aggregate.IncrementVersion()
	return nil
}

// Get retrieves an order by transaction id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

func referenceValues(o *order.Order) pgerr.Values {
	var values pgerr.Values
	if id, ok := o.CustomerID().Get(); ok {
		values.CustomerID = id
	}
	if id, ok := o.ProductID().Get(); ok {
		values.ProductID = id
	}
	return values
}
