package customerrepo

import (
	"context"
	"errors"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	paramName = "customer"
	idColumn  = "customer_id"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts a new customer and assigns the generated id.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, pgerr.Values{Email: aggregate.Email().OrElse("")})
	}

	return aggregate.AssignID(dto.ID)
}

// Update rewrites every column when the stored version still matches and
// bumps the version on success.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("customer_id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Select("*").
		Omit(idColumn).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, pgerr.Values{Email: aggregate.Email().OrElse("")})
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError(paramName, aggregate.ID())
		}
		return errs.NewConcurrencyConflictError(paramName, aggregate.ID(), aggregate.Version())
	}

	aggregate.IncrementVersion()
	return nil
}

// Get retrieves a customer by id.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id)
		}
		return nil, err
	}

	return ToDomain(dto), nil
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("customer_id = ?", id).Count(&count).Error
	return count > 0, err
}

// EmailTaken reports whether another customer already uses email.
func (r *GormCustomerRepository) EmailTaken(ctx context.Context, email string, excludingID kernel.Optional[int64]) (bool, error) {
	query := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("email = ?", email)
	if id, ok := excludingID.Get(); ok {
		query = query.Where("customer_id <> ?", id)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
