package loanrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
	"pedidos/internal/pkg/errs"
)

// GormLoanRepository implements LoanRepository using GORM.
type GormLoanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLoanRepository creates a new GORM loan repository.
func NewGormLoanRepository(db *gorm.DB, tracker aggregateTracker) *GormLoanRepository {
	return &GormLoanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new loan to the database.
func (r *GormLoanRepository) Add(ctx context.Context, aggregate *loan.Loan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing loan to the database.
// The only mutation a loan supports is recording the actual return date.
func (r *GormLoanRepository) Update(ctx context.Context, aggregate *loan.Loan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoanDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"actual_return_date": dto.ActualReturnDate,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loan", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a loan by ID.
func (r *GormLoanRepository) Get(ctx context.Context, id kernel.UUID) (*loan.Loan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnreturned retrieves every loan without a recorded return,
// most overdue first.
func (r *GormLoanRepository) GetAllUnreturned(ctx context.Context) ([]*loan.Loan, error) {
	var dtos []LoanDTO
	if err := r.db.WithContext(ctx).
		Order("stipulated_return_date").
		Find(&dtos, "actual_return_date IS NULL").Error; err != nil {
		return nil, err
	}

	loans := make([]*loan.Loan, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	return loans, nil
}
