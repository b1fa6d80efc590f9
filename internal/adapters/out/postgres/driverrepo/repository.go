package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/driver"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Phone().String(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
// Uses a column map so the archived flag can transition back to false.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("phone = ?", dto.Phone).
		Updates(map[string]any{
			"name":     dto.Name,
			"archived": dto.Archived,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.Phone().String())
	}

	r.tracker.TrackAggregate(aggregate.Phone().String(), aggregate)
	return nil
}

// Get retrieves a driver by phone number.
func (r *GormDriverRepository) Get(ctx context.Context, phone kernel.Phone) (*driver.Driver, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all drivers available for assignment, ordered by name.
func (r *GormDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "archived = ?", false).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
