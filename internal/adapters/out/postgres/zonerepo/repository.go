package zonerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/zone"
	"pedidos/internal/pkg/errs"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
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

// Update saves an existing zone to the database.
func (r *GormZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ZoneDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("zone", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every zone, ordered by name.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}
