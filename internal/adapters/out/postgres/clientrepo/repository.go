package clientrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client to the database, addresses included.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
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

// Update saves an existing client to the database.
// The client row is updated through an explicit column map so zero values
// stay writable; addresses only ever grow, so the new ones are inserted and
// existing rows are left untouched.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ClientDTO{}).
		Where("phone = ?", dto.Phone).
		Updates(map[string]any{
			"name":       dto.Name,
			"kind":       dto.Kind,
			"legal_name": dto.LegalName,
			"tax_id":     dto.TaxID,
			"discount":   dto.Discount,
			"archived":   dto.Archived,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", dto.Phone)
	}

	if len(dto.Addresses) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Addresses).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Phone().String(), aggregate)
	return nil
}

// Get retrieves a client by phone number, including its addresses.
func (r *GormClientRepository) Get(ctx context.Context, phone kernel.Phone) (*client.Client, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a client with the given phone number is stored.
func (r *GormClientRepository) Exists(ctx context.Context, phone kernel.Phone) (bool, error) {
	if err := phone.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ClientDTO{}).
		Where("phone = ?", phone.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
