// Package zonerepo provides data transfer objects and mapping functions for zone persistence.
package zonerepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/zone"
)

// ZoneDTO represents the database structure for persisting delivery zones.
type ZoneDTO struct {
	ID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cost decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Cost: aggregate.Cost().Amount(),
	}
}

// toDomain converts a database DTO to a zone domain aggregate.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, cost)
}
