// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"pedidos/internal/core/domain/model/driver"
	"pedidos/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting drivers.
// The digit-only phone number is the primary key; orders reference it
// directly in their driver_phone column.
type DriverDTO struct {
	Phone    string `gorm:"type:varchar(32);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	Archived bool   `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		Phone:    aggregate.Phone().String(),
		Name:     aggregate.Name(),
		Archived: aggregate.IsArchived(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(phone, dto.Name, dto.Archived)
}
