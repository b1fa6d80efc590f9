// Package clientrepo provides data transfer objects and mapping functions for client persistence.
// This package implements the repository pattern for the client domain aggregate, handling
// the conversion between domain entities and database representations.
package clientrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client aggregates.
// The digit-only phone number is the primary key; delivery addresses live in
// their own table and are loaded together with the client row.
type ClientDTO struct {
	Phone     string          `gorm:"type:varchar(32);primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Kind      string          `gorm:"type:varchar(16);not null"`
	LegalName string          `gorm:"type:varchar(255)"`
	TaxID     string          `gorm:"type:varchar(64)"`
	Discount  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Archived  bool            `gorm:"not null"`
	Addresses []AddressDTO    `gorm:"foreignKey:ClientPhone;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for client entities.
// Overrides GORM's default naming convention to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// AddressDTO represents one delivery address owned by a client.
// Links to the client via its phone number and references the zone the
// street belongs to.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientPhone string    `gorm:"type:varchar(32);not null;index"`
	Street      string    `gorm:"type:varchar(255);not null"`
	ZoneID      uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "client_addresses"
}

// fromDomain converts a client domain aggregate to its database representation.
// Maps the invoicing fields and every owned address.
func fromDomain(aggregate *client.Client) ClientDTO {
	phone := aggregate.Phone().String()

	addresses := make([]AddressDTO, 0, len(aggregate.Addresses()))
	for _, a := range aggregate.Addresses() {
		addresses = append(addresses, AddressDTO{
			ID:          a.ID().Bytes(),
			ClientPhone: phone,
			Street:      a.Street(),
			ZoneID:      a.ZoneID().Bytes(),
		})
	}

	return ClientDTO{
		Phone:     phone,
		Name:      aggregate.Name(),
		Kind:      aggregate.Kind().String(),
		LegalName: aggregate.LegalName(),
		TaxID:     aggregate.TaxID(),
		Discount:  aggregate.Discount().Value(),
		Archived:  aggregate.IsArchived(),
		Addresses: addresses,
	}
}

// toDomain converts a database DTO to a client domain aggregate.
// Reconstructs the complete aggregate including all addresses using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	kind, err := client.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewPercent(dto.Discount)
	if err != nil {
		return nil, err
	}

	addresses := make([]*client.Address, 0, len(dto.Addresses))
	for _, aDto := range dto.Addresses {
		a, aErr := addressToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		addresses = append(addresses, a)
	}

	return client.RestoreClient(phone, dto.Name, kind, dto.LegalName, dto.TaxID,
		discount, dto.Archived, addresses)
}

// addressToDomain converts an address DTO to a domain entity.
func addressToDomain(dto AddressDTO) (*client.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreAddress(id, dto.Street, zoneID)
}
