// Package loanrepo provides data transfer objects and mapping functions for loan persistence.
// Only the three dates are stored; loan status is derived at read time and
// never written to the database.
package loanrepo

import (
	"time"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
)

// LoanDTO represents the database structure for persisting book loans.
type LoanDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	MemberID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	LoanDate             time.Time  `gorm:"not null"`
	StipulatedReturnDate time.Time  `gorm:"not null;index"`
	ActualReturnDate     *time.Time
}

// TableName specifies the database table name for loan entities.
func (LoanDTO) TableName() string {
	return "loans"
}

// fromDomain converts a loan domain aggregate to its database representation.
func fromDomain(aggregate *loan.Loan) LoanDTO {
	return LoanDTO{
		ID:                   aggregate.ID().Bytes(),
		BookID:               aggregate.BookID().Bytes(),
		MemberID:             aggregate.MemberID().Bytes(),
		LoanDate:             aggregate.LoanDate(),
		StipulatedReturnDate: aggregate.StipulatedReturnDate(),
		ActualReturnDate:     aggregate.ActualReturnDate(),
	}
}

// toDomain converts a database DTO to a loan domain aggregate.
func toDomain(dto LoanDTO) (*loan.Loan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	return loan.RestoreLoan(id, bookID, memberID, dto.LoanDate, dto.StipulatedReturnDate, dto.ActualReturnDate)
}
