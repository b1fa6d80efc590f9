package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// newAddressPayload is a delivery address supplied inline with an order,
// or the first address of a brand-new client.
type newAddressPayload struct {
	Street string `json:"street" validate:"required,max=255"`
	ZoneID string `json:"zoneId" validate:"required,uuid"`
}

// itemPayload is one product selection on an order request.
type itemPayload struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// createOrderRequest carries everything order creation needs. The client
// fields beyond the phone are only read when the phone is unknown and a
// client is created inline.
type createOrderRequest struct {
	ClientPhone    string             `json:"clientPhone" validate:"required,numeric,max=32"`
	ClientName     string             `json:"clientName,omitempty" validate:"max=255"`
	ClientKind     string             `json:"clientKind,omitempty" validate:"omitempty,oneof=individual business"`
	LegalName      string             `json:"legalName,omitempty" validate:"max=255"`
	TaxID          string             `json:"taxId,omitempty" validate:"max=64"`
	ClientDiscount decimal.Decimal    `json:"clientDiscount,omitempty"`
	DeliveryName   string             `json:"deliveryName" validate:"required,max=255"`
	NewAddress     *newAddressPayload `json:"newAddress,omitempty"`
	AddressID      *string            `json:"addressId,omitempty" validate:"omitempty,uuid"`
	Items          []itemPayload      `json:"items" validate:"required,min=1,dive"`
	PaymentMethod  string             `json:"paymentMethod" validate:"required,oneof=pos cash transfer"`
	Notes          string             `json:"notes,omitempty" validate:"max=500"`
}

// createdResponse returns the identifier assigned to a newly created resource.
type createdResponse struct {
	ID string `json:"id"`
}

// assignDriverRequest selects the driver for an order.
type assignDriverRequest struct {
	DriverPhone string `json:"driverPhone" validate:"required,numeric,max=32"`
}

// changePaymentRequest amends how an order is paid.
type changePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=pos cash transfer"`
}

// createClientRequest registers a client together with its first address.
type createClientRequest struct {
	Phone     string            `json:"phone" validate:"required,numeric,max=32"`
	Name      string            `json:"name" validate:"required,max=255"`
	Kind      string            `json:"kind,omitempty" validate:"omitempty,oneof=individual business"`
	LegalName string            `json:"legalName,omitempty" validate:"max=255"`
	TaxID     string            `json:"taxId,omitempty" validate:"max=64"`
	Discount  decimal.Decimal   `json:"discount,omitempty"`
	Address   newAddressPayload `json:"address" validate:"required"`
}

// createZoneRequest registers a delivery zone with its flat cost.
type createZoneRequest struct {
	Name string          `json:"name" validate:"required,max=255"`
	Cost decimal.Decimal `json:"cost" validate:"required"`
}

// createProductRequest registers a catalog product.
type createProductRequest struct {
	Code        string          `json:"code" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description,omitempty" validate:"max=1000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	TaxPercent  decimal.Decimal `json:"taxPercent,omitempty"`
}

// createDriverRequest registers a driver.
type createDriverRequest struct {
	Phone string `json:"phone" validate:"required,numeric,max=32"`
	Name  string `json:"name" validate:"required,max=255"`
}

// createLoanRequest registers a book loan.
type createLoanRequest struct {
	BookID               string    `json:"bookId" validate:"required,uuid"`
	MemberID             string    `json:"memberId" validate:"required,uuid"`
	LoanDate             time.Time `json:"loanDate" validate:"required"`
	StipulatedReturnDate time.Time `json:"stipulatedReturnDate" validate:"required"`
}

// returnLoanRequest records a loan return. When the timestamp is omitted the
// server's current time is used.
type returnLoanRequest struct {
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

// unassignedOrderResponse is one order waiting for a driver.
type unassignedOrderResponse struct {
	ID            string    `json:"id"`
	ClientPhone   string    `json:"clientPhone"`
	DeliveryName  string    `json:"deliveryName"`
	Street        string    `json:"street"`
	ZoneName      string    `json:"zoneName"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// paymentMethodRevenueResponse is one payment method's share of a day.
type paymentMethodRevenueResponse struct {
	PaymentMethod string `json:"paymentMethod"`
	OrderCount    int    `json:"orderCount"`
	Total         string `json:"total"`
}

// dailyRevenueResponse is the revenue report for one calendar day.
type dailyRevenueResponse struct {
	Day        string                         `json:"day"`
	OrderCount int                            `json:"orderCount"`
	Total      string                         `json:"total"`
	ByMethod   []paymentMethodRevenueResponse `json:"byMethod"`
}

// overdueLoanResponse is one loan out past its due date.
type overdueLoanResponse struct {
	ID                   string    `json:"id"`
	BookID               string    `json:"bookId"`
	MemberID             string    `json:"memberId"`
	LoanDate             time.Time `json:"loanDate"`
	StipulatedReturnDate time.Time `json:"stipulatedReturnDate"`
	DaysOverdue          int       `json:"daysOverdue"`
}
