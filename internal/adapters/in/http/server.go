// Package http exposes the application's REST API. Handlers translate JSON
// payloads into commands and queries; every error is mapped to a status code
// by its category, so transport concerns never leak into the core.
package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

const dayLayout = "2006-01-02"

// Handlers bundles the command and query handlers the server exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AssignDriver       commands.AssignDriverCommandHandler
	UnassignDriver     commands.UnassignDriverCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	ChangeOrderPayment commands.ChangeOrderPaymentCommandHandler
	CreateClient       commands.CreateClientCommandHandler
	CreateZone         commands.CreateZoneCommandHandler
	CreateProduct      commands.CreateProductCommandHandler
	CreateDriver       commands.CreateDriverCommandHandler
	CreateLoan         commands.CreateLoanCommandHandler
	ReturnLoan         commands.ReturnLoanCommandHandler

	GetUnassignedOrders queries.GetUnassignedOrdersQueryHandler
	GetDailyRevenue     queries.GetDailyRevenueQueryHandler
	GetOverdueLoans     queries.GetOverdueLoansQueryHandler
}

// Server handles HTTP requests by coordinating with application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server around the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// payloadValidator adapts go-playground/validator to echo's Validator interface.
type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// RegisterRoutes installs the request validator and binds every endpoint
// under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &payloadValidator{validate: validator.New()}

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/assign", s.AssignDriver)
	api.POST("/orders/:id/unassign", s.UnassignDriver)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PATCH("/orders/:id/payment", s.ChangeOrderPayment)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/reports/daily-revenue", s.GetDailyRevenue)

	api.POST("/clients", s.CreateClient)
	api.POST("/zones", s.CreateZone)
	api.POST("/products", s.CreateProduct)
	api.POST("/drivers", s.CreateDriver)

	api.POST("/loans", s.CreateLoan)
	api.POST("/loans/:id/return", s.ReturnLoan)
	api.GET("/loans/overdue", s.GetOverdueLoans)
}

// CreateOrder handles POST /api/v1/orders.
// Creates the client inline when the phone is unknown; the whole composition
// is atomic, so a failed order never leaves a half-created client behind.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	clientPhone, err := kernel.NewPhone(req.ClientPhone)
	if err != nil {
		return writeError(ctx, err)
	}

	clientKind, err := client.KindFromString(req.ClientKind)
	if err != nil {
		return writeError(ctx, err)
	}

	clientDiscount, err := kernel.NewPercent(req.ClientDiscount)
	if err != nil {
		return writeError(ctx, err)
	}

	var newAddress *commands.NewDeliveryAddress
	if req.NewAddress != nil {
		zoneID, zoneErr := kernel.UUIDFromString(req.NewAddress.ZoneID)
		if zoneErr != nil {
			return writeError(ctx, zoneErr)
		}
		newAddress = &commands.NewDeliveryAddress{Street: req.NewAddress.Street, ZoneID: zoneID}
	}

	var chosenAddressID *kernel.UUID
	if req.AddressID != nil {
		addressID, addrErr := kernel.UUIDFromString(*req.AddressID)
		if addrErr != nil {
			return writeError(ctx, addrErr)
		}
		chosenAddressID = &addressID
	}

	selections := make([]commands.ItemSelection, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		quantity, itemErr := kernel.NewQuantity(item.Quantity)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		selections = append(selections, commands.ItemSelection{ProductID: productID, Quantity: quantity})
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, clientPhone, req.ClientName, clientKind,
		req.LegalName, req.TaxID, clientDiscount, req.DeliveryName, newAddress, chosenAddressID,
		selections, paymentMethod, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// AssignDriver handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDriverRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	driverPhone, err := kernel.NewPhone(req.DriverPhone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverPhone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignDriver handles POST /api/v1/orders/:id/unassign.
func (s *Server) UnassignDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnassignDriverCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UnassignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderPayment handles PATCH /api/v1/orders/:id/payment.
func (s *Server) ChangeOrderPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req changePaymentRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderPaymentCommand(orderID, paymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeOrderPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
// Only cancelled orders may be deleted; anything else is a conflict.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.handlers.GetUnassignedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]unassignedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = unassignedOrderResponse{
			ID:            o.ID.String(),
			ClientPhone:   o.ClientPhone,
			DeliveryName:  o.DeliveryName,
			Street:        o.Street,
			ZoneName:      o.ZoneName,
			Total:         o.Total.String(),
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDailyRevenue handles GET /api/v1/reports/daily-revenue.
// The optional day query parameter (YYYY-MM-DD) defaults to today.
func (s *Server) GetDailyRevenue(ctx echo.Context) error {
	day := time.Now()
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("day", err))
		}
		day = parsed
	}

	query, err := queries.NewGetDailyRevenueQuery(day)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.handlers.GetDailyRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	byMethod := make([]paymentMethodRevenueResponse, len(report.ByMethod))
	for i, m := range report.ByMethod {
		byMethod[i] = paymentMethodRevenueResponse{
			PaymentMethod: m.PaymentMethod,
			OrderCount:    m.OrderCount,
			Total:         m.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, dailyRevenueResponse{
		Day:        report.Day.Format(dayLayout),
		OrderCount: report.OrderCount,
		Total:      report.Total.String(),
		ByMethod:   byMethod,
	})
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req createClientRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	kind, err := client.KindFromString(req.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	discount, err := kernel.NewPercent(req.Discount)
	if err != nil {
		return writeError(ctx, err)
	}

	zoneID, err := kernel.UUIDFromString(req.Address.ZoneID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateClientCommand(phone, req.Name, kind, req.LegalName, req.TaxID,
		discount, req.Address.Street, zoneID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: phone.String()})
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req createZoneRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cost, err := kernel.NewMoney(req.Cost)
	if err != nil {
		return writeError(ctx, err)
	}

	zoneID := kernel.NewUUID()

	cmd, err := commands.NewCreateZoneCommand(zoneID, req.Name, cost)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: zoneID.String()})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	taxPercent, err := kernel.NewPercent(req.TaxPercent)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(productID, req.Code, req.Name, req.Description, price, taxPercent)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: productID.String()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(phone, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: phone.String()})
}

// CreateLoan handles POST /api/v1/loans.
func (s *Server) CreateLoan(ctx echo.Context) error {
	var req createLoanRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	bookID, err := kernel.UUIDFromString(req.BookID)
	if err != nil {
		return writeError(ctx, err)
	}

	memberID, err := kernel.UUIDFromString(req.MemberID)
	if err != nil {
		return writeError(ctx, err)
	}

	loanID := kernel.NewUUID()

	cmd, err := commands.NewCreateLoanCommand(loanID, bookID, memberID, req.LoanDate, req.StipulatedReturnDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateLoan.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: loanID.String()})
}

// ReturnLoan handles POST /api/v1/loans/:id/return.
func (s *Server) ReturnLoan(ctx echo.Context) error {
	loanID, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req returnLoanRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	returnedAt := time.Now()
	if req.ReturnedAt != nil {
		returnedAt = *req.ReturnedAt
	}

	cmd, err := commands.NewReturnLoanCommand(loanID, returnedAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ReturnLoan.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOverdueLoans handles GET /api/v1/loans/overdue.
// The optional today query parameter (YYYY-MM-DD) defaults to the server's
// current day.
func (s *Server) GetOverdueLoans(ctx echo.Context) error {
	today := time.Now()
	if raw := ctx.QueryParam("today"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("today", err))
		}
		today = parsed
	}

	query, err := queries.NewGetOverdueLoansQuery(today)
	if err != nil {
		return writeError(ctx, err)
	}

	loans, err := s.handlers.GetOverdueLoans.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]overdueLoanResponse, len(loans))
	for i, l := range loans {
		response[i] = overdueLoanResponse{
			ID:                   l.ID.String(),
			BookID:               l.BookID.String(),
			MemberID:             l.MemberID.String(),
			LoanDate:             l.LoanDate,
			StipulatedReturnDate: l.StipulatedReturnDate,
			DaysOverdue:          l.DaysOverdue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bind decodes and validates the request payload. Failures come back as
// validation-category errors, so writeError answers them with 400.
func bind(ctx echo.Context, payload any) error {
	if err := ctx.Bind(payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// pathUUID parses the :id path parameter. A malformed id comes back as a
// validation-category error, so writeError answers it with 400.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// writeError maps an error to its HTTP status by category: malformed input
// is 400, missing objects are 404, state and version conflicts are 409,
// everything else is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errs.IsValidation(err):
		status = http.StatusBadRequest
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	case errs.IsConflict(err):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
