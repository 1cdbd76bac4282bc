// Package http exposes the dispatch and settlement use cases over a REST
// API built on echo. Handlers translate between transport DTOs and
// commands/queries; no business rules live here.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	registerCourierHandler      commands.RegisterCourierCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	dispatchOrderHandler        commands.DispatchOrderCommandHandler
	acceptDeliveryHandler       commands.AcceptDeliveryCommandHandler
	pickUpDeliveryHandler       commands.PickUpDeliveryCommandHandler
	startTransitHandler         commands.StartTransitCommandHandler
	markArrivedHandler          commands.MarkArrivedCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler       commands.CancelDeliveryCommandHandler
	reassignDeliveryHandler     commands.ReassignDeliveryCommandHandler
	distributeCommissionHandler commands.DistributeCommissionCommandHandler
	topUpWalletHandler          commands.TopUpWalletCommandHandler
	withdrawFromWalletHandler   commands.WithdrawFromWalletCommandHandler

	getOpenDeliveriesHandler  queries.GetOpenDeliveriesQueryHandler
	getWalletStatementHandler queries.GetWalletStatementQueryHandler
}

// NewServer creates the HTTP server with all required handlers.
func NewServer(
	registerCourierHandler commands.RegisterCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	pickUpDeliveryHandler commands.PickUpDeliveryCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	reassignDeliveryHandler commands.ReassignDeliveryCommandHandler,
	distributeCommissionHandler commands.DistributeCommissionCommandHandler,
	topUpWalletHandler commands.TopUpWalletCommandHandler,
	withdrawFromWalletHandler commands.WithdrawFromWalletCommandHandler,
	getOpenDeliveriesHandler queries.GetOpenDeliveriesQueryHandler,
	getWalletStatementHandler queries.GetWalletStatementQueryHandler,
) *Server {
	return &Server{
		registerCourierHandler:      registerCourierHandler,
		createOrderHandler:          createOrderHandler,
		dispatchOrderHandler:        dispatchOrderHandler,
		acceptDeliveryHandler:       acceptDeliveryHandler,
		pickUpDeliveryHandler:       pickUpDeliveryHandler,
		startTransitHandler:         startTransitHandler,
		markArrivedHandler:          markArrivedHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		cancelDeliveryHandler:       cancelDeliveryHandler,
		reassignDeliveryHandler:     reassignDeliveryHandler,
		distributeCommissionHandler: distributeCommissionHandler,
		topUpWalletHandler:          topUpWalletHandler,
		withdrawFromWalletHandler:   withdrawFromWalletHandler,
		getOpenDeliveriesHandler:    getOpenDeliveriesHandler,
		getWalletStatementHandler:   getWalletStatementHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/couriers", s.RegisterCourier)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	api.POST("/orders/:orderID/commission", s.DistributeCommission)

	api.GET("/deliveries/open", s.GetOpenDeliveries)
	api.POST("/deliveries/:deliveryID/accept", s.AcceptDelivery)
	api.POST("/deliveries/:deliveryID/pickup", s.PickUpDelivery)
	api.POST("/deliveries/:deliveryID/transit", s.StartTransit)
	api.POST("/deliveries/:deliveryID/arrived", s.MarkArrived)
	api.POST("/deliveries/:deliveryID/complete", s.CompleteDelivery)
	api.POST("/deliveries/:deliveryID/cancel", s.CancelDelivery)
	api.POST("/deliveries/:deliveryID/reassign", s.ReassignDelivery)

	api.POST("/wallets/top-up", s.TopUpWallet)
	api.POST("/wallets/withdraw", s.WithdrawFromWallet)
	api.GET("/wallets/:walletID/statement", s.GetWalletStatement)
}

// ErrorResponse is the wire shape of every error this API returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// handlerError maps use-case failures onto HTTP statuses: missing
// aggregates to 404, authorization to 403, state conflicts to 409,
// everything else to 500.
func handlerError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, delivery.ErrActorNotAllowed),
		errors.Is(err, delivery.ErrConfirmationCodeMismatch):
		code = http.StatusForbidden
	case errors.Is(err, commands.ErrAlreadyAssigned),
		errors.Is(err, commands.ErrOrderNotReady),
		errors.Is(err, commands.ErrCourierNotAssignable),
		errors.Is(err, commands.ErrOrderNotDelivered),
		errors.Is(err, services.ErrNoCourierAvailable),
		errors.Is(err, services.ErrNoPharmacyLocation),
		errors.Is(err, delivery.ErrReassignRequiresPending),
		errors.Is(err, wallet.ErrInsufficientBalance):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// NewCourierRequest is the payload for courier registration.
type NewCourierRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req NewCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(courierID, req.Name, kernel.VehicleType(req.Vehicle))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": courierID.String()})
}

// NewOrderRequest is the payload for order intake.
type NewOrderRequest struct {
	Reference        string  `json:"reference"`
	PharmacyID       string  `json:"pharmacy_id"`
	CustomerID       string  `json:"customer_id"`
	Total            string  `json:"total"`
	Currency         string  `json:"currency"`
	DeliveryAddress  string  `json:"delivery_address"`
	DropoffLat       float64 `json:"dropoff_lat"`
	DropoffLon       float64 `json:"dropoff_lon"`
	ConfirmationCode string  `json:"confirmation_code"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	pharmacyID, err := kernel.UUIDFromString(req.PharmacyID)
	if err != nil {
		return badRequest(ctx, err)
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}
	total, err := kernel.NewMoneyFromString(req.Total, req.Currency)
	if err != nil {
		return badRequest(ctx, err)
	}
	dropoff, err := kernel.NewGeoPoint(req.DropoffLat, req.DropoffLon)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.Reference,
		pharmacyID,
		customerID,
		total,
		req.DeliveryAddress,
		dropoff,
		req.ConfirmationCode,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// DispatchRequest optionally names a courier for manual assignment. An
// empty body lets the engine pick.
type DispatchRequest struct {
	CourierID string `json:"courier_id,omitempty"`
}

// DeliveryResponse is the wire shape of a created delivery.
type DeliveryResponse struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"order_id"`
	CourierID        string  `json:"courier_id,omitempty"`
	Status           string  `json:"status"`
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Fee              string  `json:"fee"`
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req DispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var cmd commands.DispatchOrderCommand
	if req.CourierID != "" {
		courierID, cErr := kernel.UUIDFromString(req.CourierID)
		if cErr != nil {
			return badRequest(ctx, cErr)
		}
		cmd, err = commands.NewDispatchOrderToCourierCommand(orderID, courierID)
	} else {
		cmd, err = commands.NewDispatchOrderCommand(orderID)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	d, err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	resp := DeliveryResponse{
		ID:               d.ID().String(),
		OrderID:          d.OrderID().String(),
		Status:           d.Status().String(),
		DistanceKm:       d.DistanceKm(),
		EstimatedMinutes: d.EstimatedMinutes(),
		Fee:              d.Fee().String(),
	}
	if courierID := d.CourierID(); courierID != nil {
		resp.CourierID = courierID.String()
	}

	return ctx.JSON(http.StatusCreated, resp)
}

// CourierActionRequest identifies the courier performing a lifecycle
// action on a delivery.
type CourierActionRequest struct {
	CourierID string `json:"courier_id"`
}

func (s *Server) courierAction(
	ctx echo.Context,
	handle func(deliveryID, courierID kernel.UUID) error,
) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CourierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := handle(deliveryID, courierID); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/deliveries/:deliveryID/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	return s.courierAction(ctx, func(deliveryID, courierID kernel.UUID) error {
		cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, courierID)
		if err != nil {
			return err
		}
		return s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// PickUpDelivery handles POST /api/v1/deliveries/:deliveryID/pickup.
func (s *Server) PickUpDelivery(ctx echo.Context) error {
	return s.courierAction(ctx, func(deliveryID, courierID kernel.UUID) error {
		cmd, err := commands.NewPickUpDeliveryCommand(deliveryID, courierID)
		if err != nil {
			return err
		}
		return s.pickUpDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartTransit handles POST /api/v1/deliveries/:deliveryID/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	return s.courierAction(ctx, func(deliveryID, courierID kernel.UUID) error {
		cmd, err := commands.NewStartTransitCommand(deliveryID, courierID)
		if err != nil {
			return err
		}
		return s.startTransitHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkArrived handles POST /api/v1/deliveries/:deliveryID/arrived.
func (s *Server) MarkArrived(ctx echo.Context) error {
	return s.courierAction(ctx, func(deliveryID, courierID kernel.UUID) error {
		cmd, err := commands.NewMarkArrivedCommand(deliveryID, courierID)
		if err != nil {
			return err
		}
		return s.markArrivedHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDeliveryRequest carries the hand-over confirmation code.
type CompleteDeliveryRequest struct {
	CourierID string `json:"courier_id"`
	Code      string `json:"code"`
}

// CompleteDelivery handles POST /api/v1/deliveries/:deliveryID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, courierID, req.Code)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDeliveryRequest carries the cancellation reason. CourierID is
// empty for an operator cancellation.
type CancelDeliveryRequest struct {
	CourierID string `json:"courier_id,omitempty"`
	Reason    string `json:"reason"`
}

// CancelDelivery handles POST /api/v1/deliveries/:deliveryID/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CancelDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var cmd commands.CancelDeliveryCommand
	if req.CourierID != "" {
		courierID, cErr := kernel.UUIDFromString(req.CourierID)
		if cErr != nil {
			return badRequest(ctx, cErr)
		}
		cmd, err = commands.NewCancelDeliveryCommand(deliveryID, courierID, req.Reason)
	} else {
		cmd, err = commands.NewAdminCancelDeliveryCommand(deliveryID, req.Reason)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignDelivery handles POST /api/v1/deliveries/:deliveryID/reassign.
func (s *Server) ReassignDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReassignDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.reassignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CommissionResponse is the wire shape of a distributed commission.
type CommissionResponse struct {
	ID      string                   `json:"id"`
	OrderID string                   `json:"order_id"`
	Total   string                   `json:"total"`
	Lines   []CommissionLineResponse `json:"lines"`
}

// CommissionLineResponse is one actor's share of a commission.
type CommissionLineResponse struct {
	Actor  string `json:"actor"`
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
}

// DistributeCommission handles POST /api/v1/orders/:orderID/commission.
func (s *Server) DistributeCommission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDistributeCommissionCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	c, err := s.distributeCommissionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	resp := CommissionResponse{
		ID:      c.ID().String(),
		OrderID: c.OrderID().String(),
		Total:   c.Total().String(),
		Lines:   make([]CommissionLineResponse, 0, len(c.Lines())),
	}
	for _, line := range c.Lines() {
		resp.Lines = append(resp.Lines, CommissionLineResponse{
			Actor:  string(line.Actor()),
			Rate:   line.Rate().String(),
			Amount: line.Amount().String(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// WalletMovementRequest is the payload for top-ups and withdrawals.
type WalletMovementRequest struct {
	OwnerKind string `json:"owner_kind"`
	OwnerID   string `json:"owner_id,omitempty"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

// TransactionResponse is the wire shape of a ledger entry.
type TransactionResponse struct {
	ID           string `json:"id"`
	WalletID     string `json:"wallet_id"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	Reference    string `json:"reference"`
	Category     string `json:"category"`
}

func ownerFromRequest(req WalletMovementRequest) (wallet.Owner, error) {
	switch wallet.OwnerKind(req.OwnerKind) {
	case wallet.OwnerKindPlatform:
		return wallet.PlatformOwner(), nil
	case wallet.OwnerKindCourier:
		id, err := kernel.UUIDFromString(req.OwnerID)
		if err != nil {
			return wallet.Owner{}, err
		}
		return wallet.CourierOwner(id)
	case wallet.OwnerKindPharmacy:
		id, err := kernel.UUIDFromString(req.OwnerID)
		if err != nil {
			return wallet.Owner{}, err
		}
		return wallet.PharmacyOwner(id)
	default:
		return wallet.Owner{}, errs.NewValueIsInvalidError("owner_kind")
	}
}

func transactionResponse(tx *wallet.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID().String(),
		WalletID:     tx.WalletID().String(),
		Type:         string(tx.Type()),
		Amount:       tx.Amount().String(),
		BalanceAfter: tx.BalanceAfter().String(),
		Reference:    tx.Reference(),
		Category:     tx.Category(),
	}
}

// TopUpWallet handles POST /api/v1/wallets/top-up.
func (s *Server) TopUpWallet(ctx echo.Context) error {
	var req WalletMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	owner, err := ownerFromRequest(req)
	if err != nil {
		return badRequest(ctx, err)
	}
	amount, err := kernel.NewMoneyFromString(req.Amount, req.Currency)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewTopUpWalletCommand(owner, amount, req.Reference)
	if err != nil {
		return badRequest(ctx, err)
	}

	tx, err := s.topUpWalletHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transactionResponse(tx))
}

// WithdrawFromWallet handles POST /api/v1/wallets/withdraw.
func (s *Server) WithdrawFromWallet(ctx echo.Context) error {
	var req WalletMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	owner, err := ownerFromRequest(req)
	if err != nil {
		return badRequest(ctx, err)
	}
	amount, err := kernel.NewMoneyFromString(req.Amount, req.Currency)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewWithdrawFromWalletCommand(owner, amount, req.Reference)
	if err != nil {
		return badRequest(ctx, err)
	}

	tx, err := s.withdrawFromWalletHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transactionResponse(tx))
}

// OpenDeliveryResponse is the wire shape of one open delivery.
type OpenDeliveryResponse struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"order_id"`
	CourierID        string  `json:"courier_id,omitempty"`
	Status           string  `json:"status"`
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Fee              string  `json:"fee"`
	WaitingOpen      bool    `json:"waiting_open"`
	CreatedAt        string  `json:"created_at"`
}

// GetOpenDeliveries handles GET /api/v1/deliveries/open.
func (s *Server) GetOpenDeliveries(ctx echo.Context) error {
	query := queries.NewGetOpenDeliveriesQuery()

	deliveries, err := s.getOpenDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]OpenDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		resp := OpenDeliveryResponse{
			ID:               d.ID.String(),
			OrderID:          d.OrderID.String(),
			Status:           d.Status,
			DistanceKm:       d.DistanceKm,
			EstimatedMinutes: d.EstimatedMinutes,
			Fee:              d.Fee.String(),
			WaitingOpen:      d.WaitingOpen,
			CreatedAt:        d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if d.CourierID != nil {
			resp.CourierID = d.CourierID.String()
		}
		response = append(response, resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// WalletStatementResponse is the wire shape of a wallet statement.
type WalletStatementResponse struct {
	WalletID  string                `json:"wallet_id"`
	OwnerKind string                `json:"owner_kind"`
	OwnerID   string                `json:"owner_id,omitempty"`
	Balance   string                `json:"balance"`
	Entries   []TransactionResponse `json:"entries"`
}

// GetWalletStatement handles GET /api/v1/wallets/:walletID/statement.
func (s *Server) GetWalletStatement(ctx echo.Context) error {
	walletID, err := pathUUID(ctx, "walletID")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWalletStatementQuery(walletID)
	if err != nil {
		return badRequest(ctx, err)
	}

	statement, err := s.getWalletStatementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	resp := WalletStatementResponse{
		WalletID:  statement.WalletID.String(),
		OwnerKind: statement.OwnerKind,
		Balance:   statement.Balance.String(),
		Entries:   make([]TransactionResponse, 0, len(statement.Entries)),
	}
	if statement.OwnerID != nil {
		resp.OwnerID = statement.OwnerID.String()
	}
	for _, entry := range statement.Entries {
		resp.Entries = append(resp.Entries, TransactionResponse{
			ID:           entry.ID.String(),
			WalletID:     statement.WalletID.String(),
			Type:         entry.Type,
			Amount:       entry.Amount.String(),
			BalanceAfter: entry.BalanceAfter.String(),
			Reference:    entry.Reference,
			Category:     entry.Category,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}
