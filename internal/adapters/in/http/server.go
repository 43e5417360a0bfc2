package http

import (
	"errors"
	"net/http"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/application/usecases/queries"
	"parcelrelay/internal/core/domain/model/address"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerAccountHandler commands.RegisterAccountCommandHandler
	createAddressHandler   commands.CreateAddressCommandHandler
	createParcelHandler    commands.CreateParcelCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler
	finishOrderHandler     commands.FinishOrderCommandHandler

	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getMyDeliveriesHandler    queries.GetMyDeliveriesQueryHandler
	getMyParcelsHandler       queries.GetMyParcelsQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createAddressHandler commands.CreateAddressCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getMyDeliveriesHandler queries.GetMyDeliveriesQueryHandler,
	getMyParcelsHandler queries.GetMyParcelsQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:    registerAccountHandler,
		createAddressHandler:      createAddressHandler,
		createParcelHandler:       createParcelHandler,
		claimOrderHandler:         claimOrderHandler,
		finishOrderHandler:        finishOrderHandler,
		getAvailableOrdersHandler: getAvailableOrdersHandler,
		getMyDeliveriesHandler:    getMyDeliveriesHandler,
		getMyParcelsHandler:       getMyParcelsHandler,
		validate:                  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes binds all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/accounts", s.RegisterAccount)
	api.POST("/addresses", s.CreateAddress)
	api.POST("/parcels", s.CreateParcel)
	api.POST("/orders/:orderId/claim", s.ClaimOrder)
	api.POST("/orders/:orderId/finish", s.FinishOrder)

	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/accounts/:accountId/deliveries", s.GetMyDeliveries)
	api.GET("/accounts/:accountId/parcels", s.GetMyParcels)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// RegisterAccount handles POST /api/v1/accounts - registers a new account.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, err)
	}

	var homeAddressID *kernel.UUID
	if req.AddressID != nil {
		id, err := kernel.UUIDFromString(*req.AddressID)
		if err != nil {
			return badRequest(ctx, "Invalid address ID")
		}
		homeAddressID = &id
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(accountID, req.Name, req.Email, homeAddressID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterAccountResponse{ID: accountID.String()})
}

// CreateAddress handles POST /api/v1/addresses - registers a new address.
func (s *Server) CreateAddress(ctx echo.Context) error {
	var req CreateAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, err)
	}

	var geo *kernel.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return unprocessable(ctx, err)
		}
		geo = &point
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(addressID, address.PostalFields{
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		PostalCode:  req.PostalCode,
		City:        req.City,
		Country:     req.Country,
	}, geo)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err := s.createAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateAddressResponse{ID: addressID.String()})
}

// CreateParcel handles POST /api/v1/parcels - posts a parcel together with
// its initial relay order.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, err)
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, "Invalid sender ID")
	}
	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest(ctx, "Invalid receiver ID")
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationAddressID)
	if err != nil {
		return badRequest(ctx, "Invalid destination address ID")
	}
	var fromAddressID *kernel.UUID
	if req.FromAddressID != nil {
		id, err := kernel.UUIDFromString(*req.FromAddressID)
		if err != nil {
			return badRequest(ctx, "Invalid pickup address ID")
		}
		fromAddressID = &id
	}
	parcelType, err := parcel.TypeFromString(req.Type)
	if err != nil {
		return unprocessable(ctx, err)
	}

	parcelID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		orderID,
		senderID,
		receiverID,
		destinationID,
		fromAddressID,
		req.Weight,
		parcelType,
		req.Description,
	)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ParcelID: parcelID.String(),
		OrderID:  orderID.String(),
	})
}

// ClaimOrder handles POST /api/v1/orders/:orderId/claim - claims an order
// for a courier. Exactly one of several concurrent claims succeeds.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ClaimOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishOrder handles POST /api/v1/orders/:orderId/finish - completes a
// claimed order. Only the claiming courier may finish it.
func (s *Server) FinishOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req FinishOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return unprocessable(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	cmd, err := commands.NewFinishOrderCommand(orderID, courierID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err := s.finishOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available - lists orders
// that no courier has claimed yet.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve available orders")
	}

	response := make([]AvailableOrder, len(orders))
	for i, o := range orders {
		var toAddressID *string
		if o.ToAddressID != nil {
			id := o.ToAddressID.String()
			toAddressID = &id
		}

		response[i] = AvailableOrder{
			OrderID:       o.OrderID.String(),
			ParcelID:      o.ParcelID.String(),
			FromAddressID: o.FromAddressID.String(),
			ToAddressID:   toAddressID,
			Weight:        o.Weight,
			Type:          o.ParcelType.String(),
			Description:   o.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyDeliveries handles GET /api/v1/accounts/:accountId/deliveries -
// lists a courier's active and past deliveries.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("accountId"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID")
	}

	query, err := queries.NewGetMyDeliveriesQuery(courierID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	deliveries, err := s.getMyDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	return ctx.JSON(http.StatusOK, DeliveriesResponse{
		Active: toDeliveries(deliveries.Active),
		Past:   toDeliveries(deliveries.Past),
	})
}

// GetMyParcels handles GET /api/v1/accounts/:accountId/parcels - lists a
// sender's parcels grouped by delivery progress.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	senderID, err := kernel.UUIDFromString(ctx.Param("accountId"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID")
	}

	query, err := queries.NewGetMyParcelsQuery(senderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	parcels, err := s.getMyParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve parcels")
	}

	return ctx.JSON(http.StatusOK, ParcelsResponse{
		AwaitingDelivery: toParcels(parcels.AwaitingDelivery),
		InDelivery:       toParcels(parcels.InDelivery),
		Delivered:        toParcels(parcels.Delivered),
	})
}

func toDeliveries(items []queries.DeliveryResponse) []Delivery {
	result := make([]Delivery, len(items))
	for i, d := range items {
		result[i] = Delivery{
			OrderID:     d.OrderID.String(),
			ParcelID:    d.ParcelID.String(),
			Description: d.Description,
			Weight:      d.Weight,
			StartedAt:   d.StartedAt,
			FinishedAt:  d.FinishedAt,
		}
	}
	return result
}

func toParcels(items []queries.ParcelResponse) []Parcel {
	result := make([]Parcel, len(items))
	for i, p := range items {
		result[i] = Parcel{
			ParcelID:             p.ParcelID.String(),
			ReceiverID:           p.ReceiverID.String(),
			DestinationAddressID: p.DestinationAddressID.String(),
			Weight:               p.Weight,
			Type:                 p.ParcelType.String(),
			Description:          p.Description,
			Status:               p.Status.String(),
		}
	}
	return result
}

// commandError maps application and domain errors to HTTP status codes.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrOrderAlreadyClaimed),
		errors.Is(err, commands.ErrOrderAlreadyFinished),
		errors.Is(err, commands.ErrOrderNotClaimed):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, commands.ErrSenderSelfClaimNotAllowed):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, commands.ErrSenderHasNoAddress),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func unprocessable(ctx echo.Context, err error) error {
	return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
}

func internalError(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusInternalServerError, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
