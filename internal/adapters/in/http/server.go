// Package http implements the inbound HTTP adapter: the generated
// ServerInterface backed by command and query handlers, the JWT principal
// middleware and the mapping of application errors onto status codes.
package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements servers.ServerInterface, coordinating between HTTP
// requests and application use cases.
type Server struct {
	// Command handlers
	addDishToCartHandler commands.AddDishToCartCommandHandler
	checkoutHandler      commands.CheckoutCommandHandler
	markPreparedHandler  commands.MarkPreparedCommandHandler
	takeOrderHandler     commands.TakeOrderCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	addBalanceHandler    commands.AddBalanceCommandHandler
	createDishHandler    commands.CreateDishCommandHandler

	// Query handlers
	getCartHandler             queries.GetCartQueryHandler
	getAllDishesHandler        queries.GetAllDishesQueryHandler
	getClaimableOrdersHandler  queries.GetClaimableOrdersQueryHandler
	getUnpreparedOrdersHandler queries.GetUnpreparedOrdersQueryHandler
	getCourierOrdersHandler    queries.GetCourierOrdersQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	addDishToCartHandler commands.AddDishToCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	markPreparedHandler commands.MarkPreparedCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	addBalanceHandler commands.AddBalanceCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getAllDishesHandler queries.GetAllDishesQueryHandler,
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler,
	getUnpreparedOrdersHandler queries.GetUnpreparedOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		addDishToCartHandler:       addDishToCartHandler,
		checkoutHandler:            checkoutHandler,
		markPreparedHandler:        markPreparedHandler,
		takeOrderHandler:           takeOrderHandler,
		markDeliveredHandler:       markDeliveredHandler,
		addBalanceHandler:          addBalanceHandler,
		createDishHandler:          createDishHandler,
		getCartHandler:             getCartHandler,
		getAllDishesHandler:        getAllDishesHandler,
		getClaimableOrdersHandler:  getClaimableOrdersHandler,
		getUnpreparedOrdersHandler: getUnpreparedOrdersHandler,
		getCourierOrdersHandler:    getCourierOrdersHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetDishes handles GET /api/v1/dishes - the public menu.
func (s *Server) GetDishes(ctx echo.Context) error {
	dishes, err := s.getAllDishesHandler.Handle(ctx.Request().Context(), queries.NewGetAllDishesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Dish, len(dishes))
	for i, d := range dishes {
		response[i] = servers.Dish{
			Id:              d.ID.Bytes(),
			Name:            d.Name,
			Price:           d.Price,
			Weight:          d.Weight,
			Category:        d.Category,
			PrepTimeMinutes: d.PrepTimeMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDish handles POST /api/v1/dishes - adds a dish to the menu.
func (s *Server) CreateDish(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, account.RoleAdmin); err != nil {
		return respondError(ctx, err)
	}

	var newDish servers.NewDish
	if err := ctx.Bind(&newDish); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	prepTimeMinutes := 0
	if newDish.PrepTimeMinutes != nil {
		prepTimeMinutes = *newDish.PrepTimeMinutes
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		dishID, newDish.Name, newDish.Price, newDish.Weight, newDish.Category, prepTimeMinutes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResponse{Id: dishID.Bytes()})
}

// GetCart handles GET /api/v1/cart - the caller's cart with totals.
func (s *Server) GetCart(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]servers.CartItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = servers.CartItem{
			DishId:   item.DishID.Bytes(),
			Name:     item.Name,
			Price:    item.Price,
			Weight:   item.Weight,
			Quantity: item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Cart{
		Items:       items,
		TotalPrice:  result.TotalPrice,
		TotalWeight: result.TotalWeight,
	})
}

// AddDishToCart handles POST /api/v1/cart/add-dish.
func (s *Server) AddDishToCart(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	var request servers.AddDishRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	dishID, err := kernel.UUIDFromBytes(request.DishId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDishToCartCommand(principal.ID, dishID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addDishToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/cart/create-order - turns the caller's cart
// into an order, debiting the balance and clearing the cart atomically.
func (s *Server) Checkout(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResponse{Id: orderID.Bytes()})
}

// GetClaimableOrders handles GET /api/v1/courier/orders/not_delivered.
func (s *Server) GetClaimableOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, account.RoleCourier); err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getClaimableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetClaimableOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCourierOrders handles GET /api/v1/courier/orders/mine.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	principal, err := s.requireRole(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierOrdersQuery(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// TakeOrder handles PUT /api/v1/courier/orders/{order_id}/take.
func (s *Server) TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, err := s.requireRole(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	// The body is optional: couriers without a fresh location fall back to
	// their stored one.
	var request servers.TakeOrderRequest
	if ctx.Request().ContentLength > 0 {
		if err = ctx.Bind(&request); err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("request body"))
		}
	}

	courierLocation := ""
	if request.CourierLocation != nil {
		courierLocation = *request.CourierLocation
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTakeOrderCommand(orderID, principal.ID, courierLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles PUT /api/v1/courier/orders/{order_id}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, err := s.requireRole(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnpreparedOrders handles GET /api/v1/kitchen_worker/orders/not_ready.
func (s *Server) GetUnpreparedOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, account.RoleKitchenWorker); err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUnpreparedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnpreparedOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// PrepareOrder handles PUT /api/v1/kitchen_worker/orders/{order_id}/prepare.
func (s *Server) PrepareOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, err := s.requireRole(ctx, account.RoleKitchenWorker)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPreparedCommand(orderID, principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markPreparedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddBalance handles POST /api/v1/customers/{customer_id}/balance.
// Customers may top up their own balance; admins anyone's.
func (s *Server) AddBalance(ctx echo.Context, customerId openapi_types.UUID) error {
	principal, err := s.requireRole(ctx, account.RoleCustomer, account.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	if principal.Role != account.RoleAdmin && !principal.ID.IsEqual(customerID) {
		return respondError(ctx, errs.NewForbiddenError("cannot top up another customer's balance"))
	}

	var request servers.AddBalanceRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewAddBalanceCommand(customerID, request.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addBalanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllOrders handles GET /api/v1/orders - the admin listing.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, account.RoleAdmin); err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// requireRole returns the authenticated principal when it holds one of the
// allowed roles.
func (s *Server) requireRole(ctx echo.Context, roles ...account.Role) (Principal, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return Principal{}, err
	}

	for _, role := range roles {
		if principal.Role == role {
			return principal, nil
		}
	}

	return Principal{}, errs.NewForbiddenError("insufficient role for this operation")
}

func toOrderResponses(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		item := servers.Order{
			Id:                     o.ID.Bytes(),
			CustomerId:             o.CustomerID.Bytes(),
			Price:                  o.Price,
			Weight:                 o.Weight,
			Address:                o.Address,
			Status:                 o.Status,
			IsPrepared:             o.IsPrepared,
			IsDelivered:            o.IsDelivered,
			TimeOfCreation:         o.TimeOfCreation,
			ExpectedTimeOfDelivery: o.ExpectedTimeOfDelivery,
			TimeOfDelivery:         o.TimeOfDelivery,
		}

		if o.CourierID != nil {
			raw := o.CourierID.Bytes()
			item.CourierId = &raw
		}

		response[i] = item
	}

	return response
}
