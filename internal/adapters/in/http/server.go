// Package http exposes the ordering system over a REST API.
// Handlers translate between JSON and commands/queries; every business rule
// stays in the application and domain layers.
package http

import (
	"fmt"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	RemoveMenuItem    commands.RemoveMenuItemCommandHandler
	RenameCategory    commands.RenameCategoryCommandHandler
	CreateUser        commands.CreateUserCommandHandler
	UpdateUser        commands.UpdateUserCommandHandler

	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	TrackOrder     queries.TrackOrderQueryHandler
	GetMenu        queries.GetMenuQueryHandler
	GetUsers       queries.GetUsersQueryHandler
	GetSalesReport queries.GetSalesReportQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers  Handlers
	menuCache ports.MenuCache
	jwtSecret string
	baseURL   string
}

// NewServer creates the HTTP server. baseURL is the externally reachable
// address used in tracking links and QR codes; the cache is invalidated
// after successful menu mutations.
func NewServer(handlers Handlers, menuCache ports.MenuCache, jwtSecret, baseURL string) *Server {
	return &Server{
		handlers:  handlers,
		menuCache: menuCache,
		jwtSecret: jwtSecret,
		baseURL:   baseURL,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/driver", s.AssignDriver)
	api.GET("/orders/:id/track", s.TrackOrder)
	api.GET("/orders/:id/track/qr", s.TrackOrderQR)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.CreateMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.RemoveMenuItem)
	api.POST("/menu/categories/rename", s.RenameCategory)

	api.GET("/users", s.GetUsers)
	api.POST("/users", s.CreateUser)
	api.PUT("/users/:id", s.UpdateUser)

	api.GET("/reports/sales", s.GetSalesReport)
}

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type guestContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type createOrderRequest struct {
	CustomerID      string               `json:"customer_id"`
	Guest           *guestContactRequest `json:"guest"`
	DeliveryAddress string               `json:"delivery_address"`
	Notes           string               `json:"notes"`
	Lines           []orderLineRequest   `json:"lines"`
}

type createOrderResponse struct {
	ID          string `json:"id"`
	TrackingURL string `json:"tracking_url"`
}

// CreateOrder handles POST /api/v1/orders. Guests supply contact details,
// authenticated customers order as themselves.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	customer, err := customerFromRequest(req, actor)
	if err != nil {
		return respondError(c, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		menuItemID, idErr := kernel.UUIDFromString(line.MenuItemID)
		if idErr != nil {
			return respondError(c, idErr)
		}
		lines = append(lines, commands.OrderLine{MenuItemID: menuItemID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customer, req.DeliveryAddress, req.Notes, lines, actor,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		ID:          orderID.String(),
		TrackingURL: s.trackingURL(orderID),
	})
}

func customerFromRequest(req createOrderRequest, actor account.Actor) (order.Customer, error) {
	if req.CustomerID != "" {
		customerID, err := kernel.UUIDFromString(req.CustomerID)
		if err != nil {
			return nil, err
		}
		customer, err := order.NewAuthenticatedCustomer(customerID)
		if err != nil {
			return nil, err
		}
		return customer, nil
	}
	if actor.Role() == account.Customer {
		customer, err := order.NewAuthenticatedCustomer(*actor.ID())
		if err != nil {
			return nil, err
		}
		return customer, nil
	}

	var guest guestContactRequest
	if req.Guest != nil {
		guest = *req.Guest
	}
	guestContact, err := order.NewGuestContact(guest.Name, guest.Phone, guest.Email)
	if err != nil {
		return nil, err
	}
	return guestContact, nil
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrdersQuery(actor)
	if err != nil {
		return respondError(c, err)
	}

	summaries, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]orderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, toOrderSummaryResponse(summary))
	}

	return c.JSON(http.StatusOK, response)
}

type orderSummaryResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Total           string    `json:"total"`
	DeliveryAddress string    `json:"delivery_address"`
	DriverID        string    `json:"driver_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toOrderSummaryResponse(summary queries.OrderSummaryResponse) orderSummaryResponse {
	resp := orderSummaryResponse{
		ID:              summary.ID.String(),
		Status:          summary.Status,
		Total:           summary.Total,
		DeliveryAddress: summary.DeliveryAddress,
		CreatedAt:       summary.CreatedAt,
	}
	if summary.DriverID != nil {
		resp.DriverID = summary.DriverID.String()
	}
	return resp
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(c, err)
	}

	detail, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

type orderLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

type orderDetailResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	Progress        float64             `json:"progress"`
	DeliveryAddress string              `json:"delivery_address"`
	Notes           string              `json:"notes,omitempty"`
	DriverID        string              `json:"driver_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Lines           []orderLineResponse `json:"lines"`
	Total           string              `json:"total"`
}

func toOrderDetailResponse(detail queries.OrderDetailResponse) orderDetailResponse {
	resp := orderDetailResponse{
		ID:              detail.ID.String(),
		Status:          detail.Status,
		Progress:        detail.Progress,
		DeliveryAddress: detail.DeliveryAddress,
		Notes:           detail.Notes,
		CreatedAt:       detail.CreatedAt,
		Total:           detail.Total,
		Lines:           make([]orderLineResponse, 0, len(detail.Lines)),
	}
	if detail.DriverID != nil {
		resp.DriverID = detail.DriverID.String()
	}
	for _, line := range detail.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal,
		})
	}
	return resp
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req changeStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type assignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// AssignDriver handles POST /api/v1/orders/:id/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req assignDriverRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AssignDriver.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type trackOrderResponse struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	Progress       float64   `json:"progress"`
	DriverAssigned bool      `json:"driver_assigned"`
	CreatedAt      time.Time `json:"created_at"`
}

// TrackOrder handles GET /api/v1/orders/:id/track. No authentication:
// knowing the order id is the credential.
func (s *Server) TrackOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	tracking, err := s.handlers.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, trackOrderResponse{
		OrderID:        tracking.OrderID.String(),
		Status:         tracking.Status,
		Progress:       tracking.Progress,
		DriverAssigned: tracking.DriverAssigned,
		CreatedAt:      tracking.CreatedAt,
	})
}

// TrackOrderQR handles GET /api/v1/orders/:id/track/qr. Returns a PNG
// QR code pointing at the tracking page, suitable for printing on receipts.
func (s *Server) TrackOrderQR(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	png, err := qrcode.Encode(s.trackingURL(orderID), qrcode.Medium, 256)
	if err != nil {
		return respondError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) trackingURL(orderID kernel.UUID) string {
	return fmt.Sprintf("%s/api/v1/orders/%s/track", s.baseURL, orderID)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	includeUnavailable := c.QueryParam("include_unavailable") == "true"
	query, err := queries.NewGetMenuQuery(includeUnavailable, actor)
	if err != nil {
		return respondError(c, err)
	}

	items, err := s.handlers.GetMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	var req menuItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return respondError(c, err)
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		menuItemID, req.Name, req.Description, price, req.Category, req.ImageURL, actor,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	s.invalidateMenuCache(c)
	return c.JSON(http.StatusCreated, map[string]string{"id": menuItemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	menuItemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req menuItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return respondError(c, err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID, req.Name, req.Description, price, req.Category, req.ImageURL, available, actor,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	s.invalidateMenuCache(c)
	return c.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/menu/:id.
func (s *Server) RemoveMenuItem(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	menuItemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRemoveMenuItemCommand(menuItemID, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RemoveMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	s.invalidateMenuCache(c)
	return c.NoContent(http.StatusNoContent)
}

type renameCategoryRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RenameCategory handles POST /api/v1/menu/categories/rename.
func (s *Server) RenameCategory(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	var req renameCategoryRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRenameCategoryCommand(req.From, req.To, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RenameCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	s.invalidateMenuCache(c)
	return c.NoContent(http.StatusNoContent)
}

type userRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetUsersQuery(actor)
	if err != nil {
		return respondError(c, err)
	}

	users, err := s.handlers.GetUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]userResponse, 0, len(users))
	for _, user := range users {
		response = append(response, userResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	var req userRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(c, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(userID, req.Name, req.Email, req.PasswordHash, role, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req userRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.Name, req.Email, role, actor)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateUser.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type dailyRevenueResponse struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue string `json:"revenue"`
}

type salesReportResponse struct {
	TotalCount     int                    `json:"total_count"`
	CompletedCount int                    `json:"completed_count"`
	PendingCount   int                    `json:"pending_count"`
	TotalRevenue   string                 `json:"total_revenue"`
	DailyRevenue   []dailyRevenueResponse `json:"daily_revenue"`
}

// GetSalesReport handles GET /api/v1/reports/sales. The optional tz query
// parameter sets the timezone for day bucketing.
func (s *Server) GetSalesReport(c echo.Context) error {
	actor, err := actorFromRequest(c, s.jwtSecret)
	if err != nil {
		return respondError(c, err)
	}

	location := time.UTC
	if tz := c.QueryParam("tz"); tz != "" {
		loc, tzErr := time.LoadLocation(tz)
		if tzErr != nil {
			return badRequest(c, "unknown timezone")
		}
		location = loc
	}

	query, err := queries.NewGetSalesReportQuery(location, actor)
	if err != nil {
		return respondError(c, err)
	}

	report, err := s.handlers.GetSalesReport.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := salesReportResponse{
		TotalCount:     report.TotalCount,
		CompletedCount: report.CompletedCount,
		PendingCount:   report.PendingCount,
		TotalRevenue:   report.TotalRevenue.String(),
		DailyRevenue:   make([]dailyRevenueResponse, 0, len(report.DailyRevenue)),
	}
	for _, day := range report.DailyRevenue {
		response.DailyRevenue = append(response.DailyRevenue, dailyRevenueResponse{
			Date:    day.Date,
			Orders:  day.Orders,
			Revenue: day.Revenue.String(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// invalidateMenuCache drops the cached public menu after a mutation.
// Failures are ignored, the entry still expires on its TTL.
func (s *Server) invalidateMenuCache(c echo.Context) {
	if s.menuCache != nil {
		_ = s.menuCache.Invalidate(c.Request().Context())
	}
}
