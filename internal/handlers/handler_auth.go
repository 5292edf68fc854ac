package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
)

// AuthHandler handles registration and login for all four roles.
type AuthHandler struct {
	accountService portssvc.AccountSvcFacade
	tokenService   portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accountService portssvc.AccountSvcFacade, tokenService portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		tokenService:   tokenService,
	}
}

// registerAuthRoutes sets up the routes for authentication. Login endpoints
// are rate limited per client IP.
func registerAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Account, services.Token)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/admin/login", limitMiddleware, h.LoginAdmin)

		auth.POST("/owner/register", h.RegisterOwner)
		auth.POST("/owner/login", limitMiddleware, h.LoginOwner)

		auth.POST("/realtor/register", h.RegisterRealtor)
		auth.POST("/realtor/login", limitMiddleware, h.LoginRealtor)

		auth.POST("/customer/register", h.RegisterCustomer)
		auth.POST("/customer/login", limitMiddleware, h.LoginCustomer)
	}
}

// RegisterOwner godoc
// @Summary Register a property owner
// @Description Creates an owner account in pending state. No session is issued until an admin approves the account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterOwnerRequest true "Owner registration info"
// @Success 201 {object} dto.PendingRegistrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/owner/register [post]
func (h *AuthHandler) RegisterOwner(c *gin.Context) {
	var req dto.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	owner, err := h.accountService.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to register owner")
		return
	}

	c.JSON(http.StatusCreated, dto.PendingRegistrationResponse{
		Message: "Registration received. Your account is pending admin approval.",
		User:    dto.ToOwnerSummary(owner),
	})
}

// RegisterRealtor godoc
// @Summary Register a realtor
// @Description Creates a realtor account in pending state. No session is issued until an admin approves the account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRealtorRequest true "Realtor registration info"
// @Success 201 {object} dto.PendingRegistrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/realtor/register [post]
func (h *AuthHandler) RegisterRealtor(c *gin.Context) {
	var req dto.RegisterRealtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	realtor, err := h.accountService.RegisterRealtor(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to register realtor")
		return
	}

	c.JSON(http.StatusCreated, dto.PendingRegistrationResponse{
		Message: "Registration received. Your account is pending admin approval.",
		User:    dto.ToRealtorSummary(realtor),
	})
}

// RegisterCustomer godoc
// @Summary Register a customer
// @Description Creates a customer account and immediately issues a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterCustomerRequest true "Customer registration info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/customer/register [post]
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.accountService.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to register customer")
		return
	}

	h.respondWithSession(c, http.StatusCreated, customer.CustomerID, domain.RoleCustomer, dto.ToCustomerSummary(customer))
}

// LoginAdmin godoc
// @Summary Admin login
// @Description Authenticates an admin by admin identifier and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	admin, err := h.accountService.AuthenticateAdmin(c.Request.Context(), req.AdminID, req.Password)
	if err != nil {
		handleServiceError(c, err, "Failed to authenticate admin")
		return
	}

	h.respondWithSession(c, http.StatusOK, admin.AdminRecordID, domain.RoleAdmin, dto.ToAdminSummary(admin))
}

// LoginOwner godoc
// @Summary Owner login
// @Description Authenticates an owner. Valid credentials on an unapproved account yield 403 and no token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Owner credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account pending approval"
// @Failure 500 {object} ErrorResponse
// @Router /auth/owner/login [post]
func (h *AuthHandler) LoginOwner(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	owner, err := h.accountService.AuthenticateOwner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "Failed to authenticate owner")
		return
	}

	h.respondWithSession(c, http.StatusOK, owner.OwnerID, domain.RoleOwner, dto.ToOwnerSummary(owner))
}

// LoginRealtor godoc
// @Summary Realtor login
// @Description Authenticates a realtor. Valid credentials on an unapproved account yield 403 and no token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Realtor credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account pending approval"
// @Failure 500 {object} ErrorResponse
// @Router /auth/realtor/login [post]
func (h *AuthHandler) LoginRealtor(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	realtor, err := h.accountService.AuthenticateRealtor(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "Failed to authenticate realtor")
		return
	}

	h.respondWithSession(c, http.StatusOK, realtor.RealtorID, domain.RoleRealtor, dto.ToRealtorSummary(realtor))
}

// LoginCustomer godoc
// @Summary Customer login
// @Description Authenticates a customer and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Customer credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/customer/login [post]
func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	customer, err := h.accountService.AuthenticateCustomer(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "Failed to authenticate customer")
		return
	}

	h.respondWithSession(c, http.StatusOK, customer.CustomerID, domain.RoleCustomer, dto.ToCustomerSummary(customer))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, subjectID string, role domain.Role, user any) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), subjectID, role)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(status, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}
