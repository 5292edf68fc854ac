package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
)

// propertyHandler handles the public catalogue and the owner/realtor listing
// endpoints.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

func newPropertyHandler(propertyService portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{propertyService: propertyService}
}

// registerPublicPropertyRoutes registers the unauthenticated catalogue reads.
func registerPublicPropertyRoutes(rg *gin.Engine, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	properties := rg.Group("/api/v1/properties")
	{
		properties.GET("", h.listProperties)
		properties.GET("/:propertyID", h.getProperty)
	}
}

// registerOwnerPropertyRoutes registers the owner listing endpoints.
func registerOwnerPropertyRoutes(rg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	rg.POST("/properties", h.createProperty)
	rg.GET("/properties", h.listOwnerProperties)
	rg.GET("/realtors", h.listApprovedRealtors)
	rg.PUT("/properties/:propertyID/realtor", h.assignRealtor)
}

// registerRealtorPropertyRoutes registers the realtor listing reads.
func registerRealtorPropertyRoutes(rg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	rg.GET("/properties", h.listManagedProperties)
}

// listProperties godoc
// @Summary Public property catalogue
// @Description Lists all properties. Served from cache when warm.
// @Tags properties
// @Produce json
// @Success 200 {array} domain.Property
// @Failure 500 {object} ErrorResponse
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

// getProperty godoc
// @Summary Property detail
// @Tags properties
// @Produce json
// @Param propertyID path string true "Property ID"
// @Success 200 {object} domain.Property
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties/{propertyID} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Request.Context(), c.Param("propertyID"))
	if err != nil {
		handleServiceError(c, err, "Failed to get property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// createProperty godoc
// @Summary List a new property
// @Description Creates a listing for the authenticated owner. The listing appears in the owner's listed-properties set atomically.
// @Tags owner
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} domain.Property
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), ownerID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create property")
		return
	}
	c.JSON(http.StatusCreated, property)
}

// listOwnerProperties godoc
// @Summary List the authenticated owner's properties
// @Tags owner
// @Produce json
// @Success 200 {array} domain.Property
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/properties [get]
func (h *propertyHandler) listOwnerProperties(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	properties, err := h.propertyService.ListOwnerProperties(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, err, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

// listApprovedRealtors godoc
// @Summary List approved realtors
// @Description Directory of approved realtors an owner can assign to a property.
// @Tags owner
// @Produce json
// @Success 200 {array} dto.AccountSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/realtors [get]
func (h *propertyHandler) listApprovedRealtors(c *gin.Context) {
	realtors, err := h.propertyService.ListApprovedRealtors(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list realtors")
		return
	}

	summaries := make([]dto.AccountSummary, len(realtors))
	for i := range realtors {
		summaries[i] = dto.ToRealtorSummary(&realtors[i])
	}
	c.JSON(http.StatusOK, summaries)
}

// assignRealtor godoc
// @Summary Assign a realtor to a property
// @Description Sets the property's assigned realtor. Only the owning owner may assign, and the realtor must be approved.
// @Tags owner
// @Accept json
// @Produce json
// @Param propertyID path string true "Property ID"
// @Param realtor body dto.AssignRealtorRequest true "Realtor to assign"
// @Success 200 {object} domain.Property
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/properties/{propertyID}/realtor [put]
func (h *propertyHandler) assignRealtor(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AssignRealtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	property, err := h.propertyService.AssignRealtor(c.Request.Context(), ownerID, c.Param("propertyID"), req.RealtorID)
	if err != nil {
		handleServiceError(c, err, "Failed to assign realtor")
		return
	}
	c.JSON(http.StatusOK, property)
}

// listManagedProperties godoc
// @Summary List properties assigned to the authenticated realtor
// @Tags realtor
// @Produce json
// @Success 200 {array} domain.Property
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/properties [get]
func (h *propertyHandler) listManagedProperties(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	properties, err := h.propertyService.ListManagedProperties(c.Request.Context(), realtorID)
	if err != nil {
		handleServiceError(c, err, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}
