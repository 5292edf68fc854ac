package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
)

// applicationHandler handles the customer application workflow and its
// realtor review side.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
	accountService     portssvc.AccountSvcFacade
}

func newApplicationHandler(applicationService portssvc.ApplicationSvcFacade, accountService portssvc.AccountSvcFacade) *applicationHandler {
	return &applicationHandler{
		applicationService: applicationService,
		accountService:     accountService,
	}
}

// registerCustomerApplicationRoutes registers the customer application endpoints.
func registerCustomerApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService, nil)

	rg.POST("/applications", h.submitApplication)
	rg.GET("/applications", h.listCustomerApplications)
	rg.DELETE("/applications/:applicationID", h.withdrawApplication)
}

// registerRealtorApplicationRoutes registers the realtor review endpoints.
func registerRealtorApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newApplicationHandler(applicationService, accountService)

	rg.GET("/applications", h.listRealtorApplications)
	rg.GET("/properties/:propertyID/applications", h.listPropertyApplications)
	rg.PUT("/applications/:applicationID/approve", h.approveApplication)
	rg.PUT("/applications/:applicationID/reject", h.rejectApplication)
	rg.GET("/customers", h.listRealtorCustomers)
}

// submitApplication godoc
// @Summary Submit an application for a property
// @Description Creates a pending application. The property must be available, all four document references must be present, and the customer may hold at most one active application per property.
// @Tags customer
// @Accept json
// @Produce json
// @Param application body dto.SubmitApplicationRequest true "Application details"
// @Success 201 {object} domain.Application
// @Failure 400 {object} ErrorResponse "Invalid body or missing documents"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Active application already exists"
// @Failure 422 {object} ErrorResponse "Property not available"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer/applications [post]
func (h *applicationHandler) submitApplication(c *gin.Context) {
	customerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	application, err := h.applicationService.SubmitApplication(c.Request.Context(), customerID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, application)
}

// listCustomerApplications godoc
// @Summary List the authenticated customer's applications
// @Tags customer
// @Produce json
// @Success 200 {array} domain.Application
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer/applications [get]
func (h *applicationHandler) listCustomerApplications(c *gin.Context) {
	customerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	applications, err := h.applicationService.ListCustomerApplications(c.Request.Context(), customerID)
	if err != nil {
		handleServiceError(c, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// withdrawApplication godoc
// @Summary Withdraw a pending application
// @Description Retracts the authenticated customer's still-pending application.
// @Tags customer
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 204 "Withdrawn"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Application is no longer pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer/applications/{applicationID} [delete]
func (h *applicationHandler) withdrawApplication(c *gin.Context) {
	customerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.applicationService.WithdrawApplication(c.Request.Context(), customerID, c.Param("applicationID")); err != nil {
		handleServiceError(c, err, "Failed to withdraw application")
		return
	}
	c.Status(http.StatusNoContent)
}

// listRealtorApplications godoc
// @Summary List applications for the realtor's assigned properties
// @Tags realtor
// @Produce json
// @Success 200 {array} domain.Application
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/applications [get]
func (h *applicationHandler) listRealtorApplications(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	applications, err := h.applicationService.ListRealtorApplications(c.Request.Context(), realtorID)
	if err != nil {
		handleServiceError(c, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// listPropertyApplications godoc
// @Summary List applications for one assigned property
// @Tags realtor
// @Produce json
// @Param propertyID path string true "Property ID"
// @Success 200 {array} domain.Application
// @Failure 403 {object} ErrorResponse "Not the assigned realtor"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/properties/{propertyID}/applications [get]
func (h *applicationHandler) listPropertyApplications(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	applications, err := h.applicationService.ListPropertyApplications(c.Request.Context(), realtorID, c.Param("propertyID"))
	if err != nil {
		handleServiceError(c, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// approveApplication godoc
// @Summary Approve a pending application
// @Description Moves the application to approved. Only the assigned realtor may decide; repeating the same outcome is idempotent.
// @Tags realtor
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} domain.Application
// @Failure 403 {object} ErrorResponse "Not the assigned realtor"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Application already decided differently"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/applications/{applicationID}/approve [put]
func (h *applicationHandler) approveApplication(c *gin.Context) {
	h.decideApplication(c, domain.ApplicationApproved)
}

// rejectApplication godoc
// @Summary Reject a pending application
// @Description Moves the application to rejected. Only the assigned realtor may decide; repeating the same outcome is idempotent.
// @Tags realtor
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} domain.Application
// @Failure 403 {object} ErrorResponse "Not the assigned realtor"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Application already decided differently"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/applications/{applicationID}/reject [put]
func (h *applicationHandler) rejectApplication(c *gin.Context) {
	h.decideApplication(c, domain.ApplicationRejected)
}

func (h *applicationHandler) decideApplication(c *gin.Context, outcome domain.ApplicationStatus) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	application, err := h.applicationService.DecideApplication(c.Request.Context(), realtorID, c.Param("applicationID"), outcome)
	if err != nil {
		handleServiceError(c, err, "Failed to decide application")
		return
	}
	c.JSON(http.StatusOK, application)
}

// listRealtorCustomers godoc
// @Summary List customers linked to the authenticated realtor
// @Description Customers become linked when the realtor approves one of their applications.
// @Tags realtor
// @Produce json
// @Success 200 {array} dto.AccountSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/customers [get]
func (h *applicationHandler) listRealtorCustomers(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	customers, err := h.accountService.ListRealtorCustomers(c.Request.Context(), realtorID)
	if err != nil {
		handleServiceError(c, err, "Failed to list customers")
		return
	}

	summaries := make([]dto.AccountSummary, len(customers))
	for i := range customers {
		summaries[i] = dto.ToCustomerSummary(&customers[i])
	}
	c.JSON(http.StatusOK, summaries)
}
