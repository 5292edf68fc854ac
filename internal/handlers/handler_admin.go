package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// adminHandler handles the admin dashboard and the account approval workflow.
type adminHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAdminHandler(accountService portssvc.AccountSvcFacade) *adminHandler {
	return &adminHandler{accountService: accountService}
}

// registerAdminRoutes registers the admin-only routes.
func registerAdminRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAdminHandler(accountService)

	rg.GET("/stats", h.getStats)
	rg.GET("/owners", h.listOwners)
	rg.GET("/realtors", h.listRealtors)
	rg.PATCH("/users/:role/:accountID/approve", h.approveAccount)
	rg.PATCH("/users/:role/:accountID/reject", h.rejectAccount)
	rg.DELETE("/owners/:accountID", h.deleteOwner)
	rg.DELETE("/realtors/:accountID", h.deleteRealtor)
}

// getStats godoc
// @Summary Approval dashboard counters
// @Description Returns total owners, total realtors and the count of accounts awaiting approval.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.ApprovalStats
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) getStats(c *gin.Context) {
	stats, err := h.accountService.GetApprovalStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to load approval stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listOwners godoc
// @Summary List owner accounts
// @Description Lists owner accounts, optionally filtered by approval status.
// @Tags admin
// @Produce json
// @Param status query string false "Filter by approval status" Enums(pending, approved, rejected)
// @Success 200 {array} dto.AccountSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/owners [get]
func (h *adminHandler) listOwners(c *gin.Context) {
	status, ok := approvalStatusFilter(c)
	if !ok {
		return
	}

	owners, err := h.accountService.ListOwners(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err, "Failed to list owners")
		return
	}

	summaries := make([]dto.AccountSummary, len(owners))
	for i := range owners {
		summaries[i] = dto.ToOwnerSummary(&owners[i])
	}
	c.JSON(http.StatusOK, summaries)
}

// listRealtors godoc
// @Summary List realtor accounts
// @Description Lists realtor accounts, optionally filtered by approval status.
// @Tags admin
// @Produce json
// @Param status query string false "Filter by approval status" Enums(pending, approved, rejected)
// @Success 200 {array} dto.AccountSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/realtors [get]
func (h *adminHandler) listRealtors(c *gin.Context) {
	status, ok := approvalStatusFilter(c)
	if !ok {
		return
	}

	realtors, err := h.accountService.ListRealtors(c.Request.Context(), status)
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

// approveAccount godoc
// @Summary Approve an owner or realtor account
// @Description Sets the account's approval status to approved. Re-approving is idempotent.
// @Tags admin
// @Produce json
// @Param role path string true "Account role" Enums(owner, realtor)
// @Param accountID path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{role}/{accountID}/approve [patch]
func (h *adminHandler) approveAccount(c *gin.Context) {
	h.decide(c, domain.ApprovalApproved)
}

// rejectAccount godoc
// @Summary Reject an owner or realtor account
// @Description Sets the account's approval status to rejected. Re-rejecting is idempotent.
// @Tags admin
// @Produce json
// @Param role path string true "Account role" Enums(owner, realtor)
// @Param accountID path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{role}/{accountID}/reject [patch]
func (h *adminHandler) rejectAccount(c *gin.Context) {
	h.decide(c, domain.ApprovalRejected)
}

func (h *adminHandler) decide(c *gin.Context, outcome domain.ApprovalStatus) {
	role := domain.Role(c.Param("role"))
	if role != domain.RoleOwner && role != domain.RoleRealtor {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Role must be owner or realtor"})
		return
	}
	accountID := c.Param("accountID")

	if err := h.accountService.Decide(c.Request.Context(), role, accountID, outcome); err != nil {
		handleServiceError(c, err, "Failed to record approval decision")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(outcome)})
}

// deleteOwner godoc
// @Summary Delete an owner account
// @Tags admin
// @Produce json
// @Param accountID path string true "Owner ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/owners/{accountID} [delete]
func (h *adminHandler) deleteOwner(c *gin.Context) {
	if err := h.accountService.DeleteOwner(c.Request.Context(), c.Param("accountID")); err != nil {
		handleServiceError(c, err, "Failed to delete owner")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteRealtor godoc
// @Summary Delete a realtor account
// @Tags admin
// @Produce json
// @Param accountID path string true "Realtor ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/realtors/{accountID} [delete]
func (h *adminHandler) deleteRealtor(c *gin.Context) {
	if err := h.accountService.DeleteRealtor(c.Request.Context(), c.Param("accountID")); err != nil {
		handleServiceError(c, err, "Failed to delete realtor")
		return
	}
	c.Status(http.StatusNoContent)
}

// approvalStatusFilter parses the optional ?status= query parameter. On an
// unknown value it writes a 400 response and returns ok=false.
func approvalStatusFilter(c *gin.Context) (*domain.ApprovalStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status := domain.ApprovalStatus(raw)
	switch status {
	case domain.ApprovalPending, domain.ApprovalApproved, domain.ApprovalRejected:
		return &status, true
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status must be pending, approved or rejected"})
	return nil, false
}
