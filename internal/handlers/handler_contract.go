package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
)

// contractHandler handles the two-party contract signature workflow. The
// signing party is derived from the authenticated role, never from the body.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(contractService portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{contractService: contractService}
}

// registerOwnerContractRoutes registers the owner's contract endpoints.
func registerOwnerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	rg.GET("/contracts", h.listOwnerContracts)
	rg.PUT("/contracts/:contractID/sign", h.signContract)
	rg.PUT("/contracts/:contractID/reject", h.rejectContract)
}

// registerCustomerContractRoutes registers the customer's contract endpoints.
func registerCustomerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	rg.GET("/contracts", h.listCustomerContracts)
	rg.PUT("/contracts/:contractID/sign", h.signContract)
	rg.PUT("/contracts/:contractID/reject", h.rejectContract)
}

// registerRealtorContractRoutes registers the realtor's drafting and read endpoints.
func registerRealtorContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	rg.POST("/contracts", h.createContract)
	rg.GET("/contracts", h.listRealtorContracts)
	rg.GET("/contracts/:contractID", h.getContract)
}

// createContract godoc
// @Summary Draft a contract from an approved application
// @Description Creates a drafted contract. Party and property references are copied from the application chain.
// @Tags realtor
// @Accept json
// @Produce json
// @Param contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} domain.Contract
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the assigned realtor"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Application not approved or property unavailable"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), realtorID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create contract")
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// getContract godoc
// @Summary Contract detail
// @Tags realtor
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} domain.Contract
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/contracts/{contractID} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), c.Param("contractID"))
	if err != nil {
		handleServiceError(c, err, "Failed to get contract")
		return
	}
	if contract.RealtorID != realtorID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, contract)
}

// listOwnerContracts godoc
// @Summary List the authenticated owner's contracts
// @Tags owner
// @Produce json
// @Success 200 {array} domain.Contract
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/contracts [get]
func (h *contractHandler) listOwnerContracts(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contracts, err := h.contractService.ListOwnerContracts(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// listCustomerContracts godoc
// @Summary List the authenticated customer's contracts
// @Tags customer
// @Produce json
// @Success 200 {array} domain.Contract
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customer/contracts [get]
func (h *contractHandler) listCustomerContracts(c *gin.Context) {
	customerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contracts, err := h.contractService.ListCustomerContracts(c.Request.Context(), customerID)
	if err != nil {
		handleServiceError(c, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// listRealtorContracts godoc
// @Summary List contracts drafted by the authenticated realtor
// @Tags realtor
// @Produce json
// @Success 200 {array} domain.Contract
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /realtor/contracts [get]
func (h *contractHandler) listRealtorContracts(c *gin.Context) {
	realtorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contracts, err := h.contractService.ListRealtorContracts(c.Request.Context(), realtorID)
	if err != nil {
		handleServiceError(c, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// signContract godoc
// @Summary Sign a contract
// @Description Records the authenticated party's signature. The second distinct signature executes the contract; for sale contracts the property is marked sold in the same transaction. Re-signing before execution overwrites the previous artifact.
// @Tags contracts
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param signature body dto.SignContractRequest true "Signature artifact reference"
// @Success 200 {object} domain.Contract
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not a party to this contract"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Concurrent update"
// @Failure 422 {object} ErrorResponse "Contract already terminal"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/contracts/{contractID}/sign [put]
func (h *contractHandler) signContract(c *gin.Context) {
	partyID, role, ok := contractParty(c)
	if !ok {
		return
	}

	var req dto.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contract, err := h.contractService.SignContract(c.Request.Context(), role, partyID, c.Param("contractID"), req.Signature)
	if err != nil {
		handleServiceError(c, err, "Failed to sign contract")
		return
	}
	c.JSON(http.StatusOK, contract)
}

// rejectContract godoc
// @Summary Reject a contract
// @Description Moves the contract to the authenticated party's terminal rejected state.
// @Tags contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} domain.Contract
// @Failure 403 {object} ErrorResponse "Caller is not a party to this contract"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Contract already terminal"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /owner/contracts/{contractID}/reject [put]
func (h *contractHandler) rejectContract(c *gin.Context) {
	partyID, role, ok := contractParty(c)
	if !ok {
		return
	}

	contract, err := h.contractService.RejectContract(c.Request.Context(), role, partyID, c.Param("contractID"))
	if err != nil {
		handleServiceError(c, err, "Failed to reject contract")
		return
	}
	c.JSON(http.StatusOK, contract)
}

// contractParty resolves the authenticated subject and role for a signature
// operation. Only owners and customers are contract parties.
func contractParty(c *gin.Context) (string, domain.Role, bool) {
	partyID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	role, ok := middleware.GetRoleFromContext(c)
	if !ok || (role != domain.RoleOwner && role != domain.RoleCustomer) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return "", "", false
	}
	return partyID, role, true
}
