package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/dto"
	"github.com/finhub/accounts_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountTypeHandler handles HTTP requests related to the account type catalog.
type accountTypeHandler struct {
	typeService portssvc.AccountTypeSvcFacade
}

// RegisterAccountTypeRoutes registers routes related to the account type catalog.
func RegisterAccountTypeRoutes(rg *gin.RouterGroup, typeService portssvc.AccountTypeSvcFacade) {
	h := &accountTypeHandler{typeService: typeService}

	types := rg.Group("/account-types")
	{
		types.GET("", h.listAccountTypes)
		types.GET("/:id", h.getAccountType)
		types.POST("", h.createAccountType)
		types.PUT("/:id", h.updateAccountType)
		types.DELETE("/:id", h.deleteAccountType)
	}
}

func parseTypeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account type ID: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

// listAccountTypes godoc
// @Summary List account types
// @Description Retrieves every entry in the account type catalog
// @Tags account-types
// @Produce  json
// @Success 200 {array} dto.AccountTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list account types"
// @Security BearerAuth
// @Router /account-types [get]
func (h *accountTypeHandler) listAccountTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.typeService.GetAllAccountTypes(c.Request.Context())
	if err != nil {
		respondAccountError(c, logger, err, "Failed to list account types")
		return
	}

	c.JSON(http.StatusOK, types)
}

// getAccountType godoc
// @Summary Get an account type
// @Description Retrieves one catalog entry by ID
// @Tags account-types
// @Produce  json
// @Param   id path int true "Account type ID"
// @Success 200 {object} dto.AccountTypeResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account type not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account type"
// @Security BearerAuth
// @Router /account-types/{id} [get]
func (h *accountTypeHandler) getAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseTypeID(c)
	if !ok {
		return
	}

	t, err := h.typeService.GetAccountType(c.Request.Context(), id)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to retrieve account type")
		return
	}

	c.JSON(http.StatusOK, t)
}

// createAccountType godoc
// @Summary Create an account type
// @Description Adds a new entry to the account type catalog
// @Tags account-types
// @Accept  json
// @Produce  json
// @Param   accountType body dto.AccountTypeRequest true "Account type details"
// @Success 201 {object} dto.AccountTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account type already exists"
// @Failure 500 {object} map[string]string "Failed to create account type"
// @Security BearerAuth
// @Router /account-types [post]
func (h *accountTypeHandler) createAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccountType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	t, err := h.typeService.CreateAccountType(c.Request.Context(), req)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to create account type")
		return
	}

	logger.Info("Account type created successfully", slog.Int("account_type_id", t.AccountTypeID))
	c.JSON(http.StatusCreated, t)
}

// updateAccountType godoc
// @Summary Update an account type
// @Description Overwrites the name and description of a catalog entry
// @Tags account-types
// @Accept  json
// @Produce  json
// @Param   id path int true "Account type ID"
// @Param   accountType body dto.AccountTypeRequest true "Account type details"
// @Success 200 {object} dto.AccountTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account type not found"
// @Failure 500 {object} map[string]string "Failed to update account type"
// @Security BearerAuth
// @Router /account-types/{id} [put]
func (h *accountTypeHandler) updateAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseTypeID(c)
	if !ok {
		return
	}

	var req dto.AccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccountType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	t, err := h.typeService.UpdateAccountType(c.Request.Context(), id, req)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to update account type")
		return
	}

	c.JSON(http.StatusOK, t)
}

// deleteAccountType godoc
// @Summary Delete an account type
// @Description Removes a catalog entry
// @Tags account-types
// @Produce  json
// @Param   id path int true "Account type ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account type not found"
// @Failure 500 {object} map[string]string "Failed to delete account type"
// @Security BearerAuth
// @Router /account-types/{id} [delete]
func (h *accountTypeHandler) deleteAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseTypeID(c)
	if !ok {
		return
	}

	if err := h.typeService.DeleteAccountType(c.Request.Context(), id); err != nil {
		respondAccountError(c, logger, err, "Failed to delete account type")
		return
	}

	logger.Info("Account type deleted successfully", slog.Int("account_type_id", id))
	c.Status(http.StatusNoContent)
}
