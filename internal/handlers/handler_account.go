package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finhub/accounts_service/internal/apperrors"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/dto"
	"github.com/finhub/accounts_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &accountHandler{accountService: accountService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.PUT("/:accountNumber", h.updateAccount)
		accounts.DELETE("/:accountNumber", h.closeAccount)
		accounts.GET("/user/:userID", h.listAccountsByUser)
		accounts.GET("/institution/:institutionName", h.listAccountsByInstitution)
	}
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens a new account for an existing user and emits an ACCOUNT_CREATED event
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input, unknown user, or user service unavailable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account type not found"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account",
		slog.String("account_name", req.Name),
		slog.Int("account_type_id", req.AccountTypeID))

	if callerID, ok := middleware.GetUserIDFromContext(c); ok && callerID != req.UserID {
		logger.Info("Account opened on behalf of another user", slog.String("owner_user_id", req.UserID))
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_number", account.AccountNumber))
	c.JSON(http.StatusCreated, account)
}

// getAccount godoc
// @Summary Get an account by number
// @Description Retrieves the full view of an account, including its type-specific details
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	account, err := h.accountService.GetAccount(c.Request.Context(), accountNumber)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// listAccountsByUser godoc
// @Summary List a user's accounts
// @Description Retrieves one zero-based page of accounts owned by a user
// @Tags accounts
// @Produce  json
// @Param   userID path string true "Owner user ID"
// @Param   page query int false "Zero-based page index" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.AccountsPageResponse
// @Failure 400 {object} map[string]string "Invalid pagination or unknown user"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts/user/{userID} [get]
func (h *accountHandler) listAccountsByUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var params dto.ListAccountsByUserParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccountsByUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.accountService.ListAccountsByUser(c.Request.Context(), userID, params.Page, params.Size)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// listAccountsByInstitution godoc
// @Summary List accounts by institution
// @Description Retrieves all accounts held at the given institution
// @Tags accounts
// @Produce  json
// @Param   institutionName path string true "Institution name"
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts/institution/{institutionName} [get]
func (h *accountHandler) listAccountsByInstitution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	institutionName := c.Param("institutionName")

	accounts, err := h.accountService.ListAccountsByInstitution(c.Request.Context(), institutionName)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// updateAccount godoc
// @Summary Update an account
// @Description Applies a partial update to an account and its details and emits an ACCOUNT_UPDATED event
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account or account type not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{accountNumber} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountNumber, req)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to update account")
		return
	}

	logger.Info("Account updated successfully", slog.String("account_number", accountNumber))
	c.JSON(http.StatusOK, account)
}

// closeAccount godoc
// @Summary Close an account
// @Description Drives the account through CLOSING to CLOSED and emits an ACCOUNT_CLOSED event
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to close account"
// @Security BearerAuth
// @Router /accounts/{accountNumber} [delete]
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	account, err := h.accountService.CloseAccount(c.Request.Context(), accountNumber)
	if err != nil {
		respondAccountError(c, logger, err, "Failed to close account")
		return
	}

	logger.Info("Account closed successfully", slog.String("account_number", accountNumber))
	c.JSON(http.StatusOK, account)
}

// respondAccountError maps service errors onto HTTP statuses: 404 for missing
// records, 409 for duplicates, 400 for validation failures (including a
// degraded user service), 500 otherwise.
func respondAccountError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
