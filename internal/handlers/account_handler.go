package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateAccount handles the creation of a new account.
// @Summary     Create an account
// @Description Create a new named account with a zero balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} map[string]interface{} "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate account name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	account, err := h.accountService.CreateAccount(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ACCOUNT", "account", account.ID,
		map[string]interface{}{"name": account.Name})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// ListAccounts handles listing all accounts.
// @Summary     List accounts
// @Description Get a paginated list of accounts in creation order
// @Tags        accounts
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 500)"
// @Success     200 {object} map[string]interface{} "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.accountService.ListAccounts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccount handles retrieving an account by name.
// @Summary     Get account
// @Description Get an account, including its balance
// @Tags        accounts
// @Produce     json
// @Param       name path string true "Account name"
// @Success     200 {object} map[string]interface{} "Account"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByName(accountName(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount handles deleting an account and all of its expenses.
// @Summary     Delete account
// @Description Delete an account; its expenses are removed with it
// @Tags        accounts
// @Produce     json
// @Param       name path string true "Account name"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	name := accountName(c)

	account, err := h.accountService.GetAccountByName(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(name); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ACCOUNT", "account", account.ID,
		map[string]interface{}{"name": account.Name})

	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted"})
}
