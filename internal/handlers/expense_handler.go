package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/export"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
)

// ExpenseHandler handles expense-related requests scoped to one account.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// AddExpenseRequest represents the request payload for recording an expense.
// Date defaults to today when omitted. Amount may be a JSON number or string.
type AddExpenseRequest struct {
	Date        string      `json:"date" binding:"omitempty,iso_date"`
	Description string      `json:"description" binding:"required,max=500"`
	Amount      json.Number `json:"amount" binding:"required,decimal" swaggertype:"string"`
	Category    string      `json:"category" binding:"max=100"`
}

// DeleteExpensesQuery selects expenses by their date and description.
type DeleteExpensesQuery struct {
	Date        string `form:"date" binding:"required,iso_date"`
	Description string `form:"description" binding:"required"`
}

// TotalResponse is an account's expense total.
type TotalResponse struct {
	Account string `json:"account"`
	Total   string `json:"total"`
}

// AddExpense handles recording a new expense.
// @Summary     Add an expense
// @Description Record an expense against the named account
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       name    path string            true "Account name"
// @Param       request body AddExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name}/expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	date := req.Date
	if date == "" {
		date = models.Today()
	}

	expense, err := h.expenseService.AddExpense(accountName(c), date, req.Description, req.Amount.String(), req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("ADD_EXPENSE", "expense", expense.ID, map[string]interface{}{
		"account_id":  expense.AccountID,
		"date":        expense.Date,
		"description": expense.Description,
		"amount":      expense.Amount.String(),
	})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses handles listing an account's expenses.
// @Summary     List expenses
// @Description Get a paginated list of the account's expenses in insertion order
// @Tags        expenses
// @Produce     json
// @Param       name      path  string true  "Account name"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Success     200 {object} map[string]interface{} "Paginated expenses"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.expenseService.ListExpensesPage(accountName(c), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteExpenses handles deleting expenses by date and description.
// @Summary     Delete expenses by date and description
// @Description Delete every expense of the account matching both date and description exactly
// @Tags        expenses
// @Produce     json
// @Param       name        path  string true "Account name"
// @Param       date        query string true "Expense date (YYYY-MM-DD)"
// @Param       description query string true "Expense description"
// @Success     200 {object} map[string]interface{} "Number of expenses deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account or expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name}/expenses [delete]
func (h *ExpenseHandler) DeleteExpenses(c *gin.Context) {
	var q DeleteExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	name := accountName(c)
	deleted, err := h.expenseService.DeleteExpense(name, q.Date, q.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSES", "expense", 0, map[string]interface{}{
		"account":     name,
		"date":        q.Date,
		"description": q.Description,
		"deleted":     deleted,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteExpense handles deleting a single expense by ID.
// @Summary     Delete an expense
// @Description Delete one expense of the account by its ID
// @Tags        expenses
// @Produce     json
// @Param       name path string true "Account name"
// @Param       id   path int    true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Account or expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name}/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpenseByID(accountName(c), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSE", "expense", id, nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted"})
}

// GetTotal handles summing an account's expenses.
// @Summary     Account total
// @Description Sum of the account's expense amounts; zero for an unknown account
// @Tags        expenses
// @Produce     json
// @Param       name path string true "Account name"
// @Success     200 {object} TotalResponse "Total"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{name}/total [get]
func (h *ExpenseHandler) GetTotal(c *gin.Context) {
	name := accountName(c)
	total, err := h.expenseService.TotalForAccount(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalResponse{Account: name, Total: total.StringFixed(2)})
}

// ExportCSV handles downloading an account's expenses as CSV.
// @Summary     Export expenses as CSV
// @Tags        expenses
// @Produce     text/csv
// @Param       name path string true "Account name"
// @Success     200 {file} file "CSV file"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{name}/export.csv [get]
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", export.ContentTypeCSV, func(buf *bytes.Buffer, name string, rows [][]string) error {
		return export.WriteCSV(buf, rows)
	})
}

// ExportXLSX handles downloading an account's expenses as an Excel workbook.
// @Summary     Export expenses as XLSX
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       name path string true "Account name"
// @Success     200 {file} file "XLSX file"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{name}/export.xlsx [get]
func (h *ExpenseHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", export.ContentTypeXLSX, func(buf *bytes.Buffer, name string, rows [][]string) error {
		return export.WriteXLSX(buf, name, rows)
	})
}

func (h *ExpenseHandler) export(c *gin.Context, ext, contentType string, write func(*bytes.Buffer, string, [][]string) error) {
	name := accountName(c)
	rows, err := h.expenseService.ExportRows(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, name, rows); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"."+ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
