package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
)

// --- mock account service ---

type mockAccountService struct {
	createAccountFn    func(name string) (*models.Account, error)
	deleteAccountFn    func(name string) error
	getAccountByNameFn func(name string) (*models.Account, error)
	listAccountsFn     func(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	listAccountNamesFn func() ([]string, error)
}

func (m *mockAccountService) CreateAccount(name string) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(name)
	}
	return &models.Account{Name: name}, nil
}

func (m *mockAccountService) DeleteAccount(name string) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(name)
	}
	return nil
}

func (m *mockAccountService) GetAccountByName(name string) (*models.Account, error) {
	if m.getAccountByNameFn != nil {
		return m.getAccountByNameFn(name)
	}
	return &models.Account{Base: models.Base{ID: 1}, Name: name}, nil
}

func (m *mockAccountService) ListAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	if m.listAccountsFn != nil {
		return m.listAccountsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Account{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockAccountService) ListAccountNames() ([]string, error) {
	if m.listAccountNamesFn != nil {
		return m.listAccountNamesFn()
	}
	return []string{}, nil
}

// verify interface compliance
var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.ListAccounts)
	r.GET("/accounts/:name", handler.GetAccount)
	r.DELETE("/accounts/:name", handler.DeleteAccount)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		acctSvc := &mockAccountService{
			createAccountFn: func(name string) (*models.Account, error) {
				return &models.Account{Base: models.Base{ID: 3}, Name: name, Balance: decimal.Zero}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, audit))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Checking"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		acct := parseJSON(t, rec)["account"].(map[string]interface{})
		if acct["name"] != "Checking" {
			t.Errorf("expected Checking, got %v", acct["name"])
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_ACCOUNT" || audit.entries[0].resourceID != 3 {
			t.Errorf("expected one CREATE_ACCOUNT audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.CodeInvalidInput)
	})

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		acctSvc := &mockAccountService{
			createAccountFn: func(string) (*models.Account, error) {
				return nil, apperrors.ErrDuplicateAccount
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Checking"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.CodeConstraintViolation)
	})
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		var got pagination.PageRequest
		acctSvc := &mockAccountService{
			listAccountsFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
				got = page
				resp := pagination.NewPageResponse([]models.Account{{Name: "A"}}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts?page=2&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Page != 2 || got.PageSize != 10 {
			t.Errorf("expected page 2 size 10, got %+v", got)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 1 {
			t.Errorf("expected 1 account, got %d", len(data))
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts?page_size=9999", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Run("returns balance", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByNameFn: func(name string) (*models.Account, error) {
				return &models.Account{Name: name, Balance: decimal.RequireFromString("-100")}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts/A", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		acct := parseJSON(t, rec)["account"].(map[string]interface{})
		if acct["balance"] != "-100" {
			t.Errorf("expected balance -100, got %v", acct["balance"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByNameFn: func(string) (*models.Account, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts/Nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.CodeNotFound)
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Run("deletes and audits", func(t *testing.T) {
		var deleted string
		audit := &mockAuditService{}
		acctSvc := &mockAccountService{
			deleteAccountFn: func(name string) error {
				deleted = name
				return nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, audit))

		rec := doRequest(r, "DELETE", "/accounts/Travel", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != "Travel" {
			t.Errorf("expected Travel deleted, got %q", deleted)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_ACCOUNT" {
			t.Errorf("expected DELETE_ACCOUNT audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 500 on unexpected error", func(t *testing.T) {
		acctSvc := &mockAccountService{
			deleteAccountFn: func(string) error { return errors.New("disk on fire") },
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/accounts/Travel", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.CodeInternal)
	})
}
