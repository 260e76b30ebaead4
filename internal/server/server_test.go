package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"expensetracker/internal/models"
	"expensetracker/internal/testutil"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	return &testApp{DB: db, Router: NewRouter(db)}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest is request that fails the test on an unexpected status.
func (app *testApp) mustRequest(t *testing.T, want int, method, path, body string) map[string]interface{} {
	t.Helper()
	rec := app.request(method, path, body)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func balanceOf(t *testing.T, app *testApp, name string) string {
	t.Helper()
	result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/accounts/"+name, "")
	return result["account"].(map[string]interface{})["balance"].(string)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	result := app.mustRequest(t, http.StatusOK, "GET", "/api/health", "")
	if result["status"] != "ok" {
		t.Errorf("unexpected health body: %v", result)
	}
}

func TestNoRoute(t *testing.T) {
	app := setupApp(t)
	rec := app.request("GET", "/api/v1/nowhere", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := parseJSON(t, rec)["error"].(map[string]interface{})["code"]; code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", code)
	}
}

func TestExpenseFlow_RoundTrip(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"Checking"}`)
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts/Checking/expenses",
		`{"date":"2024-12-14","description":"Lunch","amount":20.50,"category":"Food"}`)
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts/Checking/expenses",
		`{"date":"2024-12-14","description":"Groceries","amount":"45.75","category":"Food"}`)

	list := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/accounts/Checking/expenses", "")
	data := list["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(data))
	}
	if data[0].(map[string]interface{})["description"] != "Lunch" {
		t.Errorf("expected Lunch first, got %v", data[0])
	}

	total := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/accounts/Checking/total", "")
	if total["total"] != "66.25" {
		t.Errorf("expected total 66.25, got %v", total["total"])
	}

	report := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/report", "")
	lines := report["report"].([]interface{})
	if len(lines) != 1 || lines[0].(map[string]interface{})["total"] != "66.25" {
		t.Errorf("unexpected report: %v", lines)
	}

	rec := app.request("GET", "/api/v1/accounts/Checking/export.csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on export, got %d", rec.Code)
	}
	want := "Date,Description,Amount,Category\n2024-12-14,Lunch,20.5,Food\n2024-12-14,Groceries,45.75,Food\n"
	if rec.Body.String() != want {
		t.Errorf("unexpected CSV:\n%s", rec.Body.String())
	}
}

func TestExpenseFlow_WeakKeyDelete(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"Cafe"}`)
	for _, amount := range []string{"3.50", "4.00"} {
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts/Cafe/expenses",
			fmt.Sprintf(`{"date":"2024-12-14","description":"Coffee","amount":%q}`, amount))
	}

	result := app.mustRequest(t, http.StatusOK, "DELETE", "/api/v1/accounts/Cafe/expenses?date=2024-12-14&description=Coffee", "")
	if result["deleted"] != float64(2) {
		t.Errorf("expected both duplicates deleted, got %v", result["deleted"])
	}

	app.mustRequest(t, http.StatusNotFound, "DELETE", "/api/v1/accounts/Cafe/expenses?date=2024-12-14&description=Coffee", "")
}

func TestAccountFlow_CascadeDelete(t *testing.T) {
	app := setupApp(t)

	created := app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"Travel"}`)
	id := created["account"].(map[string]interface{})["id"].(float64)
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts/Travel/expenses",
		`{"date":"2024-12-14","description":"Train","amount":30}`)

	app.mustRequest(t, http.StatusConflict, "POST", "/api/v1/accounts", `{"name":"Travel"}`)
	app.mustRequest(t, http.StatusOK, "DELETE", "/api/v1/accounts/Travel", "")
	app.mustRequest(t, http.StatusNotFound, "GET", "/api/v1/accounts/Travel/expenses", "")

	var orphans int64
	app.DB.Model(&models.Expense{}).Where("account_id = ?", uint(id)).Count(&orphans)
	if orphans != 0 {
		t.Errorf("expected no orphaned expenses, got %d", orphans)
	}

	var audits int64
	app.DB.Model(&models.AuditLog{}).Where("action = ?", "DELETE_ACCOUNT").Count(&audits)
	if audits != 1 {
		t.Errorf("expected 1 DELETE_ACCOUNT audit entry, got %d", audits)
	}
}

func TestTransferFlow(t *testing.T) {
	t.Run("moves balance", func(t *testing.T) {
		app := setupApp(t)
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"A"}`)
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"B"}`)

		app.mustRequest(t, http.StatusOK, "POST", "/api/v1/transfers", `{"from":"A","to":"B","amount":"100.00"}`)

		if got := balanceOf(t, app, "A"); got != "-100" {
			t.Errorf("expected A balance -100, got %s", got)
		}
		if got := balanceOf(t, app, "B"); got != "100" {
			t.Errorf("expected B balance 100, got %s", got)
		}
	})

	t.Run("unknown destination rolls back", func(t *testing.T) {
		app := setupApp(t)
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/accounts", `{"name":"A"}`)

		rec := app.request("POST", "/api/v1/transfers", `{"from":"A","to":"Ghost","amount":25}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := balanceOf(t, app, "A"); got != "0" {
			t.Errorf("expected A balance untouched, got %s", got)
		}
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, addr, http.NotFoundHandler(), time.Second)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
