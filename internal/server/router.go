// Package server assembles the HTTP API over the ledger services and runs it.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "expensetracker/internal/docs" // Import swagger docs
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/handlers"
	"expensetracker/internal/middleware"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// NewRouter wires the ledger services over db into a Gin engine.
func NewRouter(db *gorm.DB) *gin.Engine {
	validator.Register()

	ledger := services.NewLedger(db)

	accountHandler := handlers.NewAccountHandler(ledger.AccountServicer, ledger.Audit)
	expenseHandler := handlers.NewExpenseHandler(ledger.ExpenseServicer, ledger.Audit)
	reportHandler := handlers.NewReportHandler(ledger.ReportServicer)
	transferHandler := handlers.NewTransferHandler(ledger.TransferServicer, ledger.Audit)
	categoryHandler := handlers.NewCategoryHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Route not found"))
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(apperrors.Wrap(apperrors.ErrStorageUnavailable, err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:name", accountHandler.GetAccount)
	accounts.DELETE("/:name", accountHandler.DeleteAccount)
	accounts.GET("/:name/expenses", expenseHandler.ListExpenses)
	accounts.POST("/:name/expenses", expenseHandler.AddExpense)
	accounts.DELETE("/:name/expenses", expenseHandler.DeleteExpenses)
	accounts.DELETE("/:name/expenses/:id", expenseHandler.DeleteExpense)
	accounts.GET("/:name/total", expenseHandler.GetTotal)
	accounts.GET("/:name/export.csv", expenseHandler.ExportCSV)
	accounts.GET("/:name/export.xlsx", expenseHandler.ExportXLSX)

	v1.GET("/report", reportHandler.GetReport)
	v1.POST("/transfers", transferHandler.Transfer)
	v1.GET("/categories", categoryHandler.ListCategories)

	return router
}
