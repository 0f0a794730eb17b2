package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autocarcare/garage-api/internal/config"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/internal/presentation/http/handler"
	"github.com/autocarcare/garage-api/internal/presentation/http/middleware"
	"github.com/autocarcare/garage-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Employee    *handler.EmployeeHandler
	SparePart   *handler.SparePartHandler
	BankDeposit *handler.BankDepositHandler
	Invoice     *handler.InvoiceHandler
	Quotation   *handler.QuotationHandler
	Terms       *handler.TermsHandler
	Report      *handler.ReportHandler
	User        *handler.UserHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.POST("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Customers
	registerCustomerRoutes(protected, h)

	// Employees
	registerEmployeeRoutes(protected, h)

	// Spare parts
	registerSparePartRoutes(protected, h)

	// Bank deposits
	registerBankDepositRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h, deps)

	// Quotations
	registerQuotationRoutes(protected, h)

	// Terms & conditions
	registerTermsRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	employees.Use(middleware.RequirePermission("manage-employees"))
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}
}

func registerSparePartRoutes(protected *gin.RouterGroup, h *Handlers) {
	spareParts := protected.Group("/spare-parts")
	spareParts.Use(middleware.RequirePermission("manage-spare-parts"))
	{
		spareParts.GET("", h.SparePart.List)
		spareParts.POST("", h.SparePart.Create)
		spareParts.GET("/:id", h.SparePart.Get)
		spareParts.PUT("/:id", h.SparePart.Update)
		spareParts.DELETE("/:id", h.SparePart.Delete)
	}
}

func registerBankDepositRoutes(protected *gin.RouterGroup, h *Handlers) {
	deposits := protected.Group("/bank-deposits")
	deposits.Use(middleware.RequirePermission("manage-deposits"))
	{
		deposits.GET("", h.BankDeposit.List)
		deposits.POST("", h.BankDeposit.Create)
		deposits.GET("/:id", h.BankDeposit.Get)
		deposits.PUT("/:id", h.BankDeposit.Update)
		deposits.DELETE("/:id", h.BankDeposit.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission("manage-invoices"))
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/payments", h.Invoice.RecordPayment)
		invoices.GET("/:id/pdf", h.Invoice.DownloadPDF)
		invoices.POST("/:id/email", h.Invoice.Email)
		invoices.POST("/:id/receipt", h.Invoice.PrintReceipt)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.GET("/:id/pdf", h.Quotation.DownloadPDF)
	}
}

func registerTermsRoutes(protected *gin.RouterGroup, h *Handlers) {
	terms := protected.Group("/terms")
	terms.Use(middleware.RequirePermission("manage-terms"))
	{
		terms.GET("", h.Terms.List)
		terms.GET("/active", h.Terms.Active)
		terms.POST("", h.Terms.Create)
		terms.PUT("/:id", h.Terms.Update)
		terms.DELETE("/:id", h.Terms.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/gst-slabs", h.Report.SlabReport)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
