package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/config"
	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/infrastructure/database"
	"github.com/autocarcare/garage-api/internal/infrastructure/repository"
	"github.com/autocarcare/garage-api/internal/presentation/http/handler"
	"github.com/autocarcare/garage-api/internal/presentation/http/routes"
	"github.com/autocarcare/garage-api/pkg/cache"
	"github.com/autocarcare/garage-api/pkg/email"
	"github.com/autocarcare/garage-api/pkg/oauth"
	"github.com/autocarcare/garage-api/pkg/printer"
	"github.com/autocarcare/garage-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	sparePartRepo := repository.NewSparePartRepository(db)
	bankDepositRepo := repository.NewBankDepositRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceLineRepo := repository.NewInvoiceLineRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationLineRepo := repository.NewQuotationLineRepository(db)
	termsRepo := repository.NewTermsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.Google.ClientID,
		ClientSecret:       cfg.Google.ClientSecret,
		RedirectURL:        cfg.Google.RedirectURL,
		FrontendSuccessURL: cfg.Google.FrontendSuccessURL,
		FrontendErrorURL:   cfg.Google.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	termsCache := cache.NewTTL[[]entity.TermsAndConditions](cfg.Cache.TermsTTL)
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, googleOAuthService)
	customerService := service.NewCustomerService(customerRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	sparePartService := service.NewSparePartService(sparePartRepo)
	bankDepositService := service.NewBankDepositService(bankDepositRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceLineRepo, customerRepo, sparePartRepo)
	quotationService := service.NewQuotationService(quotationRepo, quotationLineRepo, customerRepo)
	termsService := service.NewTermsService(termsRepo, termsCache)
	reportService := service.NewReportService(invoiceRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	documentService := service.NewDocumentService(invoiceRepo, quotationRepo, userRepo, termsService, emailService)
	printerService := service.NewPrinterService(thermalPrinter, invoiceRepo, userRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		SparePart:   handler.NewSparePartHandler(sparePartService),
		BankDeposit: handler.NewBankDepositHandler(bankDepositService),
		Invoice:     handler.NewInvoiceHandler(invoiceService, documentService, printerService),
		Quotation:   handler.NewQuotationHandler(quotationService, documentService),
		Terms:       handler.NewTermsHandler(termsService),
		Report:      handler.NewReportHandler(reportService),
		User:        handler.NewUserHandler(userService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
