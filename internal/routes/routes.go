// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"counpaign/internal/handlers"
	"counpaign/internal/metrics"
	"counpaign/internal/middleware"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/services/auth"
	"counpaign/internal/services/business"
	"counpaign/internal/services/campaign"
	"counpaign/internal/services/customer"
	"counpaign/internal/services/importer"
	"counpaign/internal/services/participation"
	"counpaign/internal/services/review"
	"counpaign/internal/services/terminal"
	"counpaign/internal/services/transaction"
	"counpaign/internal/services/wallet"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Services bundles every domain service the routes dispatch to.
type Services struct {
	Auth           auth.Service
	Customers      customer.Service
	Directory      business.Service
	Wallet         wallet.Service
	Ledger         transaction.Service
	Terminals      terminal.Service
	Campaigns      campaign.Service
	Participations participation.Service
	Reviews        review.Service
	Importer       *importer.Importer
}

// NewServices wires the services over one store.
func NewServices(store repositories.Store, tokens utils.TokenConfig, recorder metrics.Recorder) Services {
	return Services{
		Auth:           auth.NewService(store, tokens),
		Customers:      customer.NewService(store),
		Directory:      business.NewService(store),
		Wallet:         wallet.NewService(store, recorder),
		Ledger:         transaction.NewService(store, recorder),
		Terminals:      terminal.NewService(store, recorder),
		Campaigns:      campaign.NewService(store),
		Participations: participation.NewService(store, recorder),
		Reviews:        review.NewService(store),
		Importer:       importer.New(store),
	}
}

// Options carries the optional pieces of the router.
type Options struct {
	// AuthLimiter guards the login and register routes. Nil disables it.
	AuthLimiter fiber.Handler
	// Health lists the dependencies probed by GET /health.
	Health map[string]handlers.Pinger
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, svc Services, opts Options) {
	healthHandler := handlers.NewHealthHandler(opts.Health)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	customerHandler := handlers.NewCustomerHandler(svc.Customers, svc.Ledger, svc.Reviews)
	walletHandler := handlers.NewWalletHandler(svc.Wallet, svc.Directory)
	terminalHandler := handlers.NewTerminalHandler(svc.Terminals)
	campaignHandler := handlers.NewCampaignHandler(svc.Campaigns)
	participationHandler := handlers.NewParticipationHandler(svc.Participations)
	transactionHandler := handlers.NewTransactionHandler(svc.Ledger)
	adminHandler := handlers.NewAdminHandler(svc.Importer)

	authMiddleware := middleware.NewAuthMiddleware(svc.Auth)
	authed := authMiddleware.Handler

	app.Get("/", healthHandler.Welcome)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Public auth routes
	authRoutes := api.Group("/auth")
	if opts.AuthLimiter != nil {
		authRoutes.Use(opts.AuthLimiter)
	}
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/business/login", authHandler.LoginBusiness)
	authRoutes.Post("/terminal/login", authHandler.LoginTerminal)

	customerRoutes := api.Group("/customer", authed)
	customerRoutes.Get("/profile", customerHandler.GetProfile)
	customerRoutes.Put("/profile", customerHandler.UpdateProfile)
	customerRoutes.Get("/transactions", customerHandler.Transactions)
	customerRoutes.Post("/reviews", customerHandler.CreateReview)
	customerRoutes.Get("/reviews", customerHandler.Reviews)

	walletRoutes := api.Group("/wallet", authed)
	walletRoutes.Get("/explore", walletHandler.Explore)
	walletRoutes.Get("/explore/newest", walletHandler.Newest)
	walletRoutes.Get("/explore/:id", walletHandler.GetBusiness)
	walletRoutes.Post("/add", walletHandler.Add)
	walletRoutes.Post("/remove", walletHandler.Remove)
	walletRoutes.Post("/reorder", walletHandler.Reorder)
	walletRoutes.Get("/my", walletHandler.My)

	businessRoutes := api.Group("/business", authed, middleware.RequireRoles(models.RoleBusiness))
	businessRoutes.Post("/terminals", terminalHandler.Create)
	businessRoutes.Get("/terminals", terminalHandler.List)
	businessRoutes.Patch("/terminals/:id/deactivate", terminalHandler.Deactivate)
	businessRoutes.Patch("/terminals/:id/activate", terminalHandler.Activate)

	terminalRoutes := api.Group("/terminal", authed, middleware.RequireRoles(models.RoleTerminal))
	terminalRoutes.Post("/transaction", terminalHandler.ProcessTransaction)

	campaignRoutes := api.Group("/campaigns")
	campaignRoutes.Get("/", campaignHandler.List)
	campaignRoutes.Get("/business/:businessId", campaignHandler.ListByBusiness)
	campaignRoutes.Get("/:id", campaignHandler.Get)
	businessOnly := middleware.RequireRoles(models.RoleBusiness)
	campaignRoutes.Post("/", authed, businessOnly, campaignHandler.Create)
	campaignRoutes.Patch("/:id", authed, businessOnly, campaignHandler.Update)
	campaignRoutes.Delete("/:id", authed, businessOnly, campaignHandler.Delete)

	participationRoutes := api.Group("/participations", authed)
	customerOnly := middleware.RequireRoles(models.RoleCustomer)
	participationRoutes.Post("/join/:campaignId", customerOnly, participationHandler.Join)
	participationRoutes.Get("/my", customerOnly, participationHandler.My)
	participationRoutes.Post("/win/:id", participationHandler.Win)

	transactionRoutes := api.Group("/transactions", authed)
	transactionRoutes.Post("/process",
		middleware.RequireRoles(models.RoleBusiness, models.RoleTerminal, models.RoleAdmin),
		transactionHandler.Process)
	transactionRoutes.Get("/history/:businessId", transactionHandler.History)

	adminRoutes := api.Group("/admin", authed, middleware.RequireRoles(models.RoleAdmin))
	adminRoutes.Post("/import", adminHandler.Import)
}
