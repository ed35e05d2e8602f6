package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/handlers"
	"github.com/avc/studyhub-backend/internal/utils/jwt"
)

// setupRouter creates and configures the router
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, logger)
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware installs the global middleware chain
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes registers the application routes
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// health check endpoints
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// public endpoints
	r.Post("/api/user/register", deps.handlers.auth.Register)
	r.Post("/api/user/login", deps.handlers.auth.Login)

	// authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Post("/api/membership/reading-room", deps.handlers.membership.PurchaseReadingRoom)
		r.Post("/api/membership/reading-room/renew", deps.handlers.membership.RenewReadingRoom)
		r.Post("/api/membership/hostel", deps.handlers.membership.PurchaseHostel)
		r.Post("/api/membership/hostel/renew", deps.handlers.membership.RenewHostel)
		r.Post("/api/membership/withdraw", deps.handlers.membership.WithdrawService)
		r.Post("/api/membership/price", deps.handlers.membership.CalculatePrice)

		r.Post("/api/discussion/bookings", deps.handlers.booking.BookDiscussionRoom)

		r.Post("/api/loans", deps.handlers.loan.RequestLoan)
		r.Get("/api/loans/active", deps.handlers.loan.GetActiveLoan)

		r.Get("/api/user/balance", deps.handlers.wallet.GetBalance)
		r.Get("/api/user/transactions", deps.handlers.wallet.GetTransactions)
		r.Post("/api/user/balance/load", deps.handlers.wallet.RequestBalanceLoad)
		r.Post("/api/user/balance/refund", deps.handlers.wallet.RequestBalanceRefund)
		r.Post("/api/canteen/orders", deps.handlers.wallet.PlaceCanteenOrder)

		// operator-privileged endpoints
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireAdmin())

			r.Post("/api/admin/seats", deps.handlers.booking.AllocateSeat)
			r.Post("/api/admin/balance/topup", deps.handlers.wallet.TopUpBalance)
			r.Post("/api/admin/balance/load/approve", deps.handlers.wallet.ApproveBalanceLoad)
		})
	})
}
