package app

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/config"
	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/handlers"
	"github.com/avc/studyhub-backend/internal/notify"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
	"github.com/avc/studyhub-backend/internal/service"
	"github.com/avc/studyhub-backend/internal/utils/jwt"
	"github.com/avc/studyhub-backend/internal/utils/password"
	"github.com/avc/studyhub-backend/internal/worker"
)

const (
	dispatchWorkers   = 3
	dispatchQueueSize = 256
)

// repositories holds all storage repositories
type repositories struct {
	user       domain.UserRepository
	ledger     domain.LedgerRepository
	loan       domain.LoanRepository
	seat       domain.SeatRepository
	hostel     domain.HostelRepository
	discussion domain.DiscussionRepository
	coupon     domain.CouponRepository
	refund     domain.RefundRepository
	load       domain.LoadRequestRepository
	canteen    domain.CanteenRepository
	catalog    domain.CatalogRepository
}

// services holds all application services
type services struct {
	auth       *service.AuthService
	ledger     *service.LedgerService
	discounts  *service.DiscountEngine
	allocator  *service.AllocatorService
	loan       *service.LoanService
	membership *service.MembershipService
	wallet     *service.WalletService
	accrual    *service.AccrualService
}

// handlerSet holds all HTTP handlers
type handlerSet struct {
	auth       *handlers.AuthHandler
	membership *handlers.MembershipHandler
	booking    *handlers.BookingHandler
	loan       *handlers.LoanHandler
	wallet     *handlers.WalletHandler
	health     *handlers.HealthHandler
}

// dependencies wires the whole object graph
type dependencies struct {
	repos        *repositories
	services     *services
	handlers     *handlerSet
	jwtManager   *jwt.Manager
	dispatchPool *worker.Pool
}

// initDependencies builds all application dependencies
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	store := postgres.NewStore(dbPool)

	repos := &repositories{
		user:       postgres.NewUserRepository(store),
		ledger:     postgres.NewLedgerRepository(store),
		loan:       postgres.NewLoanRepository(store),
		seat:       postgres.NewSeatRepository(store),
		hostel:     postgres.NewHostelRepository(store),
		discussion: postgres.NewDiscussionRepository(store),
		coupon:     postgres.NewCouponRepository(store),
		refund:     postgres.NewRefundRepository(store),
		load:       postgres.NewLoadRequestRepository(store),
		canteen:    postgres.NewCanteenRepository(store),
		catalog:    postgres.NewCatalogRepository(store),
	}

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	pushClient := notify.NewPushClient(cfg.NotificationAddress, logger)
	smsClient := notify.NewSMSClient(cfg.SMSGatewayAddress, logger)
	dispatchPool := worker.NewPool(dispatchWorkers, dispatchQueueSize, repos.user, pushClient, smsClient, logger)

	ledgerSvc := service.NewLedgerService(repos.user, repos.ledger)
	discounts := service.NewDiscountEngine(repos.coupon, service.DiscountConfig{
		BulkMonths:  cfg.BulkDiscountMonths,
		BulkPercent: cfg.BulkDiscountPercent,
		BundleFlat:  cfg.BundleDiscountFlat,
	})
	allocator := service.NewAllocatorService(store, repos.user, repos.seat, repos.hostel, repos.discussion, repos.catalog, dispatchPool)
	loanSvc := service.NewLoanService(store, repos.user, repos.loan, ledgerSvc, dispatchPool, service.LoanConfig{
		MaxAmount:           cfg.LoanMaxAmount,
		LowBalanceThreshold: cfg.LoanLowBalanceThreshold,
	})
	membershipSvc := service.NewMembershipService(store, repos.user, repos.coupon, repos.refund,
		ledgerSvc, discounts, allocator, loanSvc, dispatchPool)
	walletSvc := service.NewWalletService(store, repos.user, repos.ledger, repos.refund,
		repos.load, repos.canteen, ledgerSvc, loanSvc, dispatchPool)
	accrualSvc := service.NewAccrualService(repos.user, repos.loan, allocator, dispatchPool, service.AccrualConfig{
		LoanDailyRate:        cfg.LoanDailyRate,
		LoanDeadlineDays:     cfg.LoanDeadlineDays,
		MinInterestGap:       cfg.MinInterestGap,
		DailyFineReadingRoom: cfg.DailyFineReadingRoom,
		DailyFineHostel:      cfg.DailyFineHostel,
		WarningLead:          time.Duration(cfg.WarningLeadDays) * 24 * time.Hour,
		NotifyHour:           cfg.NotifyHour,
	}, logger)

	svcs := &services{
		auth:       service.NewAuthService(repos.user, passwordHasher, jwtManager),
		ledger:     ledgerSvc,
		discounts:  discounts,
		allocator:  allocator,
		loan:       loanSvc,
		membership: membershipSvc,
		wallet:     walletSvc,
		accrual:    accrualSvc,
	}

	hdlrs := &handlerSet{
		auth:       handlers.NewAuthHandler(svcs.auth, logger),
		membership: handlers.NewMembershipHandler(svcs.membership, logger),
		booking:    handlers.NewBookingHandler(svcs.allocator, logger),
		loan:       handlers.NewLoanHandler(svcs.loan, logger),
		wallet:     handlers.NewWalletHandler(svcs.wallet, logger),
		health:     handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:        repos,
		services:     svcs,
		handlers:     hdlrs,
		jwtManager:   jwtManager,
		dispatchPool: dispatchPool,
	}
}
