package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/audit"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/config"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/handlers"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/infra/cache"
	infraRepo "github.com/ignaciosolar/TuBarberiaAPI/internal/infra/repository"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/mail"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/media"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/payment"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/token"
	ucBooking "github.com/ignaciosolar/TuBarberiaAPI/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	m *metrics.Metrics,
	rdb *redis.Client,
	tokens *token.Issuer,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var slotCache ucBooking.SlotCache
	if rdb != nil {
		slotCache = cache.NewAvailabilityCache(rdb, 60*time.Second, log)
	}

	gateway := mail.NewResendGateway(cfg.ResendAPIKey, cfg.EmailFrom)
	notifier := mail.NewNotifier(gateway, tokens, cfg.BaseURL, m, log)

	var payments ucBooking.PaymentLinker
	if cfg.MercadoPagoToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			log.Error().Err(err).Msg("mercadopago init failed, deposit links disabled")
		} else {
			payments = mp
		}
	}

	var uploader *media.S3Uploader
	if cfg.S3Bucket != "" {
		uploader = media.NewS3Uploader(cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache, m)
	nextAvailableUC := ucBooking.NewNextAvailable(bookingRepo)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		notifier,
		payments,
		slotCache,
		m,
		auditDispatcher,
		log,
	)

	cancelReservationUC := ucBooking.NewCancelReservation(
		bookingRepo,
		notifier,
		slotCache,
		m,
		auditDispatcher,
		log,
	)

	cancelByTokenUC := ucBooking.NewCancelByToken(tokens, cancelReservationUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	barberShopHandler := handlers.NewBarberShopHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	barberServiceHandler := handlers.NewBarberServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(bookingRepo)

	availabilityHandler := handlers.NewAvailabilityHandler(
		bookingRepo,
		getAvailabilityUC,
		nextAvailableUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		bookingRepo,
		createReservationUC,
		cancelReservationUC,
		cancelByTokenUC,
	)

	blockHandler := handlers.NewBlockHandler(db, slotCache)
	emailTestHandler := handlers.NewEmailTestHandler(cfg, gateway)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC BOOKING SURFACE
		// ------------------------------
		api.GET("/barbershops", barberShopHandler.List)
		api.POST("/barbershops", barberShopHandler.Register)
		api.GET("/users/barbers/by-barbershop/:id", userHandler.ListBarbersByShop)
		api.GET("/services", serviceHandler.List)
		api.GET("/barberservices/:userId", barberServiceHandler.ListByBarber)
		api.GET("/schedule/:barberId", scheduleHandler.Get)

		api.GET("/availability/:barberId", availabilityHandler.DayView)
		api.GET("/availability/:barberId/next", availabilityHandler.Next)

		api.POST("/reservations/public", reservationHandler.CreatePublic)
		api.GET("/reservations/cancel-by-token", reservationHandler.CancelByToken)

		api.POST("/debug-email/send", emailTestHandler.Send)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)

			secured.PATCH("/me/barbershop", barberShopHandler.UpdateMine)
			secured.POST("/me/barbershop/logo", barberShopHandler.UploadLogo)

			secured.GET("/users/barbers", userHandler.ListBarbers)

			secured.POST("/barberservices/:userId", barberServiceHandler.Create)
			secured.PUT("/barberservices/:id", barberServiceHandler.Update)
			secured.DELETE("/barberservices/:id", barberServiceHandler.Delete)

			secured.POST("/schedule", scheduleHandler.Replace)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.DELETE("/reservations/:id", reservationHandler.Cancel)
			secured.GET("/reservations/barber/:barberId", reservationHandler.ListForBarber)

			secured.POST("/reservations/block", blockHandler.Create)
			secured.PUT("/reservations/block/:id", blockHandler.Update)
			secured.DELETE("/reservations/block/:id", blockHandler.Delete)
			secured.GET("/reservations/blocks/:barberId", blockHandler.ListByBarber)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
