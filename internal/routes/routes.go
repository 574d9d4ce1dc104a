package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/empresatech/resource-booking/internal/audit"
	"github.com/empresatech/resource-booking/internal/cache"
	"github.com/empresatech/resource-booking/internal/config"
	"github.com/empresatech/resource-booking/internal/handlers"
	infraRepo "github.com/empresatech/resource-booking/internal/infra/repository"
	"github.com/empresatech/resource-booking/internal/middleware"
	"github.com/empresatech/resource-booking/internal/storage"
	ucReservation "github.com/empresatech/resource-booking/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewSlotCache(cfg)
	photoUploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		slotCache,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
		slotCache,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		slotCache,
		cfg.Timezone,
	)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)

	availabilityUC := ucReservation.NewGetAvailability(
		reservationRepo,
		slotCache,
	)

	deleteResourceUC := ucReservation.NewDeleteResource(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)

	resourceHandler := handlers.NewResourceHandler(
		db,
		cfg,
		photoUploader,
		deleteResourceUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		db,
		cfg,
		createReservationUC,
		updateReservationUC,
		cancelReservationUC,
		listReservationsUC,
		availabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// COLABORADORES
			// ------------------------------
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			// ------------------------------
			// RECURSOS
			// ------------------------------
			secured.GET("/resources", resourceHandler.List)
			secured.GET("/resources/:id", resourceHandler.Get)
			secured.POST("/resources", resourceHandler.Create)
			secured.PUT("/resources/:id", resourceHandler.Update)
			secured.DELETE("/resources/:id", resourceHandler.Delete)
			secured.POST("/resources/:id/photo", resourceHandler.UploadPhoto)
			secured.GET("/resources/:id/availability", reservationHandler.Availability)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.List)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.PUT("/reservations/:id", reservationHandler.Update)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
