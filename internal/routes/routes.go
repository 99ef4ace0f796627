package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/audit"
	"github.com/salao-m2a/salon-scheduler/internal/auth"
	"github.com/salao-m2a/salon-scheduler/internal/config"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/handlers"
	infraRepo "github.com/salao-m2a/salon-scheduler/internal/infra/repository"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	ucSchedule "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	revoked := auth.NewRevocationList(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (AGENDA)
	// ======================================================
	searchOpenSlotsUC := ucSchedule.NewSearchOpenSlots(scheduleRepo)
	searchUpcomingDatesUC := ucSchedule.NewSearchUpcomingDates(scheduleRepo)
	searchAvailablePeopleUC := ucSchedule.NewSearchAvailablePeople(scheduleRepo)

	bookAppointmentUC := ucSchedule.NewBookAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	changeStatusUC := ucSchedule.NewChangeAppointmentStatus(
		scheduleRepo,
		auditDispatcher,
	)

	bulkChangeStatusUC := ucSchedule.NewBulkChangeStatus(
		scheduleRepo,
		auditDispatcher,
	)

	earningsReportUC := ucSchedule.NewBuildEarningsReport(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, revoked)
	meHandler := handlers.NewMeHandler(db)

	autocompleteHandler := handlers.NewAutocompleteHandler(
		searchOpenSlotsUC,
		searchUpcomingDatesUC,
		searchAvailablePeopleUC,
	)

	personHandler := handlers.NewPersonHandler(db, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, scheduleRepo, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(db, scheduleRepo, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	timeSlotHandler := handlers.NewTimeSlotHandler(db, auditDispatcher)
	slotHandler := handlers.NewSlotHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookAppointmentUC,
		changeStatusUC,
		bulkChangeStatusUC,
	)

	reportHandler := handlers.NewReportHandler(earningsReportUC)
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
		// AUTOCOMPLETES
		// ------------------------------
		// sem credencial devolvem lista vazia, nunca 401
		autocomplete := api.Group("/autocomplete")
		autocomplete.Use(middleware.OptionalAuthMiddleware(tokens, revoked))
		{
			autocomplete.GET("/available-slots", autocompleteHandler.OpenSlots)
			autocomplete.GET("/available-dates", autocompleteHandler.UpcomingDates)
			autocomplete.GET("/available-people", autocompleteHandler.AvailablePeople)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, revoked))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			secured.GET("/people", personHandler.List)
			secured.POST("/people", personHandler.Create)
			secured.PATCH("/people/:id", personHandler.Update)
			secured.DELETE("/people/:id", personHandler.Delete)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.PATCH("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/time-slots", timeSlotHandler.List)
			secured.POST("/time-slots", timeSlotHandler.Create)
			secured.PATCH("/time-slots/:id", timeSlotHandler.Update)
			secured.DELETE("/time-slots/:id", timeSlotHandler.Delete)

			secured.GET("/slots", slotHandler.List)
			secured.POST("/slots", slotHandler.Create)
			secured.PATCH("/slots/:id", slotHandler.Update)
			secured.DELETE("/slots/:id", slotHandler.Delete)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/bulk-status", appointmentHandler.BulkStatus)

			// ------------------------------
			// RELATÓRIOS E AUDITORIA
			// ------------------------------
			secured.GET("/reports/earnings", reportHandler.Earnings)

			secured.GET("/audit-logs",
				middleware.RequireRole(rbac.RoleAdmin, rbac.RoleOwner),
				auditLogsHandler.List,
			)
		}
	}
}
