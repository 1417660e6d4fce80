package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/audit"
	"github.com/careslot/clinic-scheduler/internal/auth"
	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/config"
	"github.com/careslot/clinic-scheduler/internal/handlers"
	infraRepo "github.com/careslot/clinic-scheduler/internal/infra/repository"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/payment"
	"github.com/careslot/clinic-scheduler/internal/storage"
	ucAppointment "github.com/careslot/clinic-scheduler/internal/usecase/appointment"
	ucBooking "github.com/careslot/clinic-scheduler/internal/usecase/booking"
	ucSchedule "github.com/careslot/clinic-scheduler/internal/usecase/schedule"
)

type Deps struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Cache   *cache.Cache
	Gateway payment.Gateway
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	orderRepo := infraRepo.NewPaymentOrderGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	presigner := storage.NewPresigner(d.Cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	getTemplateUC := ucSchedule.NewGetTemplate(scheduleRepo)
	setTemplateUC := ucSchedule.NewSetTemplate(scheduleRepo, auditDispatcher)
	clearTemplateUC := ucSchedule.NewClearTemplate(scheduleRepo, auditDispatcher)
	getAvailabilityUC := ucSchedule.NewGetAvailability(scheduleRepo, appointmentRepo, d.Cache)

	initiateBookingUC := ucBooking.NewInitiateBooking(orderRepo, getAvailabilityUC, d.Gateway)
	completeBookingUC := ucBooking.NewCompleteBooking(
		orderRepo,
		appointmentRepo,
		d.Gateway,
		d.Cache,
		auditDispatcher,
		d.Log,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, d.Cache, auditDispatcher)
	listForDoctorUC := ucAppointment.NewListForDoctor(appointmentRepo)
	listForPatientUC := ucAppointment.NewListForPatient(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg)
	meHandler := handlers.NewMeHandler(d.DB)
	scheduleHandler := handlers.NewScheduleHandler(getTemplateUC, setTemplateUC, clearTemplateUC)
	doctorHandler := handlers.NewDoctorHandler(d.DB, getAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(initiateBookingUC, completeBookingUC)
	appointmentHandler := handlers.NewAppointmentHandler(updateStatusUC, listForDoctorUC, listForPatientUC)
	departmentHandler := handlers.NewDepartmentHandler(d.DB)
	adminHandler := handlers.NewAdminHandler(d.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	storageHandler := handlers.NewStorageHandler(presigner)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/patient/register", authHandler.RegisterPatient)
		api.POST("/auth/patient/login", authHandler.LoginPatient)
		api.POST("/auth/doctor/register", authHandler.RegisterDoctor)
		api.POST("/auth/doctor/login", authHandler.LoginDoctor)
		api.POST("/auth/admin/login", authHandler.LoginAdmin)

		api.GET("/departments", departmentHandler.List)
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.GET("/doctors/:id/availability", doctorHandler.Availability)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg, d.DB))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)
			secured.POST("/storage/presign", storageHandler.Presign)

			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			// ------------------------------
			// PATIENT
			// ------------------------------
			patients := secured.Group("/")
			patients.Use(middleware.RequireRole(auth.RolePatient))
			{
				patients.POST("/bookings/initiate", bookingHandler.Initiate)
				patients.POST("/bookings/complete", bookingHandler.Complete)
				patients.GET("/patient/appointments", appointmentHandler.ListForPatient)
			}

			// ------------------------------
			// DOCTOR
			// ------------------------------
			doctors := secured.Group("/")
			doctors.Use(middleware.RequireRole(auth.RoleDoctor))
			{
				doctors.GET("/doctor/slots/:weekday", scheduleHandler.Get)
				doctors.PUT("/doctor/slots", scheduleHandler.Set)
				doctors.DELETE("/doctor/slots/:weekday", scheduleHandler.Clear)
				doctors.GET("/doctor/appointments", appointmentHandler.ListForDoctor)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(auth.RoleAdmin))
			{
				admin.POST("/departments", departmentHandler.Create)
				admin.PATCH("/departments/:id", departmentHandler.Update)
				admin.DELETE("/departments/:id", departmentHandler.Delete)

				admin.GET("/doctors", adminHandler.ListDoctors)
				admin.PATCH("/doctors/:id/verify", adminHandler.VerifyDoctor)
				admin.PATCH("/doctors/:id/block", adminHandler.BlockDoctor)

				admin.GET("/patients", adminHandler.ListPatients)
				admin.PATCH("/patients/:id/block", adminHandler.BlockPatient)

				admin.GET("/wallet", adminHandler.Wallet)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
