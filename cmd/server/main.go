package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-appointment-backend/internal/config"
	"hospital-appointment-backend/internal/database"
	"hospital-appointment-backend/internal/handler"
	"hospital-appointment-backend/internal/middleware"
	"hospital-appointment-backend/internal/repository"
	"hospital-appointment-backend/internal/service"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(patientRepo, doctorRepo, auditRepo, cfg.Registration.DoctorSecretKey)
	doctorService := service.NewDoctorService(doctorRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	doctorHandler := handler.NewDoctorHandler(doctorService)

	// 9. Define routes
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/health/db", healthHandler.DatabaseHealth)

	authRequired := middleware.AuthMiddleware(authService)

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register/patient", authHandler.RegisterPatient)
			auth.POST("/register/doctor", authHandler.RegisterDoctor)
			auth.POST("/login/patient", authHandler.LoginPatient)
			auth.POST("/login/doctor", authHandler.LoginDoctor)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me/patient", authRequired, middleware.RequirePatient(), authHandler.MePatient)
			auth.GET("/me/doctor", authRequired, middleware.RequireDoctor(), authHandler.MeDoctor)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			// Public code lookup so patients can share status links
			appointments.GET("/code/:code", appointmentHandler.GetByCode)

			appointments.POST("", authRequired, middleware.RequirePatient(), appointmentHandler.Create)
			appointments.GET("/my", authRequired, appointmentHandler.My)
			appointments.GET("/all", authRequired, middleware.RequireDoctor(), appointmentHandler.All)
			appointments.PUT("/:id", authRequired, middleware.RequireDoctor(), appointmentHandler.Update)
			appointments.DELETE("/:id", authRequired, appointmentHandler.Cancel)
		}

		// Doctor directory and profile routes
		api.GET("/doctors", authRequired, middleware.RequirePatient(), doctorHandler.List)
		api.GET("/doctors/me", authRequired, middleware.RequireDoctor(), doctorHandler.Me)
		api.PUT("/doctors/me", authRequired, middleware.RequireDoctor(), doctorHandler.UpdateMe)

		// Patient profile route
		api.GET("/patients/me", authRequired, middleware.RequirePatient(), authHandler.MePatient)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
