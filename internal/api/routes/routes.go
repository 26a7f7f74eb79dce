package routes

import (
	"log"

	"felka-transportes-backend/internal/api/handlers"
	"felka-transportes-backend/internal/api/middleware"
	"felka-transportes-backend/internal/auth"
	"felka-transportes-backend/internal/config"
	"felka-transportes-backend/internal/repository"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Load the schedule policy; generation falls back to the built-in grid
	// when the file is absent
	policy, err := config.LoadSchedulePolicy(cfg.SchedulePolicyPath)
	if err != nil {
		log.Printf("Warning: failed to load schedule policy, using defaults: %v", err)
		policy = config.DefaultSchedulePolicy()
	}

	// Initialize repositories
	slotRepo := repository.NewScheduleSlotRepository(db)
	bookingRepo := repository.NewCargoBookingRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	maintenanceRepo := repository.NewMaintenanceRequestRepository(db)

	// Initialize services
	notifier := service.NewLogNotifier()
	schedulingService := service.NewSchedulingService(slotRepo, bookingRepo, policy, notifier, validator)
	vehicleService := service.NewVehicleService(vehicleRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	visitorService := service.NewVisitorService(visitorRepo, validator)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, vehicleRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	visitorHandler := handlers.NewVisitorHandler(visitorService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)

	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	api.Use(authMiddleware.OptionalActor())
	{
		// Cargo scheduling
		scheduling := api.Group("/cargo-scheduling")
		{
			scheduling.GET("/slots", schedulingHandler.GetSlots)
			scheduling.POST("/create-week", authMiddleware.RequireManager(), schedulingHandler.CreateWeekSlots)
			scheduling.POST("/block-slots", authMiddleware.RequireManager(), schedulingHandler.BlockSlots)
			scheduling.POST("/book", schedulingHandler.CreateBooking)
			scheduling.GET("/my-bookings", schedulingHandler.MyBookings)
			scheduling.GET("/all-bookings", authMiddleware.RequireManager(), schedulingHandler.AllBookings)
			scheduling.DELETE("/cancel/:id", schedulingHandler.CancelBooking)
			scheduling.PATCH("/manager-action/:id", authMiddleware.RequireManager(), schedulingHandler.ManagerAction)
		}

		// Fleet registry
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.ListVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		}

		// HR registry
		employees := api.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		// Visitor registry
		visitors := api.Group("/visitors")
		{
			visitors.GET("", visitorHandler.ListVisitors)
			visitors.POST("", visitorHandler.CreateVisitor)
			visitors.GET("/:id", visitorHandler.GetVisitor)
			visitors.PUT("/:id", visitorHandler.UpdateVisitor)
			visitors.POST("/:id/check-in", visitorHandler.CheckIn)
		}

		// Maintenance tickets
		maintenance := api.Group("/maintenance-requests")
		{
			maintenance.GET("", maintenanceHandler.ListRequests)
			maintenance.POST("", maintenanceHandler.CreateRequest)
			maintenance.GET("/:id", maintenanceHandler.GetRequest)
			maintenance.PATCH("/:id/status", authMiddleware.RequireManager(), maintenanceHandler.UpdateStatus)
		}
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
