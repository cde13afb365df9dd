package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paintpro/internal/config"
	"paintpro/internal/database"
	"paintpro/internal/middleware"
	"paintpro/internal/modules/auth"
	"paintpro/internal/modules/catalog"
	"paintpro/internal/modules/dashboard"
	"paintpro/internal/modules/intake"
	"paintpro/internal/modules/matching"
	"paintpro/internal/modules/tasks"
	"paintpro/internal/modules/upload"
	"paintpro/internal/modules/vendor"
	jwtsvc "paintpro/internal/pkg/jwt"
	"paintpro/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&upload.Upload{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	uploadService := upload.NewService(upload.NewRepository(db), cfg.UploadsDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	vendorService := vendor.NewService(vendorRepo, userRepo, uploadService)
	vendorHandler := vendor.NewHandler(vendorService)

	intakeService := intake.NewService(requestRepo, uploadService)
	intakeHandler := intake.NewHandler(intakeService)

	matchingService := matching.NewService(requestRepo, vendorService, assignmentRepo)
	matchingHandler := matching.NewHandler(matchingService)

	tasksService := tasks.NewService(assignmentRepo, cfg.CompletionRequiresAfterImages)
	tasksHandler := tasks.NewHandler(tasksService)

	catalogService := catalog.NewService(vendorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	dashboardService := dashboard.NewService(requestRepo, vendorRepo, assignmentRepo, uploadService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		vendorHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			uploadHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)

			customer := protected.Group("/")
			customer.Use(middleware.RequireRole("customer"))
			intakeHandler.RegisterCustomerRoutes(customer)

			vendorGroup := protected.Group("/")
			vendorGroup.Use(middleware.RequireRole("vendor"))
			vendorHandler.RegisterVendorRoutes(vendorGroup)
			tasksHandler.RegisterVendorRoutes(vendorGroup)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			vendorHandler.RegisterAdminRoutes(admin)
			intakeHandler.RegisterAdminRoutes(admin)
			matchingHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
