package api

import (
	"log"

	"github.com/GlobisHR/site_service/config"
	"github.com/GlobisHR/site_service/infra/queue"
	"github.com/GlobisHR/site_service/internal/api/rest/handlers"
	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/internal/helper"
	"github.com/GlobisHR/site_service/internal/repository"
	"github.com/GlobisHR/site_service/internal/services"
	"github.com/GlobisHR/site_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260418

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.AboutUs{},
		&domain.Service{},
		&domain.Job{},
		&domain.Application{},
		&domain.BlogPost{},
		&domain.BlogImage{},
		&domain.BlogVideo{},
		&domain.Office{},
		&domain.ContactInquiry{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New(cfg.CloudinaryUrl)
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	aboutRepo := repository.NewAboutRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	// ---------- Services ----------
	siteSvc := services.NewSiteService(
		aboutRepo,
		serviceRepo,
		jobRepo,
		appRepo,
		blogRepo,
		officeRepo,
		inquiryRepo,
		up,
		kafkaProducer,
	)
	adminSvc := services.NewAdminService(
		aboutRepo,
		serviceRepo,
		jobRepo,
		appRepo,
		blogRepo,
		officeRepo,
		inquiryRepo,
		up,
		authHelper,
		cfg.AdminEmail,
		cfg.AdminPassword,
	)

	// ---------- Handlers ----------
	siteHandler := handlers.NewSiteHandler(siteSvc)
	siteHandler.SetupRoutes(app)

	adminHandler := handlers.NewAdminHandler(adminSvc, authHelper)
	adminHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
