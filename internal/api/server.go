package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/zenith-max/Wellmed/config"
	"github.com/zenith-max/Wellmed/infra/queue"
	"github.com/zenith-max/Wellmed/internal/api/rest/handlers"
	"github.com/zenith-max/Wellmed/internal/api/rest/middleware"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/repository"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/cloudinary"
	"github.com/zenith-max/Wellmed/pkg/mailer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// corsConfig allows credentials only for a concrete origin; fiber's cors
// middleware panics on AllowCredentials combined with a wildcard.
func corsConfig(baseURL string) cors.Config {
	return cors.Config{
		AllowOrigins:     baseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: baseURL != "*",
	}
}

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(corsConfig(cfg.BaseURL)))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260114

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Review{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Coupon{},
		&domain.Setting{},
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
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)
	smtp := mailer.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.MailFrom,
		cfg.MailFromName,
	)

	authHelper := helper.SetupAuth(cfg.JWTSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, authHelper, smtp)
	productSvc := services.NewProductService(productRepo, up)
	inventorySvc := services.NewInventoryService(productRepo)
	couponSvc := services.NewCouponService(couponRepo)
	settingsSvc := services.NewSettingsService(settingRepo, cfg.DefaultShippingCharge)
	orderSvc := services.NewOrderService(
		orderRepo,
		productRepo,
		inventorySvc,
		couponSvc,
		settingsSvc,
		kafkaProducer,
	)
	paymentSvc := services.NewPaymentService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	seedAdmin(userRepo, authHelper, cfg)

	// materializes the shippingCharge row with its default on first boot
	if _, err := settingsSvc.GetShippingCharge(); err != nil {
		log.Println("shipping charge seed error:", err)
	}

	// ---------- Handlers + Routes ----------
	authHandler := handlers.NewAuthHandler(authSvc, authHelper)
	productHandler := handlers.NewProductHandler(productSvc, authHelper)
	orderHandler := handlers.NewOrderHandler(orderSvc, authHelper)
	couponHandler := handlers.NewCouponHandler(couponSvc)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)

	api := app.Group("/api")

	// public
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-email", authHandler.VerifyEmail)
	auth.Post("/resend-verification", authHandler.ResendVerification)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	api.Get("/products", productHandler.List)
	api.Get("/products/:productID", productHandler.Get)
	api.Get("/coupons/:code/validate", couponHandler.Validate)
	api.Get("/settings/shipping-charge", settingsHandler.GetShippingCharge)

	// authenticated
	authed := api.Group("", middleware.AuthMiddleware(authHelper))
	authed.Get("/auth/me", authHandler.Me)
	authed.Post("/products/:productID/reviews", productHandler.AddReview)
	authed.Post("/orders", orderHandler.Create)
	authed.Get("/orders", orderHandler.MyOrders)
	authed.Get("/orders/:orderID", orderHandler.Get)
	authed.Post("/orders/:orderID/cancel", orderHandler.Cancel)
	authed.Post("/payments/order", paymentHandler.CreatePaymentOrder)

	// admin
	admin := api.Group("/admin", middleware.AuthMiddleware(authHelper), middleware.AdminOnly())
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:productID", productHandler.Update)
	admin.Delete("/products/:productID", productHandler.Delete)
	admin.Get("/orders", orderHandler.ListAll)
	admin.Patch("/orders/:orderID/status", orderHandler.UpdateStatus)
	admin.Post("/coupons", couponHandler.Create)
	admin.Get("/coupons", couponHandler.List)
	admin.Patch("/coupons/:couponID", couponHandler.Toggle)
	admin.Put("/settings/shipping-charge", settingsHandler.UpdateShippingCharge)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// seedAdmin creates the bootstrap admin account on first start. The account
// is born verified since there is nobody to email a code to yet.
func seedAdmin(repo repository.UserRepository, auth helper.Auth, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	if n, err := repo.CountByRole(domain.RoleAdmin); err != nil || n > 0 {
		return
	}

	existing, err := repo.FindUserByEmail(cfg.AdminEmail)
	if err != nil || existing != nil {
		return
	}

	hash, err := auth.CreatePassword(cfg.AdminPassword)
	if err != nil {
		log.Println("admin seed: hash error:", err)
		return
	}

	now := time.Now()
	admin := &domain.User{
		Name:          "Administrator",
		Email:         cfg.AdminEmail,
		PasswordHash:  hash,
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		VerifiedAt:    &now,
	}
	if err := repo.CreateUser(admin); err != nil {
		log.Println("admin seed: create error:", err)
		return
	}
	log.Println("admin account seeded:", cfg.AdminEmail)
}
