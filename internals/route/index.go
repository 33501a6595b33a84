package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	paymentController "campushub_backend/internals/features/finance/payments/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under three surfaces:
//
//	/api        public (health, gateway webhook, login)
//	/api/u      any authenticated user
//	/api/a      admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// gateway webhook: authenticated by signature, not by JWT
	payCtl := &paymentController.PaymentController{DB: db}
	api.Post("/payments/notification", payCtl.Notification)

	AuthRoutes(api, db)

	user := api.Group("/u", authMw.AuthMiddleware(db))
	admin := api.Group("/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("admin access required", constants.RoleAdmin),
	)

	AcademicRoutes(user, admin, db)
	FinanceRoutes(user, admin, db, payCtl)
	StaffRoutes(admin, db)
	NoticeRoutes(user, admin, db)
}
