package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	authController "campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
	authMw "campushub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	protected := auth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Get("/me", ctl.Me)
	protected.Post("/change-password", ctl.ChangePassword)
	protected.Post("/register",
		authMw.OnlyRoles("admin access required", constants.RoleAdmin), ctl.Register)
}
