package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeController "campushub_backend/internals/features/notifications/notices/controller"
)

func NoticeRoutes(user, admin fiber.Router, db *gorm.DB) {
	ctl := &noticeController.NoticeController{DB: db}

	user.Get("/notices", ctl.List)

	admin.Post("/notices", ctl.Create)
	admin.Put("/notices/:id", ctl.Update)
	admin.Post("/notices/:id/publish", ctl.Publish)
	admin.Delete("/notices/:id", ctl.Delete)
}
