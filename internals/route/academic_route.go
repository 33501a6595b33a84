package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "campushub_backend/internals/features/academics/documents/controller"
	promotionController "campushub_backend/internals/features/academics/promotion/controller"
	sessionController "campushub_backend/internals/features/academics/sessions/controller"
	studentController "campushub_backend/internals/features/academics/students/controller"
)

func AcademicRoutes(user, admin fiber.Router, db *gorm.DB) {
	studentCtl := &studentController.StudentController{DB: db}
	sessionCtl := &sessionController.SessionController{DB: db}
	promotionCtl := &promotionController.PromotionController{DB: db}
	documentCtl := &documentController.StudentDocumentController{DB: db}

	// read surface for every authenticated role
	user.Get("/students", studentCtl.List)
	user.Get("/students/:id", studentCtl.Detail)
	user.Get("/students/:id/documents", documentCtl.List)
	user.Get("/documents/:id", documentCtl.Download)
	user.Get("/sessions", sessionCtl.List)

	// admin write surface
	admin.Post("/students", studentCtl.Admit)
	admin.Put("/students/:id", studentCtl.Update)
	admin.Delete("/students/:id", studentCtl.Delete)
	admin.Post("/students/:id/photo", studentCtl.UploadPhoto)
	admin.Post("/students/:id/documents", documentCtl.Upload)
	admin.Delete("/documents/:id", documentCtl.Delete)

	admin.Post("/sessions", sessionCtl.Create)
	admin.Put("/sessions/:id", sessionCtl.Update)
	admin.Post("/sessions/:id/activate", sessionCtl.Activate)
	admin.Delete("/sessions/:id", sessionCtl.Delete)

	admin.Post("/promotions/run", promotionCtl.Run)
}
