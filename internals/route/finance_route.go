package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditController "campushub_backend/internals/features/finance/audit/controller"
	concessionController "campushub_backend/internals/features/finance/concessions/controller"
	feeController "campushub_backend/internals/features/finance/fees/controller"
	paymentController "campushub_backend/internals/features/finance/payments/controller"
	receiptController "campushub_backend/internals/features/finance/receipts/controller"
	reportController "campushub_backend/internals/features/finance/reports/controller"
)

func FinanceRoutes(user, admin fiber.Router, db *gorm.DB, payCtl *paymentController.PaymentController) {
	feeCtl := &feeController.FeeStructureController{DB: db}
	concessionCtl := &concessionController.ConcessionController{DB: db}
	receiptCtl := &receiptController.ReceiptController{DB: db}
	reportCtl := &reportController.ReportController{DB: db}
	auditCtl := &auditController.AuditController{DB: db}

	user.Get("/fee-structures", feeCtl.List)
	user.Get("/fee-structures/:id", feeCtl.Detail)
	user.Post("/payments/online", payCtl.CreateOnline)
	user.Get("/receipts", receiptCtl.List)
	user.Get("/receipts/:id", receiptCtl.Detail)
	user.Get("/receipts/:id/pdf", receiptCtl.Download)
	user.Get("/reports/students/:id/balance", reportCtl.StudentBalance)

	admin.Post("/fee-structures", feeCtl.Create)
	admin.Put("/fee-structures/:id", feeCtl.Update)
	admin.Delete("/fee-structures/:id", feeCtl.Delete)

	admin.Get("/concessions", concessionCtl.List)
	admin.Post("/concessions", concessionCtl.Create)
	admin.Post("/concessions/:id/status", concessionCtl.SetStatus)
	admin.Delete("/concessions/:id", concessionCtl.Delete)

	admin.Get("/payments", payCtl.List)
	admin.Post("/payments", payCtl.Create)
	admin.Post("/payments/:id/mark-paid", payCtl.MarkPaid)
	admin.Post("/payments/:id/mark-failed", payCtl.MarkFailed)

	admin.Post("/receipts/generate", receiptCtl.Generate)
	admin.Post("/receipts/:id/cancel", receiptCtl.Cancel)

	admin.Get("/reports/collections", reportCtl.Collections)
	admin.Get("/reports/defaulters", reportCtl.Defaulters)

	admin.Get("/audit-logs", auditCtl.List)
}
