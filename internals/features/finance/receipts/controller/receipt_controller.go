package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/finance/receipts/dto"
	"campushub_backend/internals/features/finance/receipts/model"
	"campushub_backend/internals/features/finance/receipts/service"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type ReceiptController struct {
	DB *gorm.DB
}

// statusForGenerateError maps generation failures onto the API contract:
// missing rows are 404, a payment that is not eligible yet is 400, and a
// repeat generate call for the same payment is 409.
func statusForGenerateError(err error) int {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound),
		errors.Is(err, service.ErrFeeStructureNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrPaymentNotPaid),
		errors.Is(err, model.ErrNonPositiveAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyGenerated):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

var receiptSortable = map[string]string{
	"created_at": "receipt_created_at",
	"receipt_no": "receipt_no",
	"amount":     "receipt_amount",
}

// Generate (POST /api/a/receipts/generate) — issues the original receipt and
// its duplicate copy for a paid payment.
func (ctl *ReceiptController) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	actor, _ := authMw.ActorFromCtx(c)
	res, err := service.Generate(ctl.DB, configs.UploadDir, in.PaymentID, actor.ID, actor.Role)
	if err != nil {
		return helper.JsonError(c, statusForGenerateError(err), err.Error())
	}

	return helper.JsonCreated(c, "receipts generated", fiber.Map{
		"original":  dto.ToReceiptResponse(res.Original),
		"duplicate": dto.ToReceiptResponse(res.Duplicate),
	})
}

// List (GET /api/u/receipts)
func (ctl *ReceiptController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.ReceiptModel{})
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("receipt_student_id = ?", id)
		}
	}
	if v := c.Query("payment_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("receipt_payment_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("receipt_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ReceiptModel
	if err := q.
		Order(helper.OrderClause(c, receiptSortable, "created_at")).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToReceiptResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Detail (GET /api/u/receipts/:id)
func (ctl *ReceiptController) Detail(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToReceiptResponse(*m))
}

// Download (GET /api/u/receipts/:id/pdf) — streams the stored PDF.
func (ctl *ReceiptController) Download(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if m.ReceiptPDFPath == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "pdf not available for this receipt")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+m.ReceiptNo+`.pdf"`)
	return c.SendFile(*m.ReceiptPDFPath)
}

// Cancel (POST /api/a/receipts/:id/cancel)
func (ctl *ReceiptController) Cancel(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if m.ReceiptStatus != model.ReceiptStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "receipt is not active")
	}

	before := *m
	m.ReceiptStatus = model.ReceiptStatusCancelled
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "receipt.cancelled",
			EntityType: "receipt",
			EntityID:   m.ReceiptID.String(),
			Before:     before,
			After:      *m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonUpdated(c, "receipt cancelled", dto.ToReceiptResponse(*m))
}

func (ctl *ReceiptController) find(c *fiber.Ctx) (*model.ReceiptModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.ReceiptModel
	if err := ctl.DB.First(&m, "receipt_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "receipt not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
