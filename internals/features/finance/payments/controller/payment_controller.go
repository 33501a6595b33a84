package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	studentModel "campushub_backend/internals/features/academics/students/model"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/finance/payments/dto"
	"campushub_backend/internals/features/finance/payments/model"
	"campushub_backend/internals/features/finance/payments/service"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

var paymentSortable = map[string]string{
	"created_at":   "fee_payment_created_at",
	"amount":       "fee_payment_amount",
	"status":       "fee_payment_status",
	"payment_date": "fee_payment_date",
}

// List (GET /api/a/payments)
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.FeePaymentModel{})
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("fee_payment_student_id = ?", id)
		}
	}
	if v := c.Query("department"); v != "" {
		q = q.Where("fee_payment_department = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("fee_payment_academic_year = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("fee_payment_status = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_payment_created_at >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_payment_created_at <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeePaymentModel
	if err := q.
		Order(helper.OrderClause(c, paymentSortable, "created_at")).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToPaymentResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Create (POST /api/a/payments) — counter payment recorded by staff.
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	if err := ctl.DB.First(&studentModel.StudentModel{}, "student_id = ?", in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := in.ToModel()
	if in.MarkPaid {
		if err := m.Transition(model.PaymentStatusPaid); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "payment.recorded",
			EntityType: "fee_payment",
			EntityID:   m.FeePaymentID.String(),
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonCreated(c, "payment recorded", dto.ToPaymentResponse(m))
}

// CreateOnline (POST /api/u/payments/online) — creates a pending payment and
// returns a Midtrans Snap token for the gateway popup.
func (ctl *PaymentController) CreateOnline(c *fiber.Ctx) error {
	var in dto.OnlinePaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	orderID := fmt.Sprintf("FEE-%s", uuid.NewString())
	m := model.FeePaymentModel{
		FeePaymentStudentID:    in.StudentID,
		FeePaymentDepartment:   in.Department,
		FeePaymentAcademicYear: in.AcademicYear,
		FeePaymentSemester:     in.Semester,
		FeePaymentAmount:       in.Amount,
		FeePaymentMode:         model.PaymentModeOnline,
		FeePaymentOrderID:      &orderID,
		FeePaymentStatus:       model.PaymentStatusPending,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := service.GenerateSnapToken(m, student.StudentFullName, student.StudentEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway error: "+err.Error())
	}

	return helper.JsonCreated(c, "online payment created", fiber.Map{
		"payment":    dto.ToPaymentResponse(m),
		"snap_token": token,
	})
}

// Notification (POST /api/payments/notification) — Midtrans webhook, skipped
// by the auth middleware. Settlement marks the payment paid; deny/cancel/
// expire marks it failed.
func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var payload struct {
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		SignatureKey      string `json:"signature_key"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	if !service.VerifyNotificationSignature(
		payload.OrderID, payload.StatusCode, payload.GrossAmount,
		configs.MidtransServerKey, payload.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	var m model.FeePaymentModel
	if err := ctl.DB.First(&m, "fee_payment_order_id = ?", payload.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	before := m
	var target model.PaymentStatus
	switch payload.TransactionStatus {
	case "settlement":
		target = model.PaymentStatusPaid
	case "capture":
		if payload.FraudStatus == "accept" {
			target = model.PaymentStatusPaid
		} else {
			// challenge: leave pending until the gateway settles it
			return helper.JsonOK(c, "notification accepted", nil)
		}
	case "deny", "cancel", "expire":
		target = model.PaymentStatusFailed
	default:
		return helper.JsonOK(c, "notification accepted", nil)
	}

	if m.FeePaymentStatus != model.PaymentStatusPending {
		// gateway retries the same notification; nothing to do
		return helper.JsonOK(c, "notification accepted", nil)
	}
	if err := m.Transition(target); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditSvc.Record(ctl.DB, auditSvc.Entry{
		Action:     "payment." + string(target),
		EntityType: "fee_payment",
		EntityID:   m.FeePaymentID.String(),
		Before:     before,
		After:      m,
		ActorRole:  "gateway",
	})
	log.Printf("[INFO] payment %s moved to %s via gateway", payload.OrderID, target)
	return helper.JsonOK(c, "notification processed", nil)
}

// MarkPaid (POST /api/a/payments/:id/mark-paid)
func (ctl *PaymentController) MarkPaid(c *fiber.Ctx) error {
	return ctl.markStatus(c, model.PaymentStatusPaid, "payment.paid")
}

// MarkFailed (POST /api/a/payments/:id/mark-failed)
func (ctl *PaymentController) MarkFailed(c *fiber.Ctx) error {
	return ctl.markStatus(c, model.PaymentStatusFailed, "payment.failed")
}

func (ctl *PaymentController) markStatus(c *fiber.Ctx, target model.PaymentStatus, action string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeePaymentModel
	if err := ctl.DB.First(&m, "fee_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	before := m
	if err := m.Transition(target); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     action,
			EntityType: "fee_payment",
			EntityID:   m.FeePaymentID.String(),
			Before:     before,
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonUpdated(c, "", dto.ToPaymentResponse(m))
}
