package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/finance/concessions/dto"
	"campushub_backend/internals/features/finance/concessions/model"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type ConcessionController struct {
	DB *gorm.DB
}

// List (GET /api/a/concessions)
// Filters: student_id, department, academic_year, semester, status.
func (ctl *ConcessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.ConcessionModel{})
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("concession_student_id = ?", id)
		}
	}
	if v := c.Query("department"); v != "" {
		q = q.Where("concession_department = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("concession_academic_year = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("concession_semester = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("concession_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ConcessionModel
	if err := q.
		Order("concession_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToConcessionResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Create (POST /api/a/concessions)
func (ctl *ConcessionController) Create(c *fiber.Ctx) error {
	var in dto.ConcessionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	if in.DiscountType == string(model.DiscountTypeFixed) && in.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "fixed concession requires a positive amount")
	}
	if in.DiscountType == string(model.DiscountTypePercentage) && in.Percentage <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "percentage concession requires a positive percentage")
	}

	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"student already has an active concession of this type for the period")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "concession.created",
			EntityType: "concession",
			EntityID:   m.ConcessionID.String(),
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonCreated(c, "concession created", dto.ToConcessionResponse(m))
}

// SetStatus (POST /api/a/concessions/:id/status)
func (ctl *ConcessionController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.ConcessionStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.ConcessionModel
	if err := ctl.DB.First(&m, "concession_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "concession not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	before := m
	m.ConcessionStatus = model.ConcessionStatus(in.Status)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "concession.status_changed",
			EntityType: "concession",
			EntityID:   m.ConcessionID.String(),
			Before:     before,
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonUpdated(c, "", dto.ToConcessionResponse(m))
}

// Delete (DELETE /api/a/concessions/:id) — soft delete.
func (ctl *ConcessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.ConcessionModel
	if err := ctl.DB.First(&m, "concession_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "concession not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "", dto.ToConcessionResponse(m))
}
