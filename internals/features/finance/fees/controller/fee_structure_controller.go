package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/finance/fees/dto"
	"campushub_backend/internals/features/finance/fees/model"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type FeeStructureController struct {
	DB *gorm.DB
}

// List (GET /api/u/fee-structures)
func (ctl *FeeStructureController) List(c *fiber.Ctx) error {
	var list []model.FeeStructureModel
	if err := ctl.DB.Order("fee_structure_department ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeStructureResponses(list))
}

// Detail (GET /api/u/fee-structures/:id)
func (ctl *FeeStructureController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeeStructureModel
	if err := ctl.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeStructureResponse(m))
}

// Create (POST /api/a/fee-structures)
func (ctl *FeeStructureController) Create(c *fiber.Ctx) error {
	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "fee structure for this department already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "fee_structure.created",
			EntityType: "fee_structure",
			EntityID:   m.FeeStructureID.String(),
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

// Update (PUT /api/a/fee-structures/:id) — the BeforeSave hook recomputes the total.
func (ctl *FeeStructureController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeStructureUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.FeeStructureModel
	if err := ctl.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	before := m
	dto.ApplyFeeStructureUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "fee_structure.updated",
			EntityType: "fee_structure",
			EntityID:   m.FeeStructureID.String(),
			Before:     before,
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonUpdated(c, "", dto.ToFeeStructureResponse(m))
}

// Delete (DELETE /api/a/fee-structures/:id)
func (ctl *FeeStructureController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeeStructureModel
	if err := ctl.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "", dto.ToFeeStructureResponse(m))
}
