package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/sessions/dto"
	"campushub_backend/internals/features/academics/sessions/model"
	helper "campushub_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

// List (GET /api/u/sessions)
func (ctl *SessionController) List(c *fiber.Ctx) error {
	var list []model.AcademicSessionModel
	if err := ctl.DB.Order("academic_session_start_date DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToSessionResponses(list))
}

// Create (POST /api/a/sessions)
func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var in dto.SessionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "session name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "session created", dto.ToSessionResponse(m))
}

// Update (PUT /api/a/sessions/:id)
func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.SessionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}
	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "academic_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplySessionUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", dto.ToSessionResponse(m))
}

// Activate (POST /api/a/sessions/:id/activate) — only one session is active
// at a time; everything else is flipped off in the same transaction.
func (ctl *SessionController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "academic_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AcademicSessionModel{}).
			Where("academic_session_is_active = TRUE").
			Update("academic_session_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&m).Update("academic_session_is_active", true).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.AcademicSessionIsActive = true
	return helper.JsonUpdated(c, "session activated", dto.ToSessionResponse(m))
}

// Delete (DELETE /api/a/sessions/:id)
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "academic_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "", dto.ToSessionResponse(m))
}
