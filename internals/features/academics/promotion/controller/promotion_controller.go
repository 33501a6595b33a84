package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "campushub_backend/internals/features/academics/sessions/model"
	"campushub_backend/internals/features/academics/promotion/service"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type PromotionController struct {
	DB *gorm.DB
}

type runRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// Run (POST /api/a/promotions/run) — batch-advances every active student of a
// session. Partial failures come back in the `failed` list.
func (ctl *PromotionController) Run(c *fiber.Ctx) error {
	var in runRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var session sessionModel.AcademicSessionModel
	if err := ctl.DB.First(&session, "academic_session_id = ?", in.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result, err := service.Run(ctl.DB, in.SessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "promotion.run",
			EntityType: "academic_session",
			EntityID:   in.SessionID.String(),
			After: fiber.Map{
				"promoted":  len(result.Promoted),
				"graduated": len(result.Graduated),
				"failed":    len(result.Failed),
			},
			ActorID:   actor.ID,
			ActorRole: actor.Role,
		})
	}

	return helper.JsonOK(c, "promotion run completed", fiber.Map{
		"session":         session.AcademicSessionName,
		"promoted_count":  len(result.Promoted),
		"graduated_count": len(result.Graduated),
		"failed_count":    len(result.Failed),
		"promoted":        result.Promoted,
		"graduated":       result.Graduated,
		"failed":          result.Failed,
	})
}
