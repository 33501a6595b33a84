package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/notifications/notices/dto"
	"campushub_backend/internals/features/notifications/notices/model"
	userModel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/mailer"
	authMw "campushub_backend/internals/middlewares/auth"
)

type NoticeController struct {
	DB *gorm.DB
}

// List (GET /api/u/notices) — published notices scoped to the caller's role;
// admins also see drafts.
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	actor, _ := authMw.ActorFromCtx(c)

	q := ctl.DB.Model(&model.NoticeModel{})
	if actor.Role != constants.RoleAdmin {
		q = q.Where("notice_is_published = ?", true)
		switch actor.Role {
		case constants.RoleFaculty:
			q = q.Where("notice_audience IN ?", []model.NoticeAudience{model.NoticeAudienceAll, model.NoticeAudienceFaculty})
		default:
			q = q.Where("notice_audience IN ?", []model.NoticeAudience{model.NoticeAudienceAll, model.NoticeAudienceStudent})
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.NoticeModel
	if err := q.
		Order("notice_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToNoticeResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Create (POST /api/a/notices)
func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	var in dto.NoticeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	actor, _ := authMw.ActorFromCtx(c)
	m := in.ToModel(actor.ID)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "notice created", dto.ToNoticeResponse(m))
}

// Update (PUT /api/a/notices/:id) — drafts only.
func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if m.NoticeIsPublished {
		return helper.JsonError(c, fiber.StatusConflict, "published notices cannot be edited")
	}

	var in dto.NoticeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	dto.ApplyNoticeUpdate(m, in)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "notice updated", dto.ToNoticeResponse(*m))
}

// Publish (POST /api/a/notices/:id/publish) — flips the flag, then fans the
// notice out by email in the background. Delivery failures never unpublish.
func (ctl *NoticeController) Publish(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if m.NoticeIsPublished {
		return helper.JsonError(c, fiber.StatusConflict, "notice is already published")
	}

	now := time.Now()
	m.NoticeIsPublished = true
	m.NoticePublishedAt = &now
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "notice.published",
			EntityType: "notice",
			EntityID:   m.NoticeID.String(),
			After:      *m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}

	go ctl.fanOut(*m)
	return helper.JsonUpdated(c, "notice published", dto.ToNoticeResponse(*m))
}

// Delete (DELETE /api/a/notices/:id)
func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "notice deleted", fiber.Map{"notice_id": m.NoticeID})
}

func (ctl *NoticeController) fanOut(m model.NoticeModel) {
	q := ctl.DB.Model(&userModel.UserModel{}).Where("user_is_active = ?", true)
	switch m.NoticeAudience {
	case model.NoticeAudienceFaculty:
		q = q.Where("user_role = ?", constants.RoleFaculty)
	case model.NoticeAudienceStudent:
		q = q.Where("user_role = ?", constants.RoleStudent)
	}

	var users []userModel.UserModel
	if err := q.Find(&users).Error; err != nil {
		log.Printf("[WARN] notice %s fan-out query failed: %v", m.NoticeID, err)
		return
	}

	recipients := make([]mailer.Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, mailer.Recipient{Name: u.UserFullName, Email: u.UserEmail})
	}
	sent, failed := mailer.SendBatch(recipients, "[Notice] "+m.NoticeTitle, m.NoticeBody)
	log.Printf("[INFO] notice %s mailed: %d sent, %d failed", m.NoticeID, sent, failed)
}

func (ctl *NoticeController) find(c *fiber.Ctx) (*model.NoticeModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.NoticeModel
	if err := ctl.DB.First(&m, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "notice not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
