package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/finance/audit/model"
	helper "campushub_backend/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

// List (GET /api/a/audit-logs) — read-only; there is deliberately no write or
// delete surface for audit rows.
func (ctl *AuditController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.Model(&model.AuditLogModel{})
	if v := c.Query("action"); v != "" {
		q = q.Where("audit_log_action = ?", v)
	}
	if v := c.Query("entity_type"); v != "" {
		q = q.Where("audit_log_entity_type = ?", v)
	}
	if v := c.Query("entity_id"); v != "" {
		q = q.Where("audit_log_entity_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AuditLogModel
	if err := q.
		Order("audit_log_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
