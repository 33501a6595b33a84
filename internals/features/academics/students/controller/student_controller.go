package controller

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/academics/students/dto"
	"campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB *gorm.DB
}

var studentSortable = map[string]string{
	"created_at":   "student_created_at",
	"name":         "student_full_name",
	"admission_no": "student_admission_no",
	"year":         "student_year",
}

// List (GET /api/u/students)
// Filters: department, year, semester, session_id, status, q (name/admission no).
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.StudentModel{})

	if v := c.Query("department"); v != "" {
		if !constants.IsValidDepartment(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown department")
		}
		q = q.Where("student_department = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("student_year = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("student_semester = ?", v)
	}
	if v := c.Query("session_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_session_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("student_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(student_full_name) LIKE ? OR LOWER(student_admission_no) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentModel
	if err := q.
		Order(helper.OrderClause(c, studentSortable, "created_at")).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Detail (GET /api/u/students/:id)
func (ctl *StudentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}

// Admit (POST /api/a/students)
func (ctl *StudentController) Admit(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "admission number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "student.admitted",
			EntityType: "student",
			EntityID:   m.StudentID.String(),
			After:      m,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonCreated(c, "student admitted", dto.ToStudentResponse(m))
}

// Update (PUT /api/a/students/:id)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", dto.ToStudentResponse(m))
}

// Delete (DELETE /api/a/students/:id) — soft delete, explicit admin action only.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "", dto.ToStudentResponse(m))
}

// UploadPhoto (POST /api/a/students/:id/photo) — multipart field "photo".
// Whatever the client sends is bounded to 512px and re-encoded as webp.
func (ctl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "missing photo file")
	}

	dir := filepath.Join(configs.UploadDir, "photos")
	path, err := helper.SaveImageAsWebp(fh, dir, 512)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Model(&m).Update("student_photo_url", path).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.StudentPhotoURL = &path
	return helper.JsonUpdated(c, "photo uploaded", dto.ToStudentResponse(m))
}
