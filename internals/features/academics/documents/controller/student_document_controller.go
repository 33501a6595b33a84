package controller

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/features/academics/documents/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type StudentDocumentController struct {
	DB *gorm.DB
}

const maxDocumentSize = 10 << 20 // 10 MiB

// Upload (POST /api/a/students/:id/documents) — multipart "file" plus a
// "title" form field.
func (ctl *StudentDocumentController) Upload(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctl.DB.First(&studentModel.StudentModel{}, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > maxDocumentSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "file exceeds 10MB")
	}
	title := c.FormValue("title")
	if title == "" {
		title = fh.Filename
	}

	dir := filepath.Join(configs.UploadDir, "documents", studentID.String())
	path, err := helper.SaveUploadedFile(fh, dir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.StudentDocumentModel{
		StudentDocumentStudentID: studentID,
		StudentDocumentTitle:     title,
		StudentDocumentFileName:  fh.Filename,
		StudentDocumentPath:      path,
		StudentDocumentMimeType:  fh.Header.Get("Content-Type"),
		StudentDocumentSize:      fh.Size,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "document uploaded", m)
}

// List (GET /api/u/students/:id/documents)
func (ctl *StudentDocumentController) List(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var list []model.StudentDocumentModel
	if err := ctl.DB.
		Where("student_document_student_id = ?", studentID).
		Order("student_document_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", list)
}

// Download (GET /api/u/documents/:id)
func (ctl *StudentDocumentController) Download(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+m.StudentDocumentFileName+`"`)
	return c.SendFile(m.StudentDocumentPath)
}

// Delete (DELETE /api/a/documents/:id) — soft delete; the file stays on disk.
func (ctl *StudentDocumentController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "document deleted", fiber.Map{"student_document_id": m.StudentDocumentID})
}

func (ctl *StudentDocumentController) find(c *fiber.Ctx) (*model.StudentDocumentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentDocumentModel
	if err := ctl.DB.First(&m, "student_document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "document not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
