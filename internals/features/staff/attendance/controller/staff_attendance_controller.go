package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/staff/attendance/dto"
	"campushub_backend/internals/features/staff/attendance/model"
	userModel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type StaffAttendanceController struct {
	DB *gorm.DB
}

// Mark (POST /api/a/staff/attendance) — upserts the day's entry for one staff
// member; marking the same day twice overwrites the status.
func (ctl *StaffAttendanceController) Mark(c *fiber.Ctx) error {
	var in dto.MarkAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "staff user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if user.UserRole == constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance is for staff users only")
	}

	date, _ := time.Parse("2006-01-02", in.Date)

	var m model.StaffAttendanceModel
	err := ctl.DB.First(&m,
		"staff_attendance_user_id = ? AND staff_attendance_date = ?", in.UserID, date).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.StaffAttendanceModel{
			StaffAttendanceUserID:   in.UserID,
			StaffAttendanceDate:     date,
			StaffAttendanceStatus:   model.AttendanceStatus(in.Status),
			StaffAttendanceCheckIn:  in.CheckIn,
			StaffAttendanceCheckOut: in.CheckOut,
			StaffAttendanceNote:     in.Note,
		}
		if err := ctl.DB.Create(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "attendance marked", dto.ToAttendanceResponse(m))
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.StaffAttendanceStatus = model.AttendanceStatus(in.Status)
	m.StaffAttendanceCheckIn = in.CheckIn
	m.StaffAttendanceCheckOut = in.CheckOut
	m.StaffAttendanceNote = in.Note
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "attendance updated", dto.ToAttendanceResponse(m))
}

// List (GET /api/a/staff/attendance)
func (ctl *StaffAttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.Model(&model.StaffAttendanceModel{})
	if v := c.Query("user_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("staff_attendance_user_id = ?", id)
		}
	}
	if v := c.Query("month"); v != "" {
		if from, to, err := dto.MonthRange(v); err == nil {
			q = q.Where("staff_attendance_date >= ? AND staff_attendance_date < ?", from, to)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("staff_attendance_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StaffAttendanceModel
	if err := q.
		Order("staff_attendance_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToAttendanceResponses(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Summary (GET /api/a/staff/attendance/summary?user_id&month=2006-01)
func (ctl *StaffAttendanceController) Summary(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user_id")
	}
	month := c.Query("month")
	from, to, err := dto.MonthRange(month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	var rows []model.StaffAttendanceModel
	if err := ctl.DB.
		Where("staff_attendance_user_id = ? AND staff_attendance_date >= ? AND staff_attendance_date < ?",
			userID, from, to).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.Summarize(userID, month, rows))
}
