package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	"campushub_backend/internals/features/staff/payroll/dto"
	"campushub_backend/internals/features/staff/payroll/model"
	"campushub_backend/internals/features/staff/payroll/service"
	userModel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type PayrollController struct {
	DB *gorm.DB
}

// SetSalary (PUT /api/a/staff/salaries) — upserts the salary profile.
func (ctl *PayrollController) SetSalary(c *fiber.Ctx) error {
	var in dto.SetSalaryRequest
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
		return helper.JsonError(c, fiber.StatusBadRequest, "salary profiles are for staff users only")
	}

	var salary model.StaffSalaryModel
	err := ctl.DB.First(&salary, "staff_salary_user_id = ?", in.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		salary = model.StaffSalaryModel{
			StaffSalaryUserID:     in.UserID,
			StaffSalaryBasic:      in.Basic,
			StaffSalaryAllowances: in.Allowances,
		}
		if err := ctl.DB.Create(&salary).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "salary profile created", salary)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	salary.StaffSalaryBasic = in.Basic
	salary.StaffSalaryAllowances = in.Allowances
	if err := ctl.DB.Save(&salary).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "salary profile updated", salary)
}

// Run (POST /api/a/staff/payroll/run)
func (ctl *PayrollController) Run(c *fiber.Ctx) error {
	var in dto.RunPayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	res, err := service.Run(ctl.DB, in.Month, in.WorkingDays)
	switch {
	case errors.Is(err, service.ErrRunExists):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidWorkingDays):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actor, ok := authMw.ActorFromCtx(c); ok {
		auditSvc.Record(ctl.DB, auditSvc.Entry{
			Action:     "payroll.run",
			EntityType: "payroll_run",
			EntityID:   res.Run.PayrollRunID.String(),
			After:      res.Run,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
		})
	}
	return helper.JsonCreated(c, "payroll run finished", res)
}

// ListRuns (GET /api/a/staff/payroll/runs)
func (ctl *PayrollController) ListRuns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.PayrollRunModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var runs []model.PayrollRunModel
	if err := q.
		Order("payroll_run_month DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&runs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", runs, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// ListSlips (GET /api/a/staff/payroll/runs/:id/slips)
func (ctl *PayrollController) ListSlips(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := ctl.DB.First(&model.PayrollRunModel{}, "payroll_run_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payroll run not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var slips []model.PayslipModel
	if err := ctl.DB.
		Where("payslip_run_id = ?", id).
		Order("payslip_created_at").
		Find(&slips).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", slips)
}
