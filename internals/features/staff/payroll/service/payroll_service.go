package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	attendanceDto "campushub_backend/internals/features/staff/attendance/dto"
	attendanceModel "campushub_backend/internals/features/staff/attendance/model"
	"campushub_backend/internals/features/staff/payroll/model"
	userModel "campushub_backend/internals/features/users/auth/model"
)

var (
	ErrRunExists          = errors.New("payroll already ran for this month")
	ErrInvalidWorkingDays = errors.New("working days must be positive")
)

// AbsentDays counts deductible days: a full absence is 1, a half day is 0.5.
// Approved leave does not deduct.
func AbsentDays(rows []attendanceModel.StaffAttendanceModel) float64 {
	days := 0.0
	for _, r := range rows {
		switch r.StaffAttendanceStatus {
		case attendanceModel.AttendanceStatusAbsent:
			days++
		case attendanceModel.AttendanceStatusHalfDay:
			days += 0.5
		}
	}
	return days
}

// ComputeSlip derives the pay figures. Gross is basic plus allowances; the
// deduction is the basic prorated over absent days; net never goes negative.
func ComputeSlip(basic, allowances, absentDays float64, workingDays int) (gross, deduction, net float64) {
	gross = basic + allowances
	if workingDays > 0 && absentDays > 0 {
		deduction = basic * absentDays / float64(workingDays)
	}
	if deduction > gross {
		deduction = gross
	}
	net = round2(gross - deduction)
	return round2(gross), round2(deduction), net
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FailedSlip records a staff member the run could not pay, with the reason.
type FailedSlip struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Reason string    `json:"reason"`
}

// RunResult is the outcome of one payroll run.
type RunResult struct {
	Run    model.PayrollRunModel `json:"run"`
	Slips  []model.PayslipModel  `json:"slips"`
	Failed []FailedSlip          `json:"failed"`
}

// Run generates payslips for every active staff user for the given month.
// A staff member without a salary profile is skipped and reported; the run
// finishes as partial instead of aborting.
func Run(db *gorm.DB, month string, workingDays int) (RunResult, error) {
	var res RunResult

	if workingDays <= 0 {
		return res, ErrInvalidWorkingDays
	}
	from, to, err := attendanceDto.MonthRange(month)
	if err != nil {
		return res, err
	}

	var existing int64
	if err := db.Model(&model.PayrollRunModel{}).
		Where("payroll_run_month = ?", month).
		Count(&existing).Error; err != nil {
		return res, err
	}
	if existing > 0 {
		return res, ErrRunExists
	}

	var staff []userModel.UserModel
	if err := db.
		Where("user_role <> ? AND user_is_active = ?", constants.RoleStudent, true).
		Find(&staff).Error; err != nil {
		return res, err
	}

	run := model.PayrollRunModel{
		PayrollRunMonth:       month,
		PayrollRunWorkingDays: workingDays,
		PayrollRunStatus:      model.PayrollRunStatusCompleted,
	}
	if err := db.Create(&run).Error; err != nil {
		return res, err
	}

	for _, u := range staff {
		var salary model.StaffSalaryModel
		if err := db.First(&salary, "staff_salary_user_id = ?", u.UserID).Error; err != nil {
			reason := "no salary profile"
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				reason = err.Error()
			}
			res.Failed = append(res.Failed, FailedSlip{UserID: u.UserID, Name: u.UserFullName, Reason: reason})
			continue
		}

		var rows []attendanceModel.StaffAttendanceModel
		if err := db.
			Where("staff_attendance_user_id = ? AND staff_attendance_date >= ? AND staff_attendance_date < ?",
				u.UserID, from, to).
			Find(&rows).Error; err != nil {
			res.Failed = append(res.Failed, FailedSlip{UserID: u.UserID, Name: u.UserFullName, Reason: err.Error()})
			continue
		}

		absent := AbsentDays(rows)
		gross, deduction, net := ComputeSlip(salary.StaffSalaryBasic, salary.StaffSalaryAllowances, absent, workingDays)

		slip := model.PayslipModel{
			PayslipRunID:      run.PayrollRunID,
			PayslipUserID:     u.UserID,
			PayslipBasic:      salary.StaffSalaryBasic,
			PayslipAllowances: salary.StaffSalaryAllowances,
			PayslipGross:      gross,
			PayslipAbsentDays: absent,
			PayslipDeduction:  deduction,
			PayslipNet:        net,
		}
		if err := db.Create(&slip).Error; err != nil {
			res.Failed = append(res.Failed, FailedSlip{UserID: u.UserID, Name: u.UserFullName, Reason: err.Error()})
			continue
		}
		res.Slips = append(res.Slips, slip)
	}

	run.PayrollRunSlipCount = len(res.Slips)
	run.PayrollRunFailedCount = len(res.Failed)
	if len(res.Failed) > 0 {
		run.PayrollRunStatus = model.PayrollRunStatusPartial
	}
	if err := db.Save(&run).Error; err != nil {
		return res, err
	}

	res.Run = run
	return res, nil
}
