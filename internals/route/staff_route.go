package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "campushub_backend/internals/features/staff/attendance/controller"
	payrollController "campushub_backend/internals/features/staff/payroll/controller"
)

func StaffRoutes(admin fiber.Router, db *gorm.DB) {
	attendanceCtl := &attendanceController.StaffAttendanceController{DB: db}
	payrollCtl := &payrollController.PayrollController{DB: db}

	admin.Post("/staff/attendance", attendanceCtl.Mark)
	admin.Get("/staff/attendance", attendanceCtl.List)
	admin.Get("/staff/attendance/summary", attendanceCtl.Summary)

	admin.Put("/staff/salaries", payrollCtl.SetSalary)
	admin.Post("/staff/payroll/run", payrollCtl.Run)
	admin.Get("/staff/payroll/runs", payrollCtl.ListRuns)
	admin.Get("/staff/payroll/runs/:id/slips", payrollCtl.ListSlips)
}
