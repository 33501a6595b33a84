package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "campushub_backend/internals/features/academics/students/model"
	concessionModel "campushub_backend/internals/features/finance/concessions/model"
	feeModel "campushub_backend/internals/features/finance/fees/model"
	paymentModel "campushub_backend/internals/features/finance/payments/model"
	"campushub_backend/internals/features/finance/reports/service"
	helper "campushub_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

// StudentBalance (GET /api/u/reports/students/:id/balance) — per-head
// outstanding for one student. Payments and concessions are scoped by the
// academic_year and semester query params when given, otherwise all of the
// student's paid rows count.
func (ctl *ReportController) StudentBalance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var fs feeModel.FeeStructureModel
	if err := ctl.DB.First(&fs, "fee_structure_department = ?", student.StudentDepartment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found for department")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	payQ := ctl.DB.Model(&paymentModel.FeePaymentModel{}).
		Where("fee_payment_student_id = ? AND fee_payment_status = ?", id, paymentModel.PaymentStatusPaid)
	conQ := ctl.DB.Where("concession_student_id = ?", id)
	if v := c.Query("academic_year"); v != "" {
		payQ = payQ.Where("fee_payment_academic_year = ?", v)
		conQ = conQ.Where("concession_academic_year = ?", v)
	}
	if v := c.Query("semester"); v != "" {
		payQ = payQ.Where("fee_payment_semester = ?", v)
		conQ = conQ.Where("concession_semester = ?", v)
	}

	var totalPaid float64
	if err := payQ.Select("COALESCE(SUM(fee_payment_amount), 0)").Scan(&totalPaid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var concessions []concessionModel.ConcessionModel
	if err := conQ.Find(&concessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	concessionTotal := service.ConcessionTotal(concessions, fs.FeeStructureTotal)
	heads := service.ComputeHeadBalances(fs, totalPaid, concessionTotal)

	return helper.JsonOK(c, "", fiber.Map{
		"student_id":        student.StudentID,
		"department":        student.StudentDepartment,
		"fee_total":         fs.FeeStructureTotal,
		"total_paid":        totalPaid,
		"concession_total":  concessionTotal,
		"heads":             heads,
		"total_outstanding": service.TotalOutstanding(heads),
	})
}

type collectionRow struct {
	Department string  `json:"department"`
	Mode       string  `json:"mode"`
	Count      int64   `json:"count"`
	Total      float64 `json:"total"`
}

// Collections (GET /api/a/reports/collections) — paid totals grouped by
// department and mode within an optional date range.
func (ctl *ReportController) Collections(c *fiber.Ctx) error {
	q := ctl.DB.Model(&paymentModel.FeePaymentModel{}).
		Where("fee_payment_status = ?", paymentModel.PaymentStatusPaid)
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_payment_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_payment_date <= ?", t)
		}
	}
	if v := c.Query("department"); v != "" {
		q = q.Where("fee_payment_department = ?", v)
	}

	var rows []collectionRow
	if err := q.
		Select("fee_payment_department AS department, fee_payment_mode AS mode, COUNT(*) AS count, COALESCE(SUM(fee_payment_amount), 0) AS total").
		Group("fee_payment_department, fee_payment_mode").
		Order("fee_payment_department, fee_payment_mode").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	grand := 0.0
	for _, r := range rows {
		grand += r.Total
	}
	return helper.JsonOK(c, "", fiber.Map{
		"rows":        rows,
		"grand_total": grand,
	})
}

type defaulterRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	AdmissionNo string    `json:"admission_no"`
	FullName    string    `json:"full_name"`
	Department  string    `json:"department"`
	Year        int       `json:"year"`
	FeeTotal    float64   `json:"fee_total"`
	TotalPaid   float64   `json:"total_paid"`
	Concession  float64   `json:"concession_total"`
	Outstanding float64   `json:"outstanding"`
}

// Defaulters (GET /api/a/reports/defaulters) — active students whose
// outstanding against their department structure is above zero. Computed in
// Go per student so the concession rules stay in one place.
func (ctl *ReportController) Defaulters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	sq := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", studentModel.StudentStatusActive)
	if v := c.Query("department"); v != "" {
		sq = sq.Where("student_department = ?", v)
	}

	var students []studentModel.StudentModel
	if err := sq.Order("student_admission_no").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var structures []feeModel.FeeStructureModel
	if err := ctl.DB.Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	byDept := make(map[string]feeModel.FeeStructureModel, len(structures))
	for _, fs := range structures {
		byDept[fs.FeeStructureDepartment] = fs
	}

	defaulters := make([]defaulterRow, 0)
	for _, s := range students {
		fs, ok := byDept[s.StudentDepartment]
		if !ok {
			continue
		}

		var totalPaid float64
		if err := ctl.DB.Model(&paymentModel.FeePaymentModel{}).
			Where("fee_payment_student_id = ? AND fee_payment_status = ?", s.StudentID, paymentModel.PaymentStatusPaid).
			Select("COALESCE(SUM(fee_payment_amount), 0)").
			Scan(&totalPaid).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}

		var concessions []concessionModel.ConcessionModel
		if err := ctl.DB.
			Where("concession_student_id = ?", s.StudentID).
			Find(&concessions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		concessionTotal := service.ConcessionTotal(concessions, fs.FeeStructureTotal)

		heads := service.ComputeHeadBalances(fs, totalPaid, concessionTotal)
		outstanding := service.TotalOutstanding(heads)
		if outstanding <= 0 {
			continue
		}
		defaulters = append(defaulters, defaulterRow{
			StudentID:   s.StudentID,
			AdmissionNo: s.StudentAdmissionNo,
			FullName:    s.StudentFullName,
			Department:  s.StudentDepartment,
			Year:        s.StudentYear,
			FeeTotal:    fs.FeeStructureTotal,
			TotalPaid:   totalPaid,
			Concession:  concessionTotal,
			Outstanding: outstanding,
		})
	}

	total := int64(len(defaulters))
	start := paging.Offset
	if start > len(defaulters) {
		start = len(defaulters)
	}
	end := start + paging.Limit
	if end > len(defaulters) {
		end = len(defaulters)
	}

	return helper.JsonList(c, "", defaulters[start:end],
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
