package database

import (
	"log"

	documentModel "campushub_backend/internals/features/academics/documents/model"
	sessionModel "campushub_backend/internals/features/academics/sessions/model"
	studentModel "campushub_backend/internals/features/academics/students/model"
	auditModel "campushub_backend/internals/features/finance/audit/model"
	concessionModel "campushub_backend/internals/features/finance/concessions/model"
	feeModel "campushub_backend/internals/features/finance/fees/model"
	paymentModel "campushub_backend/internals/features/finance/payments/model"
	receiptModel "campushub_backend/internals/features/finance/receipts/model"
	noticeModel "campushub_backend/internals/features/notifications/notices/model"
	attendanceModel "campushub_backend/internals/features/staff/attendance/model"
	payrollModel "campushub_backend/internals/features/staff/payroll/model"
	userModel "campushub_backend/internals/features/users/auth/model"
)

// Migrate keeps the schema in sync on boot. Order matters only for readers;
// there are no database-level foreign keys between features.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.TokenBlacklist{},
		&sessionModel.AcademicSessionModel{},
		&studentModel.StudentModel{},
		&documentModel.StudentDocumentModel{},
		&feeModel.FeeStructureModel{},
		&concessionModel.ConcessionModel{},
		&paymentModel.FeePaymentModel{},
		&receiptModel.ReceiptModel{},
		&auditModel.AuditLogModel{},
		&noticeModel.NoticeModel{},
		&attendanceModel.StaffAttendanceModel{},
		&payrollModel.StaffSalaryModel{},
		&payrollModel.PayrollRunModel{},
		&payrollModel.PayslipModel{},
	)
	if err != nil {
		log.Fatalf("auto migration failed: %v", err)
	}
	log.Println("[INFO] schema migrated")
}
