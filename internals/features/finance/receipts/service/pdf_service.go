package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	studentModel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/finance/receipts/model"
)

// RenderPDF writes the receipt to <uploadDir>/receipts/<receiptNo>.pdf and
// returns the stored path. Callers treat failure as non-fatal.
func RenderPDF(uploadDir string, r model.ReceiptModel, student studentModel.StudentModel, breakdown []model.ReceiptComponent) (string, error) {
	dir := filepath.Join(uploadDir, "receipts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipts dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fee Receipt "+r.ReceiptNo, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "CampusHub College", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Fee Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, "Receipt No: "+r.ReceiptNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Date: "+r.ReceiptCreatedAt.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Student: "+student.StudentFullName, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Admission No: "+student.StudentAdmissionNo, "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Department: "+student.StudentDepartment, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// breakdown table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Fee Head", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Head Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Allocated", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, comp := range breakdown {
		pdf.CellFormat(90, 7, comp.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", comp.HeadAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", comp.Allocated), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Amount Paid: %.2f", r.ReceiptAmount), "", 1, "R", false, 0, "")
	if r.ReceiptConcessionTotal > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Concession Applied: %.2f", r.ReceiptConcessionTotal), "", 1, "R", false, 0, "")
	}
	if r.ReceiptIsDuplicate {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 8, "DUPLICATE COPY", "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	path := filepath.Join(dir, r.ReceiptNo+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}
