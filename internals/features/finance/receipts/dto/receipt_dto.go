package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/finance/receipts/model"
)

type GenerateReceiptRequest struct {
	PaymentID uuid.UUID `json:"payment_id" validate:"required"`
}

type ReceiptResponse struct {
	ReceiptID       uuid.UUID                `json:"receipt_id"`
	ReceiptNo       string                   `json:"receipt_no"`
	PaymentID       uuid.UUID                `json:"payment_id"`
	StudentID       uuid.UUID                `json:"student_id"`
	Amount          float64                  `json:"amount"`
	ConcessionTotal float64                  `json:"concession_total"`
	Components      []model.ReceiptComponent `json:"components"`
	IsDuplicate     bool                     `json:"is_duplicate"`
	OriginalID      *uuid.UUID               `json:"original_id,omitempty"`
	Status          model.ReceiptStatus      `json:"status"`
	PDFAvailable    bool                     `json:"pdf_available"`
	CreatedAt       time.Time                `json:"created_at"`
}

func ToReceiptResponse(m model.ReceiptModel) ReceiptResponse {
	var components []model.ReceiptComponent
	if len(m.ReceiptComponents) > 0 {
		_ = json.Unmarshal(m.ReceiptComponents, &components)
	}
	return ReceiptResponse{
		ReceiptID:       m.ReceiptID,
		ReceiptNo:       m.ReceiptNo,
		PaymentID:       m.ReceiptPaymentID,
		StudentID:       m.ReceiptStudentID,
		Amount:          m.ReceiptAmount,
		ConcessionTotal: m.ReceiptConcessionTotal,
		Components:      components,
		IsDuplicate:     m.ReceiptIsDuplicate,
		OriginalID:      m.ReceiptOriginalID,
		Status:          m.ReceiptStatus,
		PDFAvailable:    m.ReceiptPDFPath != nil,
		CreatedAt:       m.ReceiptCreatedAt,
	}
}

func ToReceiptResponses(list []model.ReceiptModel) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToReceiptResponse(m))
	}
	return out
}
