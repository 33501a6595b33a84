package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "campushub_backend/internals/features/finance/fees/model"
	paymentModel "campushub_backend/internals/features/finance/payments/model"
	"campushub_backend/internals/features/finance/receipts/model"
)

func TestValidateForGenerationRejectsUnsettledPayments(t *testing.T) {
	for _, status := range []paymentModel.PaymentStatus{
		paymentModel.PaymentStatusPending,
		paymentModel.PaymentStatusFailed,
	} {
		p := paymentModel.FeePaymentModel{FeePaymentStatus: status, FeePaymentAmount: 5000}
		assert.ErrorIs(t, validateForGeneration(p), ErrPaymentNotPaid, "status %s", status)
	}
}

func TestValidateForGenerationRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -250} {
		p := paymentModel.FeePaymentModel{
			FeePaymentStatus: paymentModel.PaymentStatusPaid,
			FeePaymentAmount: amount,
		}
		assert.ErrorIs(t, validateForGeneration(p), model.ErrNonPositiveAmount, "amount %v", amount)
	}
}

func TestValidateForGenerationAcceptsPaidPayment(t *testing.T) {
	p := paymentModel.FeePaymentModel{
		FeePaymentStatus: paymentModel.PaymentStatusPaid,
		FeePaymentAmount: 19850,
	}
	require.NoError(t, validateForGeneration(p))
}

func TestNewReceiptNoFormat(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	no := NewReceiptNo(now)
	assert.Regexp(t, `^RCP-2026-[0-9a-f]{6}$`, no)
	assert.NotEqual(t, no, NewReceiptNo(now), "consecutive numbers differ")
}

func TestAllocateBreakdownSumsToAmount(t *testing.T) {
	fs := feeModel.FeeStructureModel{
		FeeStructureTuitionFee:     25000,
		FeeStructureLibraryFee:     2000,
		FeeStructureLaboratoryFee:  5000,
		FeeStructureExaminationFee: 3000,
	}

	breakdown := AllocateBreakdown(fs, 17500)
	require.Len(t, breakdown, 7)

	sum := 0.0
	for _, comp := range breakdown {
		sum += comp.Allocated
		assert.GreaterOrEqual(t, comp.Allocated, 0.0, comp.Name)
	}
	assert.InDelta(t, 17500.0, sum, 0.05)

	// tuition carries 25000/35000 of the total
	assert.InDelta(t, 12500.0, breakdown[0].Allocated, 0.01)
}

func TestAllocateBreakdownZeroTotal(t *testing.T) {
	breakdown := AllocateBreakdown(feeModel.FeeStructureModel{}, 1000)
	for _, comp := range breakdown {
		assert.Equal(t, 0.0, comp.Allocated, fmt.Sprintf("head %s", comp.Name))
	}
}
