package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPendingToPaid(t *testing.T) {
	m := FeePaymentModel{FeePaymentStatus: PaymentStatusPending}
	require.NoError(t, m.Transition(PaymentStatusPaid))
	assert.Equal(t, PaymentStatusPaid, m.FeePaymentStatus)
	assert.NotNil(t, m.FeePaymentDate, "paid payments get a payment date stamped")
}

func TestTransitionPendingToFailed(t *testing.T) {
	m := FeePaymentModel{FeePaymentStatus: PaymentStatusPending}
	require.NoError(t, m.Transition(PaymentStatusFailed))
	assert.Equal(t, PaymentStatusFailed, m.FeePaymentStatus)
	assert.Nil(t, m.FeePaymentDate)
}

func TestTransitionRejectsTerminalStates(t *testing.T) {
	for _, from := range []PaymentStatus{PaymentStatusPaid, PaymentStatusFailed} {
		m := FeePaymentModel{FeePaymentStatus: from}
		assert.Error(t, m.Transition(PaymentStatusPaid), "from %s", from)
		assert.Error(t, m.Transition(PaymentStatusFailed), "from %s", from)
		assert.Equal(t, from, m.FeePaymentStatus, "status unchanged after rejected transition")
	}
}

func TestTransitionRejectsInvalidTarget(t *testing.T) {
	m := FeePaymentModel{FeePaymentStatus: PaymentStatusPending}
	assert.Error(t, m.Transition(PaymentStatusPending))
	assert.Error(t, m.Transition(PaymentStatus("refunded")))
}
