package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1, -39700} {
		m := ReceiptModel{ReceiptAmount: amount}
		assert.ErrorIs(t, m.BeforeCreate(nil), ErrNonPositiveAmount, "amount %v", amount)
	}
}

func TestBeforeCreateAcceptsPositiveAmount(t *testing.T) {
	m := ReceiptModel{ReceiptAmount: 5000}
	require.NoError(t, m.BeforeCreate(nil))
}
