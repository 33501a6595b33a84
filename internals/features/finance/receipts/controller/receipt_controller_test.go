package controller

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/finance/receipts/model"
	"campushub_backend/internals/features/finance/receipts/service"
)

func TestStatusForGenerateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"payment missing", service.ErrPaymentNotFound, fiber.StatusNotFound},
		{"fee structure missing", service.ErrFeeStructureNotFound, fiber.StatusNotFound},
		{"payment not paid", service.ErrPaymentNotPaid, fiber.StatusBadRequest},
		{"zero amount", model.ErrNonPositiveAmount, fiber.StatusBadRequest},
		{"already generated", service.ErrAlreadyGenerated, fiber.StatusConflict},
		{"unexpected", errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForGenerateError(tt.err))
		})
	}
}
