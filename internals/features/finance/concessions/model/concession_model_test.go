package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		con      ConcessionModel
		feeTotal float64
		want     float64
	}{
		{
			name:     "fixed amount",
			con:      ConcessionModel{ConcessionDiscountType: DiscountTypeFixed, ConcessionAmount: 5000},
			feeTotal: 39700,
			want:     5000,
		},
		{
			name:     "ten percent",
			con:      ConcessionModel{ConcessionDiscountType: DiscountTypePercentage, ConcessionPercentage: 10},
			feeTotal: 39700,
			want:     3970,
		},
		{
			name:     "nan percentage coerces to zero",
			con:      ConcessionModel{ConcessionDiscountType: DiscountTypePercentage, ConcessionPercentage: math.NaN()},
			feeTotal: 39700,
			want:     0,
		},
		{
			name:     "negative fixed coerces to zero",
			con:      ConcessionModel{ConcessionDiscountType: DiscountTypeFixed, ConcessionAmount: -100},
			feeTotal: 39700,
			want:     0,
		},
		{
			name:     "nan fee total with percentage",
			con:      ConcessionModel{ConcessionDiscountType: DiscountTypePercentage, ConcessionPercentage: 10},
			feeTotal: math.NaN(),
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.con.Resolve(tt.feeTotal), 0.001)
		})
	}
}
