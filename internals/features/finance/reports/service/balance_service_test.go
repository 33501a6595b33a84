package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	concessionModel "campushub_backend/internals/features/finance/concessions/model"
	feeModel "campushub_backend/internals/features/finance/fees/model"
)

func testStructure() feeModel.FeeStructureModel {
	fs := feeModel.FeeStructureModel{
		FeeStructureTuitionFee:       25000,
		FeeStructureLibraryFee:       2000,
		FeeStructureLaboratoryFee:    5000,
		FeeStructureExaminationFee:   3500,
		FeeStructureSportsFee:        1200,
		FeeStructureDevelopmentFee:   2000,
		FeeStructureMiscellaneousFee: 1000,
	}
	fs.FeeStructureTotal = fs.ComputeTotal()
	return fs
}

func TestComputeHeadBalancesNothingPaid(t *testing.T) {
	heads := ComputeHeadBalances(testStructure(), 0, 0)
	require.Len(t, heads, 7)
	assert.Equal(t, 25000.0, heads[0].Balance)
	assert.InDelta(t, 39700.0, TotalOutstanding(heads), 0.01)
}

func TestComputeHeadBalancesProportionalAllocation(t *testing.T) {
	// half the total paid: every head should be half cleared
	heads := ComputeHeadBalances(testStructure(), 19850, 0)
	for _, h := range heads {
		assert.InDelta(t, h.HeadAmount/2, h.Balance, 0.01, h.Name)
	}
	assert.InDelta(t, 19850.0, TotalOutstanding(heads), 0.05)
}

func TestComputeHeadBalancesFullyPaidClampsAtZero(t *testing.T) {
	heads := ComputeHeadBalances(testStructure(), 50000, 0)
	for _, h := range heads {
		assert.Equal(t, 0.0, h.Balance, h.Name)
	}
	assert.Equal(t, 0.0, TotalOutstanding(heads))
}

func TestComputeHeadBalancesWithConcession(t *testing.T) {
	heads := ComputeHeadBalances(testStructure(), 20000, 3970)
	assert.InDelta(t, 39700-20000-3970, TotalOutstanding(heads), 0.05)
}

func TestComputeHeadBalancesNaNInputsCoerceToZero(t *testing.T) {
	heads := ComputeHeadBalances(testStructure(), math.NaN(), math.NaN())
	assert.InDelta(t, 39700.0, TotalOutstanding(heads), 0.01)
	for _, h := range heads {
		assert.False(t, math.IsNaN(h.Balance), h.Name)
	}
}

func TestComputeHeadBalancesZeroTotalStructure(t *testing.T) {
	heads := ComputeHeadBalances(feeModel.FeeStructureModel{}, 1000, 0)
	for _, h := range heads {
		assert.Equal(t, 0.0, h.Balance)
	}
}

func TestConcessionTotalCountsActiveOnly(t *testing.T) {
	concessions := []concessionModel.ConcessionModel{
		{
			ConcessionDiscountType: concessionModel.DiscountTypePercentage,
			ConcessionPercentage:   10,
			ConcessionStatus:       concessionModel.ConcessionStatusActive,
		},
		{
			ConcessionDiscountType: concessionModel.DiscountTypeFixed,
			ConcessionAmount:       2000,
			ConcessionStatus:       concessionModel.ConcessionStatusExpired,
		},
		{
			ConcessionDiscountType: concessionModel.DiscountTypeFixed,
			ConcessionAmount:       500,
			ConcessionStatus:       concessionModel.ConcessionStatusActive,
		},
	}
	assert.InDelta(t, 3970+500, ConcessionTotal(concessions, 39700), 0.001)
}
