package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bscStructure() FeeStructureModel {
	return FeeStructureModel{
		FeeStructureDepartment:       "B.Sc.",
		FeeStructureTuitionFee:       25000,
		FeeStructureLibraryFee:       2000,
		FeeStructureLaboratoryFee:    5000,
		FeeStructureExaminationFee:   3500,
		FeeStructureSportsFee:        1200,
		FeeStructureDevelopmentFee:   2000,
		FeeStructureMiscellaneousFee: 1000,
	}
}

func TestComputeTotal(t *testing.T) {
	fs := bscStructure()
	assert.Equal(t, 39700.0, fs.ComputeTotal())
}

func TestBeforeSaveRecomputesTotal(t *testing.T) {
	fs := bscStructure()
	fs.FeeStructureTotal = 1 // stale value must not survive a save

	require.NoError(t, fs.BeforeSave(nil))
	assert.Equal(t, 39700.0, fs.FeeStructureTotal)

	fs.FeeStructureTuitionFee = 30000
	require.NoError(t, fs.BeforeSave(nil))
	assert.Equal(t, 44700.0, fs.FeeStructureTotal)
}

func TestComponentsOrderIsStable(t *testing.T) {
	fs := bscStructure()
	names := make([]string, 0, 7)
	for _, c := range fs.Components() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"tuitionFee", "libraryFee", "laboratoryFee", "examinationFee",
		"sportsFee", "developmentFee", "miscellaneousFee",
	}, names)
}
