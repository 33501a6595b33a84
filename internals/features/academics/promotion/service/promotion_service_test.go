package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		department string
		year       int
		want       Decision
		wantErr    bool
	}{
		{"B.A.", 1, DecisionPromote, false},
		{"B.A.", 2, DecisionPromote, false},
		{"B.A.", 3, DecisionGraduate, false},
		{"B.Sc.", 2, DecisionPromote, false},
		{"B.Sc.", 3, DecisionGraduate, false},
		{"B.Ed.", 1, DecisionPromote, false},
		{"B.Ed.", 2, DecisionGraduate, false},
		{"B.Ed.", 5, DecisionGraduate, false},
		{"M.Sc.", 1, 0, true},
	}
	for _, tt := range tests {
		got, err := Decide(tt.department, tt.year)
		if tt.wantErr {
			require.Error(t, err, "%s year %d", tt.department, tt.year)
			continue
		}
		require.NoError(t, err, "%s year %d", tt.department, tt.year)
		assert.Equal(t, tt.want, got, "%s year %d", tt.department, tt.year)
	}
}
