package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		audience NoticeAudience
		role     string
		want     bool
	}{
		{NoticeAudienceAll, "student", true},
		{NoticeAudienceAll, "faculty", true},
		{NoticeAudienceAll, "admin", true},
		{NoticeAudienceFaculty, "faculty", true},
		{NoticeAudienceFaculty, "student", false},
		{NoticeAudienceFaculty, "admin", true},
		{NoticeAudienceStudent, "student", true},
		{NoticeAudienceStudent, "faculty", false},
		{NoticeAudience("unknown"), "admin", false},
	}
	for _, tt := range tests {
		m := NoticeModel{NoticeAudience: tt.audience}
		assert.Equal(t, tt.want, m.VisibleTo(tt.role), "%s visible to %s", tt.audience, tt.role)
	}
}
