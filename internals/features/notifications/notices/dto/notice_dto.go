package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/notifications/notices/model"
)

type NoticeCreateDTO struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience" validate:"required,oneof=all faculty student"`
}

type NoticeUpdateDTO struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Body     *string `json:"body,omitempty"`
	Audience *string `json:"audience,omitempty" validate:"omitempty,oneof=all faculty student"`
}

type NoticeResponse struct {
	NoticeID    uuid.UUID            `json:"notice_id"`
	Title       string               `json:"title"`
	Body        string               `json:"body"`
	Audience    model.NoticeAudience `json:"audience"`
	IsPublished bool                 `json:"is_published"`
	PublishedAt *time.Time           `json:"published_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (d NoticeCreateDTO) ToModel(createdBy uuid.UUID) model.NoticeModel {
	return model.NoticeModel{
		NoticeTitle:     d.Title,
		NoticeBody:      d.Body,
		NoticeAudience:  model.NoticeAudience(d.Audience),
		NoticeCreatedBy: createdBy,
	}
}

func ApplyNoticeUpdate(m *model.NoticeModel, d NoticeUpdateDTO) {
	if d.Title != nil {
		m.NoticeTitle = *d.Title
	}
	if d.Body != nil {
		m.NoticeBody = *d.Body
	}
	if d.Audience != nil {
		m.NoticeAudience = model.NoticeAudience(*d.Audience)
	}
}

func ToNoticeResponse(m model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		NoticeID:    m.NoticeID,
		Title:       m.NoticeTitle,
		Body:        m.NoticeBody,
		Audience:    m.NoticeAudience,
		IsPublished: m.NoticeIsPublished,
		PublishedAt: m.NoticePublishedAt,
		CreatedAt:   m.NoticeCreatedAt,
	}
}

func ToNoticeResponses(list []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToNoticeResponse(m))
	}
	return out
}
