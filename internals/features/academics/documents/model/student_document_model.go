package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL student_documents ---------------------------------------------------
// Uploaded certificates and ID proofs, stored on disk with the metadata here.
type StudentDocumentModel struct {
	StudentDocumentID uuid.UUID `json:"student_document_id" gorm:"column:student_document_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentDocumentStudentID uuid.UUID `json:"student_document_student_id" gorm:"column:student_document_student_id;type:uuid;not null;index:idx_student_documents_student"`

	StudentDocumentTitle    string `json:"student_document_title" gorm:"column:student_document_title;type:varchar(120);not null"`
	StudentDocumentFileName string `json:"student_document_file_name" gorm:"column:student_document_file_name;type:varchar(255);not null"`
	StudentDocumentPath     string `json:"-" gorm:"column:student_document_path;type:text;not null"`
	StudentDocumentMimeType string `json:"student_document_mime_type" gorm:"column:student_document_mime_type;type:varchar(100)"`
	StudentDocumentSize     int64  `json:"student_document_size" gorm:"column:student_document_size;type:bigint;not null;default:0"`

	StudentDocumentCreatedAt time.Time      `json:"student_document_created_at" gorm:"column:student_document_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentDocumentUpdatedAt time.Time      `json:"student_document_updated_at" gorm:"column:student_document_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentDocumentDeletedAt gorm.DeletedAt `json:"student_document_deleted_at,omitempty" gorm:"column:student_document_deleted_at;type:timestamptz;index"`
}

func (StudentDocumentModel) TableName() string { return "student_documents" }
