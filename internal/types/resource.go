package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Resource is one entry of the static recommendation library. The pipeline
// only reads these; curation happens out of band.
type Resource struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title            string         `gorm:"not null;column:title" json:"title"`
	Description      string         `gorm:"column:description" json:"description,omitempty"`
	Category         string         `gorm:"not null;column:category;index" json:"category"`
	ResourceType     string         `gorm:"not null;column:resource_type" json:"resource_type"`
	FileURL          string         `gorm:"column:file_url" json:"file_url,omitempty"`
	DownloadURL      string         `gorm:"column:download_url" json:"download_url,omitempty"`
	Tags             datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags,omitempty"`
	TargetWeaknesses datatypes.JSON `gorm:"column:target_weaknesses;type:jsonb" json:"target_weaknesses,omitempty"`
	IsActive         bool           `gorm:"not null;column:is_active;default:true" json:"is_active"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Resource) TableName() string { return "resource" }
