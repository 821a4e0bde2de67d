package models

import (
	"time"
)

// Media resource types, mirroring what the upload host reports.
const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaDocument = "raw"
)

// PostMedia records an attachment uploaded to the external media host.
// The bytes live on the host; only the URL and host-side id are stored here.
type PostMedia struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	Post         Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	URL          string    `gorm:"not null" json:"url"`
	PublicID     string    `gorm:"size:100" json:"public_id"`
	ResourceType string    `gorm:"size:20" json:"resource_type"` // image, video or raw
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (m *PostMedia) IsImage() bool    { return m.ResourceType == MediaImage }
func (m *PostMedia) IsVideo() bool    { return m.ResourceType == MediaVideo }
func (m *PostMedia) IsDocument() bool { return m.ResourceType == MediaDocument }
