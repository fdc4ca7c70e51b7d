package db

import (
	"gorm.io/datatypes"
)

// Timestamps are stored as text in the archive's canonical
// YYYY-MM-DDTHH:MM:SS form, matching date_taken and the *_date columns.
const TimeLayout = "2006-01-02T15:04:05"

type Image struct {
	ID              uint    `gorm:"column:image_id;primaryKey"`
	Filename        string  `gorm:"size:255;not null;index"`
	FilePath        *string `gorm:"size:1024"`
	MD5Checksum     string  `gorm:"column:md5_checksum;size:32;uniqueIndex;not null"`
	IsRaw           bool    `gorm:"not null;default:true;check:chk_images_raw_parent,(is_raw AND parent_image_id IS NULL) OR (NOT is_raw AND parent_image_id IS NOT NULL)"`
	ParentImageID   *uint   `gorm:"index"`
	Parent          *Image  `gorm:"foreignKey:ParentImageID;constraint:OnDelete:SET NULL"`
	DateTaken       *string `gorm:"size:19;index"`
	OrderInBatch    *int
	PipelineVersion *string `gorm:"size:32"`
	FlashMissing    bool    `gorm:"not null;default:false"`
	Cropped         bool    `gorm:"not null;default:false"`
	CroppedDate     *string `gorm:"size:19"`
	RotationDegrees int     `gorm:"not null;default:0;check:rotation_degrees >= 0 AND rotation_degrees <= 360"`
	RotatedDate     *string `gorm:"size:19"`
	NumImages       int     `gorm:"not null;default:1"`
	LastModified    string  `gorm:"size:19;not null"`
}

func (Image) TableName() string { return "images" }

type Painting struct {
	ID                uint    `gorm:"column:painting_id;primaryKey"`
	Name              *string `gorm:"size:255"`
	Description       *string
	ExplicitYear      *int   `gorm:"check:explicit_year IS NULL OR (explicit_year >= 1900 AND explicit_year <= 2050)"`
	InferredYear      *int   `gorm:"check:inferred_year IS NULL OR (inferred_year >= 1900 AND inferred_year <= 2050)"`
	PersonalFavourite bool   `gorm:"not null;default:false"`
	LastModified      string `gorm:"size:19;not null"`
}

func (Painting) TableName() string { return "paintings" }

type PaintingImage struct {
	PaintingID uint     `gorm:"primaryKey"`
	ImageID    uint     `gorm:"primaryKey"`
	Painting   Painting `gorm:"foreignKey:PaintingID;constraint:OnDelete:CASCADE"`
	Image      Image    `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
}

func (PaintingImage) TableName() string { return "painting_images" }

type Rating struct {
	ID         uint     `gorm:"column:rating_id;primaryKey"`
	PaintingID uint     `gorm:"index;not null"`
	Painting   Painting `gorm:"foreignKey:PaintingID;constraint:OnDelete:CASCADE"`
	ImageID    uint     `gorm:"index;not null"`
	Image      Image    `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
	Score      int      `gorm:"not null;check:score >= 1 AND score <= 5"`
	User       *string  `gorm:"column:user;size:64"`
	CreatedAt  string   `gorm:"size:19;not null"`
}

func (Rating) TableName() string { return "ratings" }

type Session struct {
	ID        string `gorm:"primaryKey;size:64"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	Flash     string `gorm:"not null;default:''"`
	CreatedAt string `gorm:"size:19;not null"`
	UpdatedAt string `gorm:"size:19;not null"`
}

func (Session) TableName() string { return "sessions" }

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt string         `gorm:"size:19;not null"`
}

func (Event) TableName() string { return "events" }
