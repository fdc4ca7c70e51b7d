package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertPainting inserts a painting row, returning the new id via the model.
func InsertPainting(conn *gorm.DB, painting *Painting) error {
	if painting.LastModified == "" {
		painting.LastModified = Now()
	}
	return conn.Create(painting).Error
}

// GetPainting fetches a single painting by id.
func GetPainting(conn *gorm.DB, id uint) (Painting, error) {
	var painting Painting
	if err := conn.First(&painting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Painting{}, ErrNotFound
		}
		return Painting{}, err
	}
	return painting, nil
}

// PaintingSummary is one row of the admin painting listing.
type PaintingSummary struct {
	Painting
	ImageCount   int64
	RatingCount  int64
	AverageScore float64
}

// ListPaintings returns one page of paintings ordered by id, with linked
// image and rating aggregates, plus the total painting count.
func ListPaintings(conn *gorm.DB, page, perPage int) ([]PaintingSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	var total int64
	if err := conn.Model(&Painting{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var paintings []Painting
	err := conn.Model(&Painting{}).
		Order("painting_id asc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&paintings).Error
	if err != nil {
		return nil, 0, err
	}
	summaries := make([]PaintingSummary, 0, len(paintings))
	for _, painting := range paintings {
		summary := PaintingSummary{Painting: painting}
		if err := conn.Model(&PaintingImage{}).Where("painting_id = ?", painting.ID).Count(&summary.ImageCount).Error; err != nil {
			return nil, 0, err
		}
		if err := conn.Model(&Rating{}).Where("painting_id = ?", painting.ID).Count(&summary.RatingCount).Error; err != nil {
			return nil, 0, err
		}
		if summary.RatingCount > 0 {
			row := conn.Model(&Rating{}).Where("painting_id = ?", painting.ID).Select("avg(score)").Row()
			if err := row.Scan(&summary.AverageScore); err != nil {
				return nil, 0, err
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

// UpdatePaintingFields writes the given columns and refreshes last_modified.
func UpdatePaintingFields(conn *gorm.DB, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["last_modified"] = Now()
	result := conn.Model(&Painting{}).Where("painting_id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePainting removes a painting. Association rows cascade in the
// schema; the explicit deletes keep auto-migrated test databases honest
// when the driver has not applied the FK actions.
func DeletePainting(conn *gorm.DB, id uint) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("painting_id = ?", id).Delete(&PaintingImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("painting_id = ?", id).Delete(&Rating{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Painting{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// LinkPaintingImage inserts a painting/image association row. Re-linking an
// existing pair is a no-op.
func LinkPaintingImage(conn *gorm.DB, paintingID, imageID uint) error {
	link := PaintingImage{PaintingID: paintingID, ImageID: imageID}
	return conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkPaintingImage removes a painting/image association row.
func UnlinkPaintingImage(conn *gorm.DB, paintingID, imageID uint) error {
	return conn.Where("painting_id = ? AND image_id = ?", paintingID, imageID).Delete(&PaintingImage{}).Error
}

// ImagesForPainting lists the images linked to a painting, ordered by id.
func ImagesForPainting(conn *gorm.DB, paintingID uint) ([]Image, error) {
	var images []Image
	err := conn.Model(&Image{}).
		Joins("JOIN painting_images ON painting_images.image_id = images.image_id").
		Where("painting_images.painting_id = ?", paintingID).
		Order("images.image_id asc").
		Find(&images).Error
	return images, err
}

// CountPaintings returns the unfiltered painting count.
func CountPaintings(conn *gorm.DB) (int64, error) {
	var count int64
	err := conn.Model(&Painting{}).Count(&count).Error
	return count, err
}
