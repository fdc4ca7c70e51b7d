package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateImage signals an insert whose MD5 checksum already exists.
	ErrDuplicateImage = errors.New("duplicate image checksum")
	// ErrNotFound signals a lookup for a row that does not exist.
	ErrNotFound = errors.New("record not found")
)

// ImageFilter holds the optional, conjunctive listing filters. Pointer
// fields distinguish "not filtered" from "filtered to false".
type ImageFilter struct {
	Filename string
	DateFrom string
	DateTo   string
	IsRaw    *bool
	Cropped  *bool
	Rotated  *bool
}

// HasConditions reports whether any filter is active.
func (f ImageFilter) HasConditions() bool {
	return f.Filename != "" || f.DateFrom != "" || f.DateTo != "" ||
		f.IsRaw != nil || f.Cropped != nil || f.Rotated != nil
}

func (f ImageFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Filename != "" {
		query = query.Where("filename LIKE ?", "%"+f.Filename+"%")
	}
	if f.DateFrom != "" {
		query = query.Where("date_taken >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		query = query.Where("date_taken <= ?", f.DateTo)
	}
	if f.IsRaw != nil {
		query = query.Where("is_raw = ?", *f.IsRaw)
	}
	if f.Cropped != nil {
		query = query.Where("cropped = ?", *f.Cropped)
	}
	if f.Rotated != nil {
		if *f.Rotated {
			query = query.Where("rotation_degrees > 0")
		} else {
			query = query.Where("rotation_degrees = 0")
		}
	}
	return query
}

// InsertImage inserts a new image row, rejecting duplicate checksums with
// ErrDuplicateImage before touching the table. Raw images must not
// reference a parent and processed images must, mirroring the schema's
// check constraint.
func InsertImage(conn *gorm.DB, image *Image) error {
	if image.IsRaw && image.ParentImageID != nil {
		return fmt.Errorf("raw image %s cannot reference parent %d", image.Filename, *image.ParentImageID)
	}
	if !image.IsRaw && image.ParentImageID == nil {
		return fmt.Errorf("processed image %s must reference a parent image", image.Filename)
	}
	var count int64
	if err := conn.Model(&Image{}).Where("md5_checksum = ?", image.MD5Checksum).Count(&count).Error; err != nil {
		return fmt.Errorf("check checksum: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateImage, image.MD5Checksum)
	}
	if image.NumImages == 0 {
		image.NumImages = 1
	}
	if image.LastModified == "" {
		image.LastModified = Now()
	}
	return conn.Create(image).Error
}

// GetImage fetches a single image by id.
func GetImage(conn *gorm.DB, id uint) (Image, error) {
	var image Image
	if err := conn.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, err
	}
	return image, nil
}

// GetImageByMD5 fetches a single image by checksum.
func GetImageByMD5(conn *gorm.DB, checksum string) (Image, error) {
	var image Image
	if err := conn.Where("md5_checksum = ?", checksum).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, err
	}
	return image, nil
}

// ListImages returns one page of the filtered listing plus the total row
// count ignoring pagination. Pages start at 1; requests beyond the last
// page yield an empty slice.
func ListImages(conn *gorm.DB, filter ImageFilter, page, perPage int) ([]Image, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	var total int64
	if err := filter.apply(conn.Model(&Image{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var images []Image
	err := filter.apply(conn.Model(&Image{})).
		Order("image_id asc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// UpdateImageFields writes the given columns and refreshes last_modified.
// Callers are responsible for restricting fields to the edit allow-list.
func UpdateImageFields(conn *gorm.DB, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["last_modified"] = Now()
	result := conn.Model(&Image{}).Where("image_id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountImages returns the unfiltered image count.
func CountImages(conn *gorm.DB) (int64, error) {
	var count int64
	err := conn.Model(&Image{}).Count(&count).Error
	return count, err
}
