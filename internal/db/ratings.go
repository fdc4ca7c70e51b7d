package db

import "gorm.io/gorm"

// InsertRating inserts a scored review of a painting/image pair.
func InsertRating(conn *gorm.DB, rating *Rating) error {
	if rating.CreatedAt == "" {
		rating.CreatedAt = Now()
	}
	return conn.Create(rating).Error
}

// RatingsForPainting lists a painting's ratings, newest first.
func RatingsForPainting(conn *gorm.DB, paintingID uint) ([]Rating, error) {
	var ratings []Rating
	err := conn.Where("painting_id = ?", paintingID).
		Order("rating_id desc").
		Find(&ratings).Error
	return ratings, err
}
