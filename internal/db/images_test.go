package db

import (
	"errors"
	"fmt"
	"testing"
)

func TestInsertImageRejectsDuplicateChecksum(t *testing.T) {
	conn := newTestDB(t)
	mustInsertImage(t, conn, Image{
		Filename:    "_DSC0001.NEF",
		MD5Checksum: "abcdef1234567890abcdef1234567890",
		IsRaw:       true,
		DateTaken:   strPtr("2025-01-29T12:34:56"),
	})

	duplicate := Image{
		Filename:    "_DSC0001_DUP.NEF",
		MD5Checksum: "abcdef1234567890abcdef1234567890",
		IsRaw:       true,
	}
	if err := InsertImage(conn, &duplicate); !errors.Is(err, ErrDuplicateImage) {
		t.Fatalf("expected ErrDuplicateImage, got %v", err)
	}
	count, err := CountImages(conn)
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 image after duplicate insert, got %d", count)
	}
}

func TestGetImageByMD5(t *testing.T) {
	conn := newTestDB(t)
	seeded := mustInsertImage(t, conn, Image{
		Filename:    "_DSC0002.NEF",
		MD5Checksum: "11111111111111111111111111111111",
		IsRaw:       true,
	})

	image, err := GetImageByMD5(conn, "11111111111111111111111111111111")
	if err != nil {
		t.Fatalf("get image by md5: %v", err)
	}
	if image.ID != seeded.ID {
		t.Fatalf("expected image %d, got %d", seeded.ID, image.ID)
	}
	if _, err := GetImageByMD5(conn, "22222222222222222222222222222222"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListImagesPagination(t *testing.T) {
	conn := newTestDB(t)
	for i := 1; i <= 45; i++ {
		mustInsertImage(t, conn, Image{
			Filename:    fmt.Sprintf("_DSC%04d.NEF", i),
			MD5Checksum: fmt.Sprintf("%032d", i),
			IsRaw:       true,
		})
	}

	images, total, err := ListImages(conn, ImageFilter{}, 1, 20)
	if err != nil {
		t.Fatalf("list images: %v", err)
	}
	if total != 45 {
		t.Fatalf("expected total 45, got %d", total)
	}
	if len(images) != 20 {
		t.Fatalf("expected 20 rows on page 1, got %d", len(images))
	}
	if images[0].Filename != "_DSC0001.NEF" {
		t.Fatalf("expected rows ordered by id, got first %q", images[0].Filename)
	}

	images, _, err = ListImages(conn, ImageFilter{}, 3, 20)
	if err != nil {
		t.Fatalf("list images page 3: %v", err)
	}
	if len(images) != 5 {
		t.Fatalf("expected 5 rows on page 3, got %d", len(images))
	}

	images, total, err = ListImages(conn, ImageFilter{}, 4, 20)
	if err != nil {
		t.Fatalf("list images past last page: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected 0 rows past the last page, got %d", len(images))
	}
	if total != 45 {
		t.Fatalf("expected total 45 past the last page, got %d", total)
	}
}

func TestListImagesFiltersAreConjunctive(t *testing.T) {
	conn := newTestDB(t)
	raw := mustInsertImage(t, conn, Image{
		Filename:    "_DSC0100.NEF",
		MD5Checksum: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		IsRaw:       true,
		DateTaken:   strPtr("2025-01-10T09:00:00"),
	})
	mustInsertImage(t, conn, Image{
		Filename:      "_DSC0100_crop.png",
		MD5Checksum:   "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		IsRaw:         false,
		ParentImageID: &raw.ID,
		DateTaken:     strPtr("2025-01-11T09:00:00"),
		Cropped:       true,
	})
	mustInsertImage(t, conn, Image{
		Filename:        "_DSC0200.NEF",
		MD5Checksum:     "cccccccccccccccccccccccccccccccc",
		IsRaw:           true,
		DateTaken:       strPtr("2025-02-01T09:00:00"),
		RotationDegrees: 90,
	})

	images, total, err := ListImages(conn, ImageFilter{IsRaw: boolPtr(true)}, 1, 20)
	if err != nil {
		t.Fatalf("filter is_raw: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 raw images, got %d", total)
	}
	for _, image := range images {
		if !image.IsRaw {
			t.Fatalf("filter is_raw=1 returned processed image %d", image.ID)
		}
	}

	// Conjunctive: raw AND filename substring AND date range.
	_, total, err = ListImages(conn, ImageFilter{
		IsRaw:    boolPtr(true),
		Filename: "0100",
		DateFrom: "2025-01-01",
		DateTo:   "2025-01-31",
	}, 1, 20)
	if err != nil {
		t.Fatalf("conjunctive filter: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 image matching all filters, got %d", total)
	}

	_, total, err = ListImages(conn, ImageFilter{Rotated: boolPtr(true)}, 1, 20)
	if err != nil {
		t.Fatalf("filter rotated: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 rotated image, got %d", total)
	}

	_, total, err = ListImages(conn, ImageFilter{Cropped: boolPtr(false)}, 1, 20)
	if err != nil {
		t.Fatalf("filter cropped=0: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 uncropped images, got %d", total)
	}
}

func TestUpdateImageFieldsBumpsLastModified(t *testing.T) {
	conn := newTestDB(t)
	image := mustInsertImage(t, conn, Image{
		Filename:     "_DSC0003.NEF",
		MD5Checksum:  "dddddddddddddddddddddddddddddddd",
		IsRaw:        true,
		LastModified: "2020-01-01T00:00:00",
	})

	err := UpdateImageFields(conn, image.ID, map[string]any{
		"cropped":        true,
		"order_in_batch": intPtr(7),
	})
	if err != nil {
		t.Fatalf("update image: %v", err)
	}

	updated, err := GetImage(conn, image.ID)
	if err != nil {
		t.Fatalf("reload image: %v", err)
	}
	if !updated.Cropped {
		t.Fatal("expected cropped flag to be set")
	}
	if updated.OrderInBatch == nil || *updated.OrderInBatch != 7 {
		t.Fatalf("expected order_in_batch 7, got %v", updated.OrderInBatch)
	}
	if updated.LastModified == "2020-01-01T00:00:00" {
		t.Fatal("expected last_modified to be refreshed")
	}
}

func TestUpdateImageFieldsUnknownID(t *testing.T) {
	conn := newTestDB(t)
	err := UpdateImageFields(conn, 999, map[string]any{"cropped": true})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertImageEnforcesRawParentPairing(t *testing.T) {
	conn := newTestDB(t)
	parent := mustInsertImage(t, conn, Image{
		Filename:    "_DSC0300.NEF",
		MD5Checksum: "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		IsRaw:       true,
	})

	rawWithParent := Image{
		Filename:      "_DSC0300_bad.NEF",
		MD5Checksum:   "f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0",
		IsRaw:         true,
		ParentImageID: &parent.ID,
	}
	if err := InsertImage(conn, &rawWithParent); err == nil {
		t.Fatal("expected error for a raw image referencing a parent")
	}

	orphanProcessed := Image{
		Filename:    "_DSC0300_crop.png",
		MD5Checksum: "f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1",
		IsRaw:       false,
	}
	if err := InsertImage(conn, &orphanProcessed); err == nil {
		t.Fatal("expected error for a processed image without a parent")
	}

	count, err := CountImages(conn)
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected rejected inserts to leave 1 row, got %d", count)
	}

	derived := Image{
		Filename:      "_DSC0300_crop.png",
		MD5Checksum:   "f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1",
		IsRaw:         false,
		ParentImageID: &parent.ID,
	}
	if err := InsertImage(conn, &derived); err != nil {
		t.Fatalf("expected processed image with a parent to insert: %v", err)
	}
}

func TestInsertImageRejectsRotationOutOfRange(t *testing.T) {
	conn := newTestDB(t)
	bad := Image{
		Filename:        "_DSC0400.NEF",
		MD5Checksum:     "a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0",
		IsRaw:           true,
		RotationDegrees: 400,
	}
	if err := InsertImage(conn, &bad); err == nil {
		t.Fatal("expected error for rotation_degrees above 360")
	}

	bad.RotationDegrees = -5
	if err := InsertImage(conn, &bad); err == nil {
		t.Fatal("expected error for negative rotation_degrees")
	}

	count, err := CountImages(conn)
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after rejected inserts, got %d", count)
	}

	bad.RotationDegrees = 360
	if err := InsertImage(conn, &bad); err != nil {
		t.Fatalf("expected rotation_degrees 360 to insert: %v", err)
	}
}
