package server

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"watercolour-archive/internal/db"
)

var pipelineVersionPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// validateDateTaken accepts the archive's timestamp form or a bare date.
// The empty string clears the column.
func validateDateTaken(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{db.TimeLayout, "2006-01-02T15:04", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			value := parsed.Format(db.TimeLayout)
			return &value, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", raw)
}

// validatePipelineVersion enforces the vMAJOR.MINOR.PATCH tag format.
// The empty string clears the column.
func validatePipelineVersion(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !pipelineVersionPattern.MatchString(raw) {
		return nil, fmt.Errorf("invalid pipeline version %q: expected vMAJOR.MINOR.PATCH", raw)
	}
	return &raw, nil
}

// validateOrderInBatch parses a non-negative batch position. The empty
// string clears the column.
func validateOrderInBatch(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return nil, fmt.Errorf("invalid batch order %q: expected a non-negative integer", raw)
	}
	return &value, nil
}

// parseFlag reads a form checkbox or 0/1 query value.
func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "off":
		return false, nil
	case "1", "true", "on":
		return true, nil
	}
	return false, fmt.Errorf("invalid flag value %q", raw)
}

// imageEditUpdates validates the submitted edit form against the current
// row and returns the column updates. Only the allow-listed fields (is_raw,
// date_taken, order_in_batch, pipeline_version, flash_missing, cropped) are
// ever written. The raw/parent invariant is checked here so a bad submit is
// rejected before the write, mirroring the schema constraint.
func imageEditUpdates(image db.Image, form map[string]string) (map[string]any, error) {
	updates := make(map[string]any, 6)

	isRaw, err := parseFlag(form["is_raw"])
	if err != nil {
		return nil, err
	}
	if isRaw && image.ParentImageID != nil {
		return nil, errors.New("cannot mark a derived image as raw: it references a parent")
	}
	if !isRaw && image.ParentImageID == nil {
		return nil, errors.New("cannot mark an image as processed without a parent image")
	}
	updates["is_raw"] = isRaw

	dateTaken, err := validateDateTaken(form["date_taken"])
	if err != nil {
		return nil, err
	}
	updates["date_taken"] = dateTaken

	orderInBatch, err := validateOrderInBatch(form["order_in_batch"])
	if err != nil {
		return nil, err
	}
	updates["order_in_batch"] = orderInBatch

	pipelineVersion, err := validatePipelineVersion(form["pipeline_version"])
	if err != nil {
		return nil, err
	}
	updates["pipeline_version"] = pipelineVersion

	flashMissing, err := parseFlag(form["flash_missing"])
	if err != nil {
		return nil, err
	}
	updates["flash_missing"] = flashMissing

	cropped, err := parseFlag(form["cropped"])
	if err != nil {
		return nil, err
	}
	updates["cropped"] = cropped

	return updates, nil
}
