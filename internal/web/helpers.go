package web

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// nullPlaceholder is rendered in read-only views for absent columns.
const nullPlaceholder = "NULL"

func itoa(value int) string {
	return strconv.Itoa(value)
}

func utoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func esc(value string) string {
	return templ.EscapeString(value)
}

func pageURL(base string, page, perPage int) string {
	if strings.Contains(base, "?") {
		return base + "&page=" + itoa(page) + "&per_page=" + itoa(perPage)
	}
	return base + "?page=" + itoa(page) + "&per_page=" + itoa(perPage)
}

func orNull(value *string) string {
	if value == nil || *value == "" {
		return nullPlaceholder
	}
	return *value
}

func intOrNull(value *int) string {
	if value == nil {
		return nullPlaceholder
	}
	return strconv.Itoa(*value)
}

func uintOrNull(value *uint) string {
	if value == nil {
		return nullPlaceholder
	}
	return utoa(*value)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// checkbox value helpers for the edit form: a draft, when present, wins
// over the stored value.

func draftFlag(draft map[string]string, key string, stored bool) bool {
	if draft == nil {
		return stored
	}
	raw := strings.ToLower(strings.TrimSpace(draft[key]))
	return raw == "1" || raw == "true" || raw == "on"
}

func draftText(draft map[string]string, key, stored string) string {
	if draft == nil {
		return stored
	}
	return draft[key]
}
