package web

import "watercolour-archive/internal/db"

type PaginationData struct {
	BasePath   string
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// ImageFilterValues carries the raw filter inputs back into the form so a
// filtered listing keeps its state across pages.
type ImageFilterValues struct {
	Filename string
	DateFrom string
	DateTo   string
	IsRaw    string
	Cropped  string
	Rotated  string
}

type ImageListData struct {
	Images     []db.Image
	Filter     ImageFilterValues
	Pagination PaginationData
	PerPage    int
	Flash      string
	Notice     string
	Error      string
}

type ImageDetailData struct {
	Image    db.Image
	EditMode bool
	Flash    string
	Error    string
	// Draft holds the submitted form values when re-rendering after a
	// rejected edit.
	Draft map[string]string
}

type DashboardData struct {
	ImageCount    int64
	PaintingCount int64
	RecentEvents  []db.Event
	Flash         string
	Error         string
}

type PaintingListData struct {
	Paintings  []db.PaintingSummary
	Pagination PaginationData
	Flash      string
	Notice     string
	Error      string
}

type IngestData struct {
	Folder    string
	FileCount int
	Extension string
	Flash     string
	Error     string
}
