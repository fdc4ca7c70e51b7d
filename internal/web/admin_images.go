package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminImages(data ImageListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageStart(&b, "Images")
		writeBanners(&b, data.Flash, data.Notice, data.Error)
		b.WriteString(`      <header class="hero">
        <h1>Images</h1>
      </header>
      <section class="panel">
        <form method="get" action="/admin/images" class="filter-form">
          <input name="filename" placeholder="Filename contains" value="` + esc(data.Filter.Filename) + `"/>
          <input name="date_from" placeholder="Taken from (YYYY-MM-DD)" value="` + esc(data.Filter.DateFrom) + `"/>
          <input name="date_to" placeholder="Taken to (YYYY-MM-DD)" value="` + esc(data.Filter.DateTo) + `"/>
`)
		writeFlagSelect(&b, "is_raw", "Raw", data.Filter.IsRaw)
		writeFlagSelect(&b, "cropped", "Cropped", data.Filter.Cropped)
		writeFlagSelect(&b, "rotated", "Rotated", data.Filter.Rotated)
		b.WriteString(`          <input type="hidden" name="per_page" value="` + itoa(data.PerPage) + `"/>
          <button type="submit" class="secondary">Filter</button>
          <a href="/admin/images">Clear</a>
        </form>
      </section>
      <section class="panel">
`)
		if len(data.Images) > 0 {
			b.WriteString(`        <table class="listing">
          <thead>
            <tr><th></th><th>ID</th><th>Filename</th><th>Checksum</th><th>Taken</th><th>Raw</th><th>Cropped</th><th>Rotation</th></tr>
          </thead>
          <tbody>
`)
			for _, image := range data.Images {
				id := utoa(image.ID)
				b.WriteString(`            <tr>
              <td><a href="/admin/images/` + id + `"><img class="thumb" src="/admin/images/` + id + `/thumbnail" alt="" loading="lazy"/></a></td>
              <td><a href="/admin/images/` + id + `">` + id + `</a></td>
              <td>` + esc(image.Filename) + `</td>
              <td><code>` + esc(image.MD5Checksum) + `</code></td>
              <td>` + esc(orNull(image.DateTaken)) + `</td>
              <td>` + yesNo(image.IsRaw) + `</td>
              <td>` + yesNo(image.Cropped) + `</td>
              <td>` + itoa(image.RotationDegrees) + `&deg;</td>
            </tr>
`)
			}
			b.WriteString(`          </tbody>
        </table>
`)
		}
		writePagination(&b, data.Pagination)
		b.WriteString(`      </section>
`)
		writePageEnd(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeFlagSelect(b *strings.Builder, name, label, value string) {
	b.WriteString(`          <select name="` + name + `">
            <option value=""` + selectedIf(value == "") + `>` + label + `: any</option>
            <option value="1"` + selectedIf(value == "1") + `>` + label + `: yes</option>
            <option value="0"` + selectedIf(value == "0") + `>` + label + `: no</option>
          </select>
`)
}

func selectedIf(selected bool) string {
	if selected {
		return ` selected`
	}
	return ""
}

// writePagination renders first/prev/next/last controls, disabled at the
// range boundaries, plus the row and page totals.
func writePagination(b *strings.Builder, p PaginationData) {
	if p.BasePath == "" {
		return
	}
	b.WriteString(`        <div class="pagination">
`)
	writePageLink(b, p, 1, "First", p.HasPrev)
	writePageLink(b, p, p.PrevPage, "Prev", p.HasPrev)
	b.WriteString(`          <span class="page-status">Page ` + itoa(p.Page) + ` of ` + itoa(p.TotalPages) + ` (` + itoa(p.Total) + ` rows)</span>
`)
	writePageLink(b, p, p.NextPage, "Next", p.HasNext)
	writePageLink(b, p, p.TotalPages, "Last", p.HasNext)
	b.WriteString(`        </div>
`)
}

func writePageLink(b *strings.Builder, p PaginationData, page int, label string, enabled bool) {
	if !enabled {
		b.WriteString(`          <span class="page-link disabled">` + label + `</span>
`)
		return
	}
	b.WriteString(`          <a class="page-link" href="` + pageURL(p.BasePath, page, p.PerPage) + `">` + label + `</a>
`)
}
