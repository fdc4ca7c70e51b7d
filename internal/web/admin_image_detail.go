package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminImageDetail(data ImageDetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		image := data.Image
		id := utoa(image.ID)
		writePageStart(&b, "Image "+id)
		writeBanners(&b, data.Flash, "", data.Error)
		b.WriteString(`      <header class="hero">
        <h1>Image ` + id + `</h1>
        <p>` + esc(image.Filename) + `</p>
      </header>
      <section class="panel detail">
        <a href="/admin/images/` + id + `/file"><img class="preview" src="/admin/images/` + id + `/thumbnail" alt="` + esc(image.Filename) + `"/></a>
        <p>
          <a href="/admin/images/` + id + `/file">View full resolution</a> ·
          <a href="/admin/images/` + id + `/file?download=1">Download</a>
        </p>
      </section>
`)
		if data.EditMode {
			writeEditForm(&b, data)
		} else {
			writeReadOnlyDetail(&b, data)
		}
		b.WriteString(`      <p><a href="/admin/images">Back to images</a></p>
`)
		writePageEnd(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeReadOnlyDetail(b *strings.Builder, data ImageDetailData) {
	image := data.Image
	rows := []struct {
		Label string
		Value string
	}{
		{"Image ID", utoa(image.ID)},
		{"Filename", image.Filename},
		{"File path", orNull(image.FilePath)},
		{"MD5 checksum", image.MD5Checksum},
		{"Raw", yesNo(image.IsRaw)},
		{"Parent image", uintOrNull(image.ParentImageID)},
		{"Date taken", orNull(image.DateTaken)},
		{"Order in batch", intOrNull(image.OrderInBatch)},
		{"Pipeline version", orNull(image.PipelineVersion)},
		{"Flash missing", yesNo(image.FlashMissing)},
		{"Cropped", yesNo(image.Cropped)},
		{"Cropped date", orNull(image.CroppedDate)},
		{"Rotation degrees", itoa(image.RotationDegrees)},
		{"Rotated date", orNull(image.RotatedDate)},
		{"Embedded images", itoa(image.NumImages)},
		{"Last modified", image.LastModified},
	}
	b.WriteString(`      <section class="panel">
        <table class="detail-table">
          <tbody>
`)
	for _, row := range rows {
		b.WriteString(`            <tr><th>` + esc(row.Label) + `</th><td>` + esc(row.Value) + `</td></tr>
`)
	}
	b.WriteString(`          </tbody>
        </table>
        <a class="primary" href="/admin/images/` + utoa(image.ID) + `?edit=1">Edit</a>
      </section>
`)
}

func writeEditForm(b *strings.Builder, data ImageDetailData) {
	image := data.Image
	id := utoa(image.ID)
	dateTaken := draftText(data.Draft, "date_taken", strOr(image.DateTaken))
	orderInBatch := draftText(data.Draft, "order_in_batch", intOr(image.OrderInBatch))
	pipelineVersion := draftText(data.Draft, "pipeline_version", strOr(image.PipelineVersion))
	b.WriteString(`      <section class="panel">
        <form method="post" action="/admin/images/` + id + `" class="edit-form">
          <label>Raw
            <input type="checkbox" name="is_raw" value="1"` + checkedIf(draftFlag(data.Draft, "is_raw", image.IsRaw)) + `/>
          </label>
          <label>Date taken
            <input name="date_taken" placeholder="YYYY-MM-DDTHH:MM:SS" value="` + esc(dateTaken) + `"/>
          </label>
          <label>Order in batch
            <input name="order_in_batch" value="` + esc(orderInBatch) + `"/>
          </label>
          <label>Pipeline version
            <input name="pipeline_version" placeholder="vMAJOR.MINOR.PATCH" value="` + esc(pipelineVersion) + `"/>
          </label>
          <label>Flash missing
            <input type="checkbox" name="flash_missing" value="1"` + checkedIf(draftFlag(data.Draft, "flash_missing", image.FlashMissing)) + `/>
          </label>
          <label>Cropped
            <input type="checkbox" name="cropped" value="1"` + checkedIf(draftFlag(data.Draft, "cropped", image.Cropped)) + `/>
          </label>
          <button type="submit" class="primary">Save</button>
          <a href="/admin/images/` + id + `">Cancel</a>
        </form>
      </section>
`)
}

func checkedIf(checked bool) string {
	if checked {
		return ` checked`
	}
	return ""
}

func strOr(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func intOr(value *int) string {
	if value == nil {
		return ""
	}
	return itoa(*value)
}
