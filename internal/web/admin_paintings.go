package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminPaintings(data PaintingListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageStart(&b, "Paintings")
		writeBanners(&b, data.Flash, data.Notice, data.Error)
		b.WriteString(`      <header class="hero">
        <h1>Paintings</h1>
      </header>
      <section class="panel">
`)
		if len(data.Paintings) > 0 {
			b.WriteString(`        <table class="listing">
          <thead>
            <tr><th>ID</th><th>Name</th><th>Year</th><th>Favourite</th><th>Images</th><th>Rating</th></tr>
          </thead>
          <tbody>
`)
			for _, painting := range data.Paintings {
				rating := nullPlaceholder
				if painting.RatingCount > 0 {
					rating = fmt.Sprintf("%.1f (%d)", painting.AverageScore, painting.RatingCount)
				}
				b.WriteString(`            <tr>
              <td>` + utoa(painting.ID) + `</td>
              <td>` + esc(orNull(painting.Name)) + `</td>
              <td>` + esc(paintingYear(painting.ExplicitYear, painting.InferredYear)) + `</td>
              <td>` + yesNo(painting.PersonalFavourite) + `</td>
              <td>` + itoa(int(painting.ImageCount)) + `</td>
              <td>` + esc(rating) + `</td>
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

// paintingYear prefers the explicit creation year; an inferred year is
// marked as such.
func paintingYear(explicit, inferred *int) string {
	if explicit != nil {
		return itoa(*explicit)
	}
	if inferred != nil {
		return "~" + itoa(*inferred)
	}
	return nullPlaceholder
}
