package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminIngest(data IngestData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageStart(&b, "Ingest")
		writeBanners(&b, data.Flash, "", data.Error)
		b.WriteString(`      <header class="hero">
        <h1>Ingest raw captures</h1>
        <p>` + itoa(data.FileCount) + ` candidate ` + esc(data.Extension) + ` file(s) in the default folder.</p>
      </header>
      <section class="panel">
        <form method="post" action="/admin/ingest" class="ingest-form">
          <label>Folder
            <input name="folder" value="` + esc(data.Folder) + `" required/>
          </label>
          <button type="submit" class="primary">Run ingestion</button>
        </form>
      </section>
`)
		writePageEnd(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
