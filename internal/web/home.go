package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func Home(flash string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Watercolour Archive</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
`)
		writeBanners(&b, flash, "", "")
		b.WriteString(`      <header class="hero">
        <span class="tag">Watercolour Archive</span>
        <h1>A catalogue of scanned paintings.</h1>
        <p>Browse the image records, processing lineage and ratings of the collection.</p>
      </header>

      <section class="panel">
        <div>
          <h2>Admin</h2>
          <p>List, filter and edit the archive's image metadata.</p>
        </div>
        <a class="primary" href="/admin">Open admin panel</a>
      </section>
    </main>
  </body>
</html>
`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
