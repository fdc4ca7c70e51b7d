package web

import "strings"

func writePageStart(b *strings.Builder, title string) {
	b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
	b.WriteString(esc(title))
	b.WriteString(` · Watercolour Archive</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <nav class="topnav">
        <a href="/">Home</a>
        <a href="/admin">Dashboard</a>
        <a href="/admin/images">Images</a>
        <a href="/admin/paintings">Paintings</a>
        <a href="/admin/ingest">Ingest</a>
        <a href="/admin/logout">Log out</a>
      </nav>
`)
}

func writePageEnd(b *strings.Builder) {
	b.WriteString(`    </main>
  </body>
</html>
`)
}

func writeBanners(b *strings.Builder, flash, notice, errMsg string) {
	if flash != "" {
		b.WriteString(`      <div class="banner flash">` + esc(flash) + `</div>
`)
	}
	if notice != "" {
		b.WriteString(`      <div class="banner notice">` + esc(notice) + `</div>
`)
	}
	if errMsg != "" {
		b.WriteString(`      <div class="banner error">` + esc(errMsg) + `</div>
`)
	}
}
