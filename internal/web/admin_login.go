package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminLogin(flash string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Admin login · Watercolour Archive</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
`)
		writeBanners(&b, flash, "", "")
		b.WriteString(`      <section class="panel">
        <h1>Admin login</h1>
        <form method="post" action="/admin/login" class="login-form">
          <input type="password" name="password" placeholder="Password" autocomplete="current-password" required/>
          <button type="submit" class="primary">Log in</button>
        </form>
      </section>
    </main>
  </body>
</html>
`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
