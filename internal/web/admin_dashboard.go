package web

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

func AdminDashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writePageStart(&b, "Dashboard")
		writeBanners(&b, data.Flash, "", data.Error)
		b.WriteString(`      <header class="hero">
        <h1>Archive dashboard</h1>
      </header>
      <section class="panel stats">
        <div class="stat">
          <span class="stat-value">` + strconv.FormatInt(data.ImageCount, 10) + `</span>
          <span class="stat-label">images</span>
        </div>
        <div class="stat">
          <span class="stat-value">` + strconv.FormatInt(data.PaintingCount, 10) + `</span>
          <span class="stat-label">paintings</span>
        </div>
      </section>
      <section class="panel">
        <h2>Recent activity</h2>
`)
		if len(data.RecentEvents) == 0 {
			b.WriteString(`        <p class="muted">No recorded activity yet.</p>
`)
		} else {
			b.WriteString(`        <table class="listing">
          <thead><tr><th>When</th><th>Event</th><th>Details</th></tr></thead>
          <tbody>
`)
			for _, event := range data.RecentEvents {
				b.WriteString(`            <tr><td>` + esc(event.CreatedAt) + `</td><td>` + esc(event.Type) + `</td><td><code>` + esc(string(event.Payload)) + `</code></td></tr>
`)
			}
			b.WriteString(`          </tbody>
        </table>
`)
		}
		b.WriteString(`      </section>
`)
		writePageEnd(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
