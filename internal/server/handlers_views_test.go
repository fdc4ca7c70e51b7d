package server

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watercolour-archive/internal/db"
)

func TestHomePage(t *testing.T) {
	_, ts := newImageTestServer(t)
	client := newTestClient(t)

	status, body := getBody(t, client, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, "Watercolour Archive") {
		t.Fatal("expected home page heading")
	}
	if !strings.Contains(body, `href="/admin"`) {
		t.Fatal("expected link to the admin panel")
	}
}

func TestDashboardShowsCountsAndActivity(t *testing.T) {
	srv, ts := newImageTestServer(t)
	seedImage(t, srv.db, db.Image{
		Filename:    "_DSC0001.NEF",
		MD5Checksum: "abcdef1234567890abcdef1234567890",
		IsRaw:       true,
	})
	painting := db.Painting{Name: strPtr("Harbour at dusk")}
	if err := db.InsertPainting(srv.db, &painting); err != nil {
		t.Fatalf("seed painting: %v", err)
	}
	if err := db.RecordEvent(srv.db, "ingest_completed", map[string]any{"inserted": 1}); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	client := newTestClient(t)

	status, body := getBody(t, client, ts.URL+"/admin")
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, `<span class="stat-value">1</span>`) {
		t.Fatal("expected archive counts on the dashboard")
	}
	if !strings.Contains(body, "ingest_completed") {
		t.Fatal("expected recent activity row")
	}
}

func TestPaintingListRendersAggregates(t *testing.T) {
	srv, ts := newImageTestServer(t)
	painting := db.Painting{Name: strPtr("Harbour at dusk"), ExplicitYear: intPtr(2024)}
	if err := db.InsertPainting(srv.db, &painting); err != nil {
		t.Fatalf("seed painting: %v", err)
	}
	image := seedImage(t, srv.db, db.Image{
		Filename:    "_DSC0042.NEF",
		MD5Checksum: "78787878787878787878787878787878",
		IsRaw:       true,
	})
	if err := db.LinkPaintingImage(srv.db, painting.ID, image.ID); err != nil {
		t.Fatalf("link painting: %v", err)
	}
	rating := db.Rating{PaintingID: painting.ID, ImageID: image.ID, Score: 4, User: strPtr("me")}
	if err := db.InsertRating(srv.db, &rating); err != nil {
		t.Fatalf("seed rating: %v", err)
	}
	client := newTestClient(t)

	status, body := getBody(t, client, ts.URL+"/admin/paintings")
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, "Harbour at dusk") {
		t.Fatal("expected painting row")
	}
	if !strings.Contains(body, "<td>2024</td>") {
		t.Fatal("expected explicit year")
	}
	if !strings.Contains(body, "4.0 (1)") {
		t.Fatal("expected average rating")
	}
}

func TestPaintingListEmptyNotice(t *testing.T) {
	_, ts := newImageTestServer(t)
	client := newTestClient(t)

	_, body := getBody(t, client, ts.URL+"/admin/paintings")
	if !strings.Contains(body, "No paintings found in the database.") {
		t.Fatal("expected empty-state notice")
	}
}

func TestIngestRejectsInvalidFolder(t *testing.T) {
	_, ts := newImageTestServer(t)
	client := newTestClient(t)

	resp, err := client.PostForm(ts.URL+"/admin/ingest", url.Values{"folder": {"/does/not/exist"}})
	if err != nil {
		t.Fatalf("post ingest: %v", err)
	}
	body := readBody(t, resp)
	if resp.Request.URL.Path != "/admin/ingest" {
		t.Fatalf("expected to land back on the ingest form, got %s", resp.Request.URL.Path)
	}
	if !strings.Contains(body, "Invalid folder.") {
		t.Fatal("expected invalid-folder flash")
	}
}

func TestIngestRunsOverFolder(t *testing.T) {
	srv, ts := newImageTestServer(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "_DSC0001.NEF"), []byte("raw capture bytes"), 0o644); err != nil {
		t.Fatalf("stage capture: %v", err)
	}
	client := newTestClient(t)

	resp, err := client.PostForm(ts.URL+"/admin/ingest", url.Values{"folder": {dir}})
	if err != nil {
		t.Fatalf("post ingest: %v", err)
	}
	body := readBody(t, resp)
	if resp.Request.URL.Path != "/admin" {
		t.Fatalf("expected to land on the dashboard, got %s", resp.Request.URL.Path)
	}
	if !strings.Contains(body, "Ingestion completed: scanned=1 inserted=1 duplicates=0 paths=1") {
		t.Fatal("expected completion flash with stats")
	}

	total, err := db.CountImages(srv.db)
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 catalogued image, got %d", total)
	}
}
