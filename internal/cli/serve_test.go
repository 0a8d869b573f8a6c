package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jsonapi/pkg/cache"
	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/httpapi"
	"github.com/matzehuels/jsonapi/pkg/query"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ds, err := loadDataset(writeTempDataset(t, blogDataset))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(newRouter(ds, newLogger(io.Discard, log.FatalLevel), nil, 0))
	t.Cleanup(srv.Close)
	return srv
}

func getDocument(t *testing.T, url string) (int, *doc.Document[doc.Object]) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != httpapi.ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, httpapi.ContentType)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	d, err := doc.Decode[doc.Object](body)
	if err != nil {
		t.Fatalf("response is not a valid document: %v\n%s", err, body)
	}
	return resp.StatusCode, d
}

func TestServeResource(t *testing.T) {
	srv := testServer(t)

	status, d := getDocument(t, srv.URL+"/articles/1?include=author")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	obj, ok := d.Data.One()
	if !ok {
		t.Fatal("expected a single resource")
	}
	if obj.ID != "1" || obj.Kind.String() != "articles" {
		t.Errorf("got %s/%s, want articles/1", obj.Kind, obj.ID)
	}
	if d.Included.Len() != 1 {
		t.Errorf("included %d resources, want 1", d.Included.Len())
	}
}

func TestServeCollection(t *testing.T) {
	srv := testServer(t)

	status, d := getDocument(t, srv.URL+"/comments")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !d.Data.IsMany() || len(d.Data.Many()) != 1 {
		t.Errorf("expected a collection of 1 resource")
	}
}

func TestServeCollectionPagination(t *testing.T) {
	srv := testServer(t)

	// blogDataset holds a single article, so page 2 of size 1 is empty.
	status, d := getDocument(t, srv.URL+"/articles?page%5Bnumber%5D=2&page%5Bsize%5D=1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got := len(d.Data.Many()); got != 0 {
		t.Errorf("page past the end returned %d resources, want 0", got)
	}

	status, d = getDocument(t, srv.URL+"/articles?page%5Bsize%5D=1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got := len(d.Data.Many()); got != 1 {
		t.Errorf("first page returned %d resources, want 1", got)
	}
}

func TestApplyPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		page *query.Page
		want []int
	}{
		{"nil page", nil, []int{1, 2, 3, 4, 5}},
		{"no size", query.NewPage(3, 0), []int{1, 2, 3, 4, 5}},
		{"first page", query.NewPage(1, 2), []int{1, 2}},
		{"middle page", query.NewPage(2, 2), []int{3, 4}},
		{"short last page", query.NewPage(3, 2), []int{5}},
		{"past the end", query.NewPage(4, 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyPage(items, tt.page)
			if len(got) != len(tt.want) {
				t.Fatalf("applyPage returned %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("applyPage returned %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestServeUnknownResource(t *testing.T) {
	srv := testServer(t)

	status, d := getDocument(t, srv.URL+"/articles/404")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if !d.IsErr() {
		t.Error("expected an error document")
	}
}

func TestServeBadQuery(t *testing.T) {
	srv := testServer(t)

	status, d := getDocument(t, srv.URL+"/articles/1?fields=title")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if !d.IsErr() {
		t.Error("expected an error document")
	}
}

func TestServeRelationship(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/articles/1/relationships/comments")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	d, err := doc.Decode[doc.Identifier](body)
	if err != nil {
		t.Fatalf("response is not a linkage document: %v\n%s", err, body)
	}
	idents := d.Data.Many()
	if len(idents) != 1 || idents[0].ID != "5" {
		t.Errorf("unexpected linkage: %s", body)
	}
}

func TestServeUnknownRelationship(t *testing.T) {
	srv := testServer(t)

	status, _ := getDocument(t, srv.URL+"/articles/1/relationships/tags")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestServeResponseCache(t *testing.T) {
	ds, err := loadDataset(writeTempDataset(t, blogDataset))
	if err != nil {
		t.Fatal(err)
	}
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	srv := httptest.NewServer(newRouter(ds, newLogger(io.Discard, log.FatalLevel), c, time.Hour))
	defer srv.Close()

	// First request populates the cache; the second is served from it.
	// Both must carry the same valid document.
	var bodies [2]string
	for i := range bodies {
		status, d := getDocument(t, srv.URL+"/articles/1?include=author")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		encoded, err := json.Marshal(d)
		if err != nil {
			t.Fatal(err)
		}
		bodies[i] = string(encoded)
	}
	if bodies[0] != bodies[1] {
		t.Errorf("cached response differs:\n%s\n%s", bodies[0], bodies[1])
	}

	// Error responses are not cached.
	if status, _ := getDocument(t, srv.URL+"/articles/404"); status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	key := cache.NewDefaultKeyer().ResponseKey("/articles/404", "")
	if _, ok, _ := c.Get(context.Background(), key); ok {
		t.Error("404 responses should not be cached")
	}
}
