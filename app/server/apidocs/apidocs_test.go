package apidocs

import (
	"context"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSpecValidates(t *testing.T) {
	swg := Spec()
	if err := swg.Validate(context.Background()); err != nil {
		t.Fatalf("generated spec is invalid: %v", err)
	}

	for _, p := range []string{"/", "/post", "/post/pdf", "/create", "/edit", "/delete", "/register", "/login", "/logout", "/healthz"} {
		if swg.Paths.Value(p) == nil {
			t.Errorf("path %s missing from spec", p)
		}
	}

	if op := swg.Paths.Value("/edit").Post; op == nil || op.RequestBody == nil {
		t.Errorf("POST /edit should describe a form body")
	}
}

func newDocServer(t *testing.T, opts ...Opts) *echo.Echo {
	t.Helper()

	mw, err := Doc("/api/docs", Spec(), opts...)
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}

	e := echo.New()
	e.Pre(mw)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "home")
	})
	return e
}

func TestDoc(t *testing.T) {
	e := newDocServer(t, WithServerURL("https://blog.example.com"))

	tests := []struct {
		path   string
		status int
	}{
		{"/api/docs", http.StatusFound},
		{"/api/docs/apidocs", http.StatusOK},
		{"/api/docs/apispec.json", http.StatusOK},
		{"/", http.StatusOK},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("GET %s: got %d, want %d", tt.path, rec.Code, tt.status)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/apispec.json", nil))

	var doc struct {
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode spec: %v", err)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "https://blog.example.com" {
		t.Errorf("servers = %+v", doc.Servers)
	}
}
