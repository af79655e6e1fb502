package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/microservices/catalog/handlers"
	"kitchen-pos/internal/microservices/catalog/service"
	"kitchen-pos/internal/repository/memory"
)

func newMux() *http.ServeMux {
	log := logger.New("test", logger.WithOutput(&bytes.Buffer{}))
	svc := service.New(service.Deps{Tx: memory.New(), Log: log})
	mux := http.NewServeMux()
	handlers.New(svc, log).Register(mux)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCatalogFlow(t *testing.T) {
	mux := newMux()

	rec := do(t, mux, http.MethodPost, "/api/products", `{"name":"Chicken","price":16000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/products/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"name":"Chicken","price":16000}`, rec.Body.String())

	rec = do(t, mux, http.MethodPost, "/api/menu-groups", `{"name":"Chicken"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/menus",
		`{"name":"Fried","price":"19000","menuGroupId":1,"menuProducts":[{"productId":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var menu map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menu))
	assert.Equal(t, float64(19000), menu["price"])

	rec = do(t, mux, http.MethodGet, "/api/menus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var menus []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menus))
	assert.Len(t, menus, 1)
}

func TestCatalogErrors(t *testing.T) {
	mux := newMux()
	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/api/products", `{"name":"Chicken","price":16000}`).Code)
	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/api/menu-groups", `{"name":"Chicken"}`).Code)

	tests := []struct {
		name string
		path string
		body string
		code int
		typ  string
	}{
		{"malformed body", "/api/products", `{"name":`, http.StatusBadRequest, "validation"},
		{"negative product price", "/api/products", `{"name":"x","price":-1}`, http.StatusBadRequest, "validation"},
		{"menu above component total", "/api/menus",
			`{"name":"x","price":32001,"menuGroupId":1,"menuProducts":[{"productId":1,"quantity":2}]}`,
			http.StatusBadRequest, "validation"},
		{"menu with unknown product", "/api/menus",
			`{"name":"x","price":1,"menuGroupId":1,"menuProducts":[{"productId":9,"quantity":1}]}`,
			http.StatusBadRequest, "reference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)
			var problem map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.typ, problem["type"])
		})
	}

	rec := do(t, mux, http.MethodGet, "/api/menus", "")
	assert.Equal(t, "[]\n", rec.Body.String())
}
