package pos_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/app/pos"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/repository/memory"
)

type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) Publish(_ context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, ev.Type)
	return nil
}

type client struct {
	t *testing.T
	h http.Handler
}

func (c client) call(method, path, body string) (int, map[string]any) {
	c.t.Helper()
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var out map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func TestRouter_DiningFlow(t *testing.T) {
	events := &recorder{}
	c := client{t: t, h: pos.NewRouter(memory.New(), events, logger.New("test", logger.WithOutput(&bytes.Buffer{})))}

	code, _ := c.call(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = c.call(http.MethodPost, "/api/products", `{"name":"Fried chicken","price":16000}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = c.call(http.MethodPost, "/api/menu-groups", `{"name":"Chicken"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = c.call(http.MethodPost, "/api/menus",
		`{"name":"Fried chicken","price":16000,"menuGroupId":1,"menuProducts":[{"productId":1,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, code)

	code, _ = c.call(http.MethodPost, "/api/tables", `{"numberOfGuests":0,"empty":true}`)
	require.Equal(t, http.StatusCreated, code)

	code, body := c.call(http.MethodPost, "/api/orders", `{"orderTableId":1,"orderLineItems":[{"menuId":1,"quantity":1}]}`)
	require.Equal(t, http.StatusConflict, code, "empty table takes no orders")
	assert.Equal(t, "conflict", body["type"])

	code, _ = c.call(http.MethodPut, "/api/tables/1/empty", `{"empty":false}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = c.call(http.MethodPut, "/api/tables/1/number-of-guests", `{"numberOfGuests":3}`)
	require.Equal(t, http.StatusOK, code)

	code, body = c.call(http.MethodPost, "/api/orders", `{"orderTableId":1,"orderLineItems":[{"menuId":1,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "COOKING", body["orderStatus"])

	code, _ = c.call(http.MethodPut, "/api/tables/1/empty", `{"empty":true}`)
	assert.Equal(t, http.StatusConflict, code, "cooking order blocks release")

	code, _ = c.call(http.MethodPut, "/api/orders/1/order-status", `{"orderStatus":"MEAL"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = c.call(http.MethodPut, "/api/tables/1/empty", `{"empty":true}`)
	assert.Equal(t, http.StatusConflict, code, "meal blocks release")

	code, body = c.call(http.MethodPut, "/api/orders/1/order-status", `{"orderStatus":"COMPLETION"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "COMPLETION", body["orderStatus"])

	code, _ = c.call(http.MethodPut, "/api/orders/1/order-status", `{"orderStatus":"MEAL"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body = c.call(http.MethodPut, "/api/tables/1/empty", `{"empty":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["empty"])

	assert.Equal(t, []string{
		domain.EventProductCreated,
		domain.EventMenuGroupCreated,
		domain.EventMenuCreated,
		domain.EventTableCreated,
		domain.EventTableEmptyChanged,
		domain.EventTableGuestsChanged,
		domain.EventOrderCreated,
		domain.EventOrderStatusChanged,
		domain.EventOrderStatusChanged,
		domain.EventTableEmptyChanged,
	}, events.types)
}

func TestRouter_RequestID(t *testing.T) {
	h := pos.NewRouter(memory.New(), domain.NopPublisher{}, logger.New("test", logger.WithOutput(&bytes.Buffer{})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
