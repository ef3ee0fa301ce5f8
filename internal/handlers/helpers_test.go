package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ShoppingList/internal/handlers"
	"ShoppingList/internal/repo"
	"ShoppingList/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, db *repo.Database) http.Handler {
	t.Helper()
	return newRouterWithLogger(t, db, zap.NewNop().Sugar())
}

func newRouterWithLogger(t *testing.T, db *repo.Database, logger *zap.SugaredLogger) http.Handler {
	t.Helper()
	h := handlers.NewHandler(
		service.NewStoreService(db, logger),
		service.NewItemService(db, logger),
		db,
		logger,
	)
	return h.Router
}

// newTestRouter поднимает роутер поверх SQLite в памяти.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newRouter(t, newTestDB(t))
}

func newTestDB(t *testing.T) *repo.Database {
	t.Helper()
	db, err := repo.OpenSQLite("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &l), rr.Body.String())
	return l
}

// createStore создаёт магазин через API и возвращает его id.
func createStore(t *testing.T, h http.Handler, body string) float64 {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/stores", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decodeMap(t, rr)["id"].(float64)
}

func doJSONWithOrigin(t *testing.T, h http.Handler, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Origin", origin)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
