package handlers_test

import (
	"net/http"
	"testing"

	"ShoppingList/internal/repo"

	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		rr := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "healthy", decodeMap(t, rr)["status"], path)
	}

	rr := doJSON(t, router, http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Shopping List API", decodeMap(t, rr)["message"])

	rr = doJSON(t, router, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ready", decodeMap(t, rr)["status"])
}

// Без DATABASE_URL пробы живости работают, а ресурсы отвечают 503.
func TestUnconfiguredDatabase(t *testing.T) {
	router := newRouter(t, repo.Unconfigured())

	rr := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/stores", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, "UNAVAILABLE", body["code"])
	assert.Equal(t, "DATABASE_URL environment variable is not set", body["detail"])

	rr = doJSON(t, router, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = doJSON(t, router, http.MethodPut, "/api/stores", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestCORSHeadersOnAPI(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSONWithOrigin(t, router, "http://localhost:8081")
	assert.Equal(t, "http://localhost:8081", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}
