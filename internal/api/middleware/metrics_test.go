package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestMetricsCollector_CountsRequestsAndErrors(t *testing.T) {
	var requests, errors atomic.Int64
	mc := NewMetricsCollector(&requests, &errors)

	status := http.StatusOK
	handler := mc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/query", nil)

	handler.ServeHTTP(httptest.NewRecorder(), req)
	status = http.StatusNotFound
	handler.ServeHTTP(httptest.NewRecorder(), req)
	status = http.StatusInternalServerError
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got := requests.Load(); got != 3 {
		t.Errorf("expected 3 requests counted, got %d", got)
	}
	if got := errors.Load(); got != 2 {
		t.Errorf("expected 2 errors counted, got %d", got)
	}
}
