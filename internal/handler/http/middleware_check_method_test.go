package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered method", method: http.MethodPost, path: "/api/v1/auth/login", wantStatus: http.StatusOK},
		{name: "GET on POST route", method: http.MethodGet, path: "/api/v1/auth/login", wantStatus: http.StatusNotFound},
		{name: "DELETE on POST route", method: http.MethodDelete, path: "/api/v1/auth/login", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"message":"not found"}`, rr.Body.String())
			}
		})
	}
}
