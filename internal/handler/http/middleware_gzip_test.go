package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZipRequest(t *testing.T) {
	const payload = `{"email":"a@x.com","password":"secret1"}`

	tests := []struct {
		name        string
		body        []byte
		encoding    string
		wantStatus  int
		wantBody    string
		wantNextHit bool
	}{
		{name: "plain body passes through", body: []byte(payload), wantStatus: http.StatusOK, wantBody: payload, wantNextHit: true},
		{name: "gzip body is decoded", body: gzipped(t, payload), encoding: "gzip", wantStatus: http.StatusOK, wantBody: payload, wantNextHit: true},
		{name: "encoding list with gzip", body: gzipped(t, payload), encoding: "identity, gzip", wantStatus: http.StatusOK, wantBody: payload, wantNextHit: true},
		{name: "corrupt gzip", body: []byte("definitely not gzip"), encoding: "gzip", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody string
			var gotEncoding string
			nextHit := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextHit = true
				gotEncoding = r.Header.Get("Content-Encoding")
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rr := httptest.NewRecorder()
			withGZipRequest(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextHit, nextHit)
			if tt.wantNextHit {
				assert.Equal(t, tt.wantBody, gotBody)
				assert.Empty(t, gotEncoding)
			} else {
				assert.True(t, strings.Contains(rr.Body.String(), "invalid gzip data"))
			}
		})
	}
}
