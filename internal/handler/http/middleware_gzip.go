package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's
// middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			logger.FromRequest(r).Err(err).Msg("invalid gzip body")
			utils.WriteError(w, app.MsgInvalidGzip, http.StatusBadRequest)
			return
		}

		body := &gzipBody{Reader: gzipReader, original: r.Body}
		defer body.release()

		r.Body = body
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// gzipBody returns its reader to the pool once, after the handler is done.
type gzipBody struct {
	*gzip.Reader
	original io.Closer
	once     sync.Once
}

func (b *gzipBody) Close() error {
	return b.original.Close()
}

func (b *gzipBody) release() {
	b.once.Do(func() {
		b.Reader.Close()
		gzipReaderPool.Put(b.Reader)
	})
}
