package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// CacheHeader reports whether a response was served from the cache.
const CacheHeader = "X-Cache"

// snapshot is a stored catalog response.
type snapshot struct {
	status int
	header http.Header
	body   []byte
}

// teeWriter copies everything written to the client into buf.
type teeWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w teeWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// NewCacheStore creates the in-memory store backing Cache.
func NewCacheStore(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}

// Cache serves repeated GET requests from store. Only 2xx responses are
// kept; the key is the full request URI, query string included.
func Cache(store *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if v, ok := store.Get(key); ok {
			replay(c, v.(snapshot))
			c.Abort()
			return
		}

		c.Writer.Header().Set(CacheHeader, "MISS")
		tw := &teeWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = tw
		c.Next()

		if status := tw.Status(); status >= 200 && status < 300 {
			header := tw.Header().Clone()
			header.Del(CacheHeader)
			store.Set(key, snapshot{status: status, header: header, body: tw.buf.Bytes()}, ttl)
		}
	}
}

func replay(c *gin.Context, s snapshot) {
	h := c.Writer.Header()
	for k, v := range s.header {
		h[k] = v
	}
	h.Set(CacheHeader, "HIT")
	c.Writer.WriteHeader(s.status)
	_, _ = c.Writer.Write(s.body)
}
