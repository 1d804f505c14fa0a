package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numerology/pkg/requestcontext"
)

func serve(t *testing.T, inbound string) (ctxID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestcontext.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(Header, inbound)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec
}

func TestMiddleware(t *testing.T) {
	t.Run("generates a UUID when absent", func(t *testing.T) {
		id, rec := serve(t, "")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Header().Get(Header))
	})

	t.Run("reuses a well-formed inbound ID", func(t *testing.T) {
		id, rec := serve(t, "edge-42")
		assert.Equal(t, "edge-42", id)
		assert.Equal(t, "edge-42", rec.Header().Get(Header))
	})

	t.Run("replaces oversized or unprintable IDs", func(t *testing.T) {
		id, _ := serve(t, strings.Repeat("a", 200))
		assert.Len(t, id, 36)

		id, _ = serve(t, "has space")
		assert.NotEqual(t, "has space", id)
	})
}
