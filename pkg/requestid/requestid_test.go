package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/nip/validate", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		assert.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, respID)
	})

	t.Run("keeps valid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
			ctxID, respID := serve(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, respID)
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"a b", "id@host", "<script>", strings.Repeat("x", 129)} {
			ctxID, respID := serve(t, id)
			assert.NotEqual(t, id, ctxID)
			assert.NotEmpty(t, respID)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "req-1", requestid.FromContext(requestid.WithContext(context.Background(), "req-1")))
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.Extractor()),
	)

	log.InfoContext(context.Background(), "without id")
	assert.NotContains(t, buf.String(), "request_id")

	buf.Reset()
	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "with id")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
