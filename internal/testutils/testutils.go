package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestLogger логгер, пишущий в вывод теста
func TestLogger(t *testing.T) *logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}

// SetupTestRouter возвращает пустой gin engine в тестовом режиме
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MakeRequest sends one request through router. A string body is sent as is, any other
// non-nil body is encoded as JSON.
func MakeRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		payload = bytes.NewBufferString(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, path, payload)
	if payload != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

// ParseResponse декодирует JSON тело ответа в dst
func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), dst), "body: %s", resp.Body.String())
}

// RequireHTTPStatus проверяет код ответа
func RequireHTTPStatus(t *testing.T, resp *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, resp.Code, "body: %s", resp.Body.String())
}

// RequireMessage checks a {"mensagem": ...} body
func RequireMessage(t *testing.T, resp *httptest.ResponseRecorder, message string) {
	t.Helper()
	var body struct {
		Mensagem string `json:"mensagem"`
	}
	ParseResponse(t, resp, &body)
	require.Equal(t, message, body.Mensagem)
}
