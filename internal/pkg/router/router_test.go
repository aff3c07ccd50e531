package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type okResp struct {
	Value string `json:"value"`
}

func (okResp) Message() string { return "done" }

func newTestRouter() *Router {
	return NewRouter(Config{UUID: fixedID("cid-fixed"), Instrument: instrument.NewNoop(), MaskFields: []string{"password"}})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRouter_Success(t *testing.T) {
	// Arrange
	r := newTestRouter()
	r.POST("/echo", func(req *Request) (any, error) {
		var in struct {
			Value string `json:"value"`
		}
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		return okResp{Value: in.Value}, nil
	})
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":"x"}`))
	rec := httptest.NewRecorder()

	// Act
	r.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cid-fixed", rec.Header().Get(HeaderCorrelationID))
	body := decode(t, rec)
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, map[string]any{"value": "x"}, body["data"])
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		body       string
		wantStatus int
		wantMsg    string
		wantFields map[string]any
	}{
		{
			name:       "restricted",
			err:        goerror.NewRestricted("OTP request cooldown active! Please wait before requesting another OTP."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "OTP request cooldown active! Please wait before requesting another OTP.",
		},
		{
			name:       "validation",
			err:        goerror.NewInvalidInput(validator.V10ValidationError{"email": "email is a required field"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Validation error",
			wantFields: map[string]any{"email": "email is a required field"},
		},
		{
			name:       "server error hides cause",
			err:        goerror.NewServer(errors.New("dial tcp 10.0.0.1:6379: refused")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "plain error",
			err:        errors.New("raw"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			r.POST("/fail", func(*Request) (any, error) { return nil, tt.err })
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, body["error"])
			} else {
				assert.NotContains(t, body, "error")
			}
		})
	}
}

func TestRouter_DecodeBodyRejects(t *testing.T) {
	r := newTestRouter()
	r.POST("/echo", func(req *Request) (any, error) {
		var in struct {
			Value string `json:"value"`
		}
		return nil, req.DecodeBody(&in)
	})

	for _, payload := range []string{`{"value":"x","extra":1}`, `{"value":"x"}{}`, `not json`, ``} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}
}

func TestRouter_PanicRecovered(t *testing.T) {
	r := newTestRouter()
	r.GET("/panic", func(*Request) (any, error) { panic("boom") })
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["message"])
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	r := newTestRouter()
	r.POST("/only-post", func(*Request) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/only-post", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-post", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCorrelationID_FromHeader(t *testing.T) {
	r := newTestRouter()
	var seen string
	r.GET("/cid", func(req *Request) (any, error) {
		seen = instrument.GetCorrelationID(req.Context())
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/cid", nil)
	req.Header.Set(HeaderRequestID, "  upstream-id ")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get(HeaderCorrelationID))
}

func TestRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "10.0.0.9", realIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", realIP(req))

	req.Header.Set("X-Real-IP", "garbage")
	assert.Equal(t, "203.0.113.7", realIP(req))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "h") }), mw("a"), nil, mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "h"}, order)
}

func TestMaskedHeaders(t *testing.T) {
	h := http.Header{"Password": {"x"}, "Accept": {"json"}}

	out := maskedHeaders(h, instrument.MaskKeys([]string{"password"}))

	assert.Equal(t, "***", out.Get("Password"))
	assert.Equal(t, "json", out.Get("Accept"))
	assert.Equal(t, "x", h.Get("Password"))
}
