package entry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/entries/:mode", NewHandler(f.service).Submit)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Submit(t *testing.T) {
	f := newFixture(t)
	f.registerPromotion(t, "Summer Splash", "2021-08-27 13:00:00", 7)
	r := newRouter(f)

	w := post(r, "/api/entries/winning-moment", `{
		"entrant_name": "Ana",
		"entrant_email": "ana@example.com",
		"promo_name": "Summer Splash",
		"winning_moment": "2021-08-27T13:00:00"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"entrant_name":   "Ana",
		"promotion_name": "Summer Splash",
		"winning_moment": "2021-08-27 13:00:00",
		"chance":         nil,
		"is_winner":      true,
	}, body)
}

func TestHandler_Errors(t *testing.T) {
	f := newFixture(t)
	f.registerPromotion(t, "Summer Splash", "2021-08-27 13:00:00", 7)
	r := newRouter(f)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"unknown mode", "/api/entries/lottery", `{}`, http.StatusNotFound, "Evaluation mode lottery does not exist."},
		{"empty body", "/api/entries/chance", ``, http.StatusBadRequest, "Value for entrant_name is not defined."},
		{"chance as string", "/api/entries/chance", `{"chance": "7"}`, http.StatusBadRequest,
			"Value for chance is not in the expected integer format."},
		{"malformed json", "/api/entries/chance", `{"entrant_name":`, http.StatusBadRequest, "Request body is not valid JSON."},
		{"unknown promotion", "/api/entries/chance",
			`{"entrant_name":"Ana","entrant_email":"ana@example.com","promo_name":"Winter","chance":7}`,
			http.StatusNotFound, "The promotion name Winter does not exist."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"error":`+jsonString(tt.msg)+`}`, w.Body.String())
		})
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
