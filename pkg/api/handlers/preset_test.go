package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/touchpoint/ent/enttest"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/preset"

	_ "github.com/mattn/go-sqlite3"
)

func newPresetHandler(t *testing.T) *PresetHandler {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	return NewPresetHandler(preset.NewService(client, nil, audit.NewService(client)))
}

func TestPresetHandler_Create(t *testing.T) {
	h := newPresetHandler(t)
	e := echo.New()

	t.Run("Success - valid preset", func(t *testing.T) {
		body := `{"name":"Welcome","steps":[{"method":"call","interval_days":0,"assignee_rule":"entity_owner"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/presets", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("X-Actor-ID", "7")
		rec := httptest.NewRecorder()

		err := h.Create(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Welcome"`)
	})

	t.Run("Error - missing name", func(t *testing.T) {
		body := `{"steps":[{"method":"call","interval_days":0}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/presets", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Create(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_error")
	})

	t.Run("Error - empty step list", func(t *testing.T) {
		body := `{"name":"Hollow","steps":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/presets", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Create(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPresetHandler_Get(t *testing.T) {
	h := newPresetHandler(t)
	e := echo.New()

	t.Run("Error - non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_id")
	})

	t.Run("Error - not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")

		err := h.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestActorID(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{"valid id", "42", 42},
		{"missing header", "", 0},
		{"non-numeric", "nope", 0},
		{"negative", "-3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Actor-ID", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, actorID(c))
		})
	}
}
