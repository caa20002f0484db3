package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoid-microservice/internal/delivery/http/handler"
	"github.com/geoid-microservice/internal/metrics"
	"github.com/geoid-microservice/internal/usecase"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(batchLimit int) *fiber.App {
	uc := usecase.NewGeoUseCase(nil, 10, metrics.SourceHTTP, zap.NewNop())
	h := handler.NewGeoHandler(uc, batchLimit, zap.NewNop())
	sh := handler.NewStatsHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Post("/geo/resolve", h.Resolve)
	app.Post("/batch/geo/resolve", h.BatchResolve)
	app.Get("/geo/levels", h.ListLevels)
	app.Get("/geo/levels/:level/entries", h.ListEntries)
	app.Get("/geo/levels/:level/ids/:id", h.NameByID)
	app.Get("/geo/ids/:id", h.DescribeID)
	app.Get("/geo/search", h.Search)
	app.Get("/stats", sh.GetStatistics)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestGeoHandler_Resolve(t *testing.T) {
	app := newTestApp(100)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantID     int
		wantFound  bool
		wantCode   string
	}{
		{
			name:       "commune hit",
			body:       `{"level":"commune","filters":{"commune":"Lyon"}}`,
			wantStatus: http.StatusOK,
			wantID:     10021,
			wantFound:  true,
		},
		{
			name:       "department with code prefix",
			body:       `{"level":"departement","filters":{"departement":"75 - Paris"}}`,
			wantStatus: http.StatusOK,
			wantID:     2075,
			wantFound:  true,
		},
		{
			name:       "case mismatch falls back to zero",
			body:       `{"level":"region","filters":{"region":"bretagne"}}`,
			wantStatus: http.StatusOK,
			wantID:     0,
			wantFound:  false,
		},
		{
			name:       "country",
			body:       `{"level":"pays","filters":{"pays":"Anything"}}`,
			wantStatus: http.StatusOK,
			wantID:     0,
			wantFound:  true,
		},
		{
			name:       "unknown level",
			body:       `{"level":"canton","filters":{}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "missing level",
			body:       `{"filters":{"commune":"Lyon"}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "malformed body",
			body:       `{"level":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, http.MethodPost, "/geo/resolve", tt.body)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}

			var data struct {
				ID    int  `json:"id"`
				Found bool `json:"found"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.wantID, data.ID)
			assert.Equal(t, tt.wantFound, data.Found)
		})
	}
}

func TestGeoHandler_BatchResolve(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		app := newTestApp(100)
		body := `{"items":[
			{"level":"commune","filters":{"commune":"Nice"}},
			{"level":"intercommunalite","filters":{"intercommunalite":"Métropole Nice Côte d'Azur"}},
			{"level":"commune","filters":{"commune":"Atlantis"}}
		]}`

		status, env := doRequest(t, app, http.MethodPost, "/batch/geo/resolve", body)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Results []struct {
				ID    int  `json:"id"`
				Found bool `json:"found"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Results, 3)
		assert.Equal(t, 10053, data.Results[0].ID)
		assert.Equal(t, 3007, data.Results[1].ID)
		assert.False(t, data.Results[2].Found)
		assert.EqualValues(t, 3, env.Meta["total"])
	})

	t.Run("empty items", func(t *testing.T) {
		app := newTestApp(100)
		status, env := doRequest(t, app, http.MethodPost, "/batch/geo/resolve", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
	})

	t.Run("configured limit", func(t *testing.T) {
		app := newTestApp(1)
		body := `{"items":[{"level":"pays"},{"level":"pays"}]}`
		status, env := doRequest(t, app, http.MethodPost, "/batch/geo/resolve", body)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.EqualValues(t, 1, env.Error.Details["limit"])
	})
}

func TestGeoHandler_Lookups(t *testing.T) {
	app := newTestApp(100)

	t.Run("entries", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels/region/entries", "")
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 13, env.Meta["total"])
	})

	t.Run("entries unknown level", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels/canton/entries", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_LEVEL", env.Error.Code)
	})

	t.Run("name by id", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels/departement/ids/2097", "")
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "2B - Haute-Corse", data.Name)
	})

	t.Run("name by id not found", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels/departement/ids/2020", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "IDENTIFIER_NOT_FOUND", env.Error.Code)
	})

	t.Run("name by non-numeric id", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels/region/ids/abc", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_IDENTIFIER", env.Error.Code)
	})

	t.Run("describe id", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/ids/1002", "")
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Level string `json:"level"`
			Name  string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "region", data.Level)
		assert.Equal(t, "Bretagne", data.Name)
	})

	t.Run("describe id outside bands", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/ids/5000", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_IDENTIFIER", env.Error.Code)
	})

	t.Run("levels", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/geo/levels", "")
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), "intercommunalite")
	})
}

func TestGeoHandler_Search(t *testing.T) {
	app := newTestApp(100)

	status, env := doRequest(t, app, http.MethodGet, "/geo/search?level=region&q=ile", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Île-de-France")

	status, env = doRequest(t, app, http.MethodGet, "/geo/search?level=pays&q=fr", "")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)

	status, _ = doRequest(t, app, http.MethodGet, "/geo/search?level=commune", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStatsHandler_GetStatistics(t *testing.T) {
	app := newTestApp(100)

	status, env := doRequest(t, app, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Catalog struct {
			Communes int `json:"communes"`
		} `json:"catalog"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 72, data.Catalog.Communes)
}
