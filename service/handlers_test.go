package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/potfield/config"
	"github.com/katalvlaran/potfield/internal/telemetry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Field.Size = 32
	cfg.Field.Complexity = 2
	cfg.Field.Seed = 5
	cfg.Server.MaxFields = 2
	cfg.Server.MaxSize = 64
	cfg.Search.MaxIterations = 500
	return cfg
}

func setupTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	svc, err := New(testConfig(), telemetry.Discard())
	require.NoError(t, err)
	return NewRouter(svc), svc
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int { return &v }

func createField(t *testing.T, r http.Handler, body any) FieldResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/v1/fields", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp FieldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandlers_Regenerate(t *testing.T) {
	r, svc := setupTestRouter(t)
	resp := createField(t, r, nil)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 32, resp.Size)
	assert.Equal(t, 2, resp.Complexity)
	assert.Equal(t, uint64(5), resp.Seed)
	sess, err := svc.Field(resp.ID)
	require.NoError(t, err)
	goal := sess.Grid.ArgMin()
	assert.Equal(t, Cell{Row: goal.Row, Col: goal.Col}, resp.Goal)
	assert.LessOrEqual(t, resp.Stats.Min, resp.Stats.Max)
}

func TestHandlers_Regenerate_EmptyChunkedBody(t *testing.T) {
	r, _ := setupTestRouter(t)
	req, _ := http.NewRequest(http.MethodPost, "/v1/fields", io.NopCloser(strings.NewReader("")))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp FieldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 32, resp.Size)
}

func TestHandlers_Regenerate_SeedReproduces(t *testing.T) {
	r, _ := setupTestRouter(t)
	seed := uint64(9)
	a := createField(t, r, RegenerateRequest{Size: 24, Seed: &seed})
	b := createField(t, r, RegenerateRequest{Size: 24, Seed: &seed})
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Stats, b.Stats)
	assert.Equal(t, a.Goal, b.Goal)
	assert.Equal(t, 24, a.Size)
}

func TestHandlers_Regenerate_Invalid(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := doJSON(r, http.MethodPost, "/v1/fields", RegenerateRequest{Size: 65})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	neg := -1
	w = doJSON(r, http.MethodPost, "/v1/fields", RegenerateRequest{Complexity: &neg})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	huge := 5000
	w = doJSON(r, http.MethodPost, "/v1/fields", RegenerateRequest{Size: 4, Complexity: &huge})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ := http.NewRequest(http.MethodPost, "/v1/fields", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_GetField(t *testing.T) {
	r, _ := setupTestRouter(t)
	created := createField(t, r, nil)

	w := doJSON(r, http.MethodGet, "/v1/fields/"+created.ID+"?values=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp FieldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Values, 32)
	assert.Len(t, resp.Values[0], 32)
	assert.Equal(t, resp.Stats.Min, resp.Values[resp.Goal.Row][resp.Goal.Col])

	w = doJSON(r, http.MethodGet, "/v1/fields/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = FieldResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Values)

	w = doJSON(r, http.MethodGet, "/v1/fields/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_Search_Greedy(t *testing.T) {
	r, _ := setupTestRouter(t)
	created := createField(t, r, nil)

	w := doJSON(r, http.MethodPost, "/v1/fields/"+created.ID+"/paths",
		SearchRequest{Start: &Cell{Row: 3, Col: 30}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	require.NotEmpty(t, res.Path)
	assert.Equal(t, Cell{Row: 3, Col: 30}, res.Path[0])
	assert.Equal(t, created.Goal, res.Goal)
	assert.Equal(t, "greedy", res.Mode)
	assert.Equal(t, res.Path[len(res.Path)-1] == res.Goal, res.Reached)
	assert.Equal(t, res.Reached, res.Outcome == "reached")
	assert.LessOrEqual(t, len(res.Path), 501)
}

func TestHandlers_Search_PointAndAStar(t *testing.T) {
	r, _ := setupTestRouter(t)
	created := createField(t, r, nil)

	w := doJSON(r, http.MethodPost, "/v1/fields/"+created.ID+"/paths",
		SearchRequest{Point: &Point{X: 10, Y: 0, Extent: 10}, Mode: ModeAStar})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, Cell{Row: 0, Col: 31}, res.Start)
	assert.True(t, res.Reached)
	assert.Equal(t, "reached", res.Outcome)
	assert.Equal(t, res.Goal, res.Path[len(res.Path)-1])
}

func TestHandlers_Search_FarPointClampsToLastCell(t *testing.T) {
	r, _ := setupTestRouter(t)
	created := createField(t, r, nil)

	w := doJSON(r, http.MethodPost, "/v1/fields/"+created.ID+"/paths",
		SearchRequest{Point: &Point{X: 1e300, Y: 1e19, Extent: 10}, MaxIterations: intPtr(0)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, Cell{Row: 31, Col: 31}, res.Start)
}

func TestHandlers_Search_StallStopOverride(t *testing.T) {
	r, svc := setupTestRouter(t)
	created := createField(t, r, nil)
	sess, _ := svc.Field(created.ID)
	goal := sess.Grid.ArgMin()

	// From the global minimum itself the search is already done.
	w := doJSON(r, http.MethodPost, "/v1/fields/"+created.ID+"/paths",
		SearchRequest{Start: &Cell{Row: goal.Row, Col: goal.Col}, StallPolicy: "stop"})
	require.Equal(t, http.StatusOK, w.Code)
	var res SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Path, 1)
	assert.True(t, res.Reached)
}

func TestHandlers_Search_Errors(t *testing.T) {
	r, _ := setupTestRouter(t)
	created := createField(t, r, nil)
	base := "/v1/fields/" + created.ID + "/paths"

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"missing start", SearchRequest{}, http.StatusBadRequest, "INVALID_PARAMETER"},
		{"out of range", SearchRequest{Start: &Cell{Row: 32, Col: 0}}, http.StatusBadRequest, "OUT_OF_RANGE"},
		{"bad mode", SearchRequest{Start: &Cell{}, Mode: "bfs"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad extent", SearchRequest{Point: &Point{X: 1, Y: 1}}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"huge budget", SearchRequest{Start: &Cell{}, MaxIterations: intPtr(3_000_000)}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"negative budget", SearchRequest{Start: &Cell{}, MaxIterations: intPtr(-1)}, http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, base, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			var er ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
			assert.Equal(t, tt.wantCode, er.Code)
		})
	}

	w := doJSON(r, http.MethodPost, "/v1/fields/unknown/paths", SearchRequest{Start: &Cell{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_DeleteAndEvict(t *testing.T) {
	r, svc := setupTestRouter(t)
	a := createField(t, r, nil)
	b := createField(t, r, nil)
	c := createField(t, r, nil) // MaxFields = 2 evicts a

	assert.Equal(t, 2, svc.Store().Len())
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/v1/fields/"+a.ID, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/v1/fields/"+b.ID, nil).Code)

	assert.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, "/v1/fields/"+c.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/v1/fields/"+c.ID, nil).Code)
	assert.Equal(t, 1, svc.Store().Len())
}

func TestHandlers_HealthAndMetrics(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := doJSON(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	createField(t, r, nil)
	w = doJSON(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "potfield_synthesis_duration_seconds")
}
