package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/connective-drills/internal/config"
	repos "github.com/yungbote/connective-drills/internal/data/repos/drills"
	"github.com/yungbote/connective-drills/internal/data/repos/testutil"
	httpH "github.com/yungbote/connective-drills/internal/http/handlers"
	"github.com/yungbote/connective-drills/internal/modules/challenges"
	"github.com/yungbote/connective-drills/internal/modules/connective"
	"github.com/yungbote/connective-drills/internal/observability"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	uc := challenges.New(challenges.UsecasesDeps{
		Log:        log,
		Challenges: repos.NewChallengeRepo(db, log),
		Attempts:   repos.NewAttemptRepo(db, log),
		Generation: config.GenerationConfig{MaxTries: 200, FallbackDifficulty: "hsk3", MaxAnswerRunes: 2000},
		NewRand:    func() *rand.Rand { return rand.New(rand.NewSource(11)) },
	})

	return NewRouter(RouterConfig{
		Log:              log,
		Metrics:          observability.New(prometheus.NewRegistry()),
		MaxBodyBytes:     1 << 15,
		ChallengeHandler: httpH.NewChallengeHandler(uc),
		SpecHandler:      httpH.NewSpecHandler(uc),
		HealthHandler: httpH.NewHealthHandler(map[string]httpH.Pinger{
			"db": func(context.Context) error { return nil },
		}),
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	env := decode(t, rec)
	e, _ := env["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func createChallenge(t *testing.T, r *gin.Engine, difficulty string) map[string]any {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/api/challenges", map[string]string{"difficulty": difficulty})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ch, _ := decode(t, rec)["challenge"].(map[string]any)
	require.NotNil(t, ch)
	return ch
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, r, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateChallengeOmitsReference(t *testing.T) {
	r := newTestRouter(t)

	ch := createChallenge(t, r, "hsk3")
	assert.Equal(t, "hsk3", ch["difficulty"])
	assert.Equal(t, "local_bank", ch["source"])
	assert.NotEmpty(t, ch["challenge_zh"])
	assert.NotContains(t, ch, "reference_answer_zh")
	assert.NotContains(t, ch, "spec")

	rec := do(t, r, http.MethodGet, "/api/challenges/"+ch["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ := decode(t, rec)["challenge"].(map[string]any)
	assert.Equal(t, ch["id"], got["id"])
	assert.NotContains(t, got, "reference_answer_zh")
}

func TestCreateChallengeErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/challenges", map[string]string{"difficulty": "hsk 9"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_difficulty", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodPost, "/api/challenges", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	bad := httptest.NewRecorder()
	r.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "invalid_body", errorCode(t, bad))

	// An empty body falls back to the default difficulty.
	empty := httptest.NewRecorder()
	r.ServeHTTP(empty, httptest.NewRequest(http.MethodPost, "/api/challenges", nil))
	assert.Equal(t, http.StatusCreated, empty.Code)
}

func TestGetChallengeErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/challenges/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "challenge_not_found", errorCode(t, rec))

	rec = do(t, r, http.MethodGet, "/api/challenges/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_challenge_id", errorCode(t, rec))
}

func TestListChallenges(t *testing.T) {
	r := newTestRouter(t)
	createChallenge(t, r, "hsk3")
	createChallenge(t, r, "hsk5")

	rec := do(t, r, http.MethodGet, "/api/challenges?difficulty=hsk5&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	items, _ := body["items"].([]any)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, body["total"])

	rec = do(t, r, http.MethodGet, "/api/challenges?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_limit", errorCode(t, rec))
}

func TestHintEndpoint(t *testing.T) {
	r := newTestRouter(t)
	ch := createChallenge(t, r, "hsk4")

	rec := do(t, r, http.MethodGet, "/api/challenges/"+ch["id"].(string)+"/hint", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	connectors, _ := decode(t, rec)["connectors"].([]any)
	assert.Len(t, connectors, 2)
}

func TestAttemptsEndpoints(t *testing.T) {
	r := newTestRouter(t)
	ch := createChallenge(t, r, "hsk3")
	id := ch["id"].(string)

	rec := do(t, r, http.MethodPost, "/api/challenges/"+id+"/attempts", map[string]string{"answer": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_answer", errorCode(t, rec))

	rec = do(t, r, http.MethodPost, "/api/challenges/"+id+"/attempts", map[string]string{"answer": "我不知道"})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "fail", out["status"])
	assert.Equal(t, id, out["challenge_id"])
	assert.NotEmpty(t, out["explanation"])

	rec = do(t, r, http.MethodGet, "/api/challenges/"+id+"/attempts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items, _ := decode(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "我不知道", items[0].(map[string]any)["answer"])
}

func TestSpecValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	spec, err := connective.Sample(rand.New(rand.NewSource(5)), "hsk3", 200)
	require.NoError(t, err)

	good := connective.GeneratedItem{
		SeedZH:            spec.Seed,
		ChallengeZH:       connective.BuildCompactChallengeZH(spec),
		ReferenceAnswerZH: connective.BuildExpectedReferenceAnswer(spec),
	}
	rec := do(t, r, http.MethodPost, "/api/spec/validate", map[string]any{"spec": spec, "item": good})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["ok"])

	bad := good
	bad.SeedZH = "别的种子。"
	rec = do(t, r, http.MethodPost, "/api/spec/validate", map[string]any{"spec": spec, "item": bad})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "seed_zh")

	rec = do(t, r, http.MethodPost, "/api/spec/validate", map[string]any{"item": good})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_spec", errorCode(t, rec))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	createChallenge(t, r, "hsk3")

	rec := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `drills_generated_items_total{source="local_bank"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/api/challenges"`)
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{
		MaxBodyBytes:     16,
		ChallengeHandler: httpH.NewChallengeHandler(challenges.New(challenges.UsecasesDeps{})),
	})
	rec := do(t, r, http.MethodPost, "/api/challenges", map[string]string{"difficulty": strings.Repeat("x", 64)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_body", errorCode(t, rec))
}

func TestRespondAPIErrorDefaultsToInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		respondBoom(c, errors.New("kaput"))
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", errorCode(t, rec))
}
