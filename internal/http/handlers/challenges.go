package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/http/response"
	"github.com/yungbote/connective-drills/internal/modules/challenges"
)

type ChallengeHandler struct {
	challenges challenges.Usecases
}

func NewChallengeHandler(uc challenges.Usecases) *ChallengeHandler {
	return &ChallengeHandler{challenges: uc}
}

// ChallengeView is the learner-facing shape; it never carries the reference
// answer or the sampled spec.
type ChallengeView struct {
	ID             string    `json:"id"`
	Difficulty     string    `json:"difficulty"`
	Kind           string    `json:"kind"`
	Source         string    `json:"source"`
	SeedZH         string    `json:"seed_zh"`
	SeedEN         string    `json:"seed_en,omitempty"`
	ChallengeZH    string    `json:"challenge_zh"`
	ChallengeEN    string    `json:"challenge_en"`
	SummaryEN      string    `json:"summary_en"`
	ChainID        string    `json:"chain_id"`
	SceneID        string    `json:"scene_id"`
	Step1PatternID string    `json:"step1_pattern_id"`
	Step2PatternID string    `json:"step2_pattern_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toChallengeView(c *types.Challenge) ChallengeView {
	return ChallengeView{
		ID:             c.ID.String(),
		Difficulty:     c.Difficulty,
		Kind:           c.Kind,
		Source:         c.Source,
		SeedZH:         c.SeedZH,
		SeedEN:         c.SeedEN,
		ChallengeZH:    c.ChallengeZH,
		ChallengeEN:    c.ChallengeEN,
		SummaryEN:      c.SummaryEN,
		ChainID:        c.ChainID,
		SceneID:        c.SceneID,
		Step1PatternID: c.Step1PatternID,
		Step2PatternID: c.Step2PatternID,
		CreatedAt:      c.CreatedAt,
	}
}

type AttemptView struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challenge_id"`
	Answer      string    `json:"answer"`
	Score       float64   `json:"score"`
	Pass        bool      `json:"pass"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAttemptView(a *types.Attempt) AttemptView {
	return AttemptView{
		ID:          a.ID.String(),
		ChallengeID: a.ChallengeID.String(),
		Answer:      a.Answer,
		Score:       a.Score,
		Pass:        a.Pass,
		Explanation: a.Explanation,
		CreatedAt:   a.CreatedAt,
	}
}

// bindOptionalJSON accepts an empty body as the zero value.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return false
	}
	return true
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a non-negative integer"))
		return 0, false
	}
	return n, true
}

type createChallengeRequest struct {
	Difficulty string `json:"difficulty"`
}

// POST /api/challenges
func (h *ChallengeHandler) Create(c *gin.Context) {
	var req createChallengeRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	row, err := h.challenges.Generate(c.Request.Context(), challenges.GenerateInput{Difficulty: req.Difficulty})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"challenge": toChallengeView(row)})
}

// GET /api/challenges?difficulty=hsk3&limit=20
func (h *ChallengeHandler) List(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	list, err := h.challenges.ListByDifficulty(c.Request.Context(), c.Query("difficulty"), limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	items := make([]ChallengeView, 0, len(list.Items))
	for _, row := range list.Items {
		items = append(items, toChallengeView(row))
	}
	response.RespondOK(c, gin.H{"items": items, "total": list.Total})
}

// GET /api/challenges/:id
func (h *ChallengeHandler) Get(c *gin.Context) {
	row, err := h.challenges.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"challenge": toChallengeView(row)})
}

// GET /api/challenges/:id/hint
func (h *ChallengeHandler) Hint(c *gin.Context) {
	out, err := h.challenges.Hint(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

type submitAttemptRequest struct {
	Answer string `json:"answer"`
}

// POST /api/challenges/:id/attempts
func (h *ChallengeHandler) SubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	out, err := h.challenges.SubmitAttempt(c.Request.Context(), challenges.SubmitAttemptInput{
		ChallengeID: c.Param("id"),
		Answer:      req.Answer,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/challenges/:id/attempts
func (h *ChallengeHandler) ListAttempts(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	rows, err := h.challenges.ListAttempts(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	items := make([]AttemptView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toAttemptView(row))
	}
	response.RespondOK(c, gin.H{"items": items})
}
