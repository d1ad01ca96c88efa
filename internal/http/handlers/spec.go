package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/connective-drills/internal/http/response"
	"github.com/yungbote/connective-drills/internal/modules/challenges"
	"github.com/yungbote/connective-drills/internal/modules/connective"
)

type SpecHandler struct {
	challenges challenges.Usecases
}

func NewSpecHandler(uc challenges.Usecases) *SpecHandler {
	return &SpecHandler{challenges: uc}
}

type validateItemRequest struct {
	Spec connective.Spec          `json:"spec"`
	Item connective.GeneratedItem `json:"item"`
}

// POST /api/spec/validate
func (h *SpecHandler) Validate(c *gin.Context) {
	var req validateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if strings.TrimSpace(req.Spec.Step1.CheckRegex) == "" || strings.TrimSpace(req.Spec.Step2.CheckRegex) == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_spec", errors.New("spec must carry both steps"))
		return
	}
	response.RespondOK(c, h.challenges.ValidateItem(req.Spec, req.Item))
}
