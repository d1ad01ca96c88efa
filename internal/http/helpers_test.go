package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/connective-drills/internal/http/response"
)

func respondBoom(c *gin.Context, err error) { response.RespondAPIError(c, err) }
