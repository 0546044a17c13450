package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/auth"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/candidate"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/interview"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	Logger     *zap.Logger
	Engine     *interview.Engine
	Candidates *candidate.Store
	TokenMaker *auth.JWTMaker
	JwtTTL     time.Duration

	InterviewerEmail        string
	InterviewerPasswordHash string
}

// respondError maps flow errors onto the response envelope: validation
// failures are 422 with their kind code, unknown sessions 404, stage misuse
// 409-like 400, everything else 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case model.IsValidation(err):
		response.ValidationError(c, model.ErrorKind(err), err.Error())
	case errors.Is(err, model.ErrSessionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrInvalidStage):
		response.BadRequest(c, err.Error())
	default:
		h.Logger.Error("unhandled error", zap.Error(err))
		response.InternalError(c, "")
	}
}
