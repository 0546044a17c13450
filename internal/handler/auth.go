package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/response"
)

// Login verifies the interviewer credentials and returns a JWT for the
// dashboard routes.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, "invalid request body")
		return
	}

	if req.Email != h.InterviewerEmail {
		h.Logger.Sugar().Warnw("login unknown email", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(h.InterviewerPasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := h.TokenMaker.GenerateToken(req.Email, h.JwtTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginRes{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	})
}
