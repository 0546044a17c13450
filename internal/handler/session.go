package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mdsofi1/AI-Interview-Assistant/internal/resume"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/response"
	"go.uber.org/zap"
)

// CreateSession accepts resume upload metadata and starts a new interview
// session in the info_collection stage.
func (h *Handler) CreateSession(c *gin.Context) {
	var req model.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.Engine.StartFromResume(c.Request.Context(), resume.Meta{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("create_session: session started",
		zap.String("session_id", res.ID),
		zap.String("file_name", req.FileName),
	)
	response.Created(c, res)
}

// GetSession returns the session snapshot, rehydrating a persisted
// in-progress interview after a reload or restart.
func (h *Handler) GetSession(c *gin.Context) {
	res, err := h.Engine.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, res)
}

// ConfirmInfo confirms the candidate identity fields and starts the first
// question.
func (h *Handler) ConfirmInfo(c *gin.Context) {
	var req model.ConfirmInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.Engine.ConfirmInfo(c.Request.Context(), c.Param("id"), model.CandidateInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, res)
}

// UpdateBuffer stores the candidate's in-progress input so that a timeout
// submits whatever was typed.
func (h *Handler) UpdateBuffer(c *gin.Context) {
	var req model.UpdateBufferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.Engine.UpdateBuffer(c.Request.Context(), c.Param("id"), req.Text); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, "buffer updated")
}

// SubmitAnswer records the answer for the current question and advances the
// interview.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.Engine.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, res)
}

// ResetSession returns the session to the upload stage from any stage.
func (h *Handler) ResetSession(c *gin.Context) {
	res, err := h.Engine.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Logger.Info("reset_session: session reset", zap.String("session_id", res.ID))
	response.OK(c, res)
}

// GetTranscript returns the session's chat transcript in order.
func (h *Handler) GetTranscript(c *gin.Context) {
	msgs, err := h.Engine.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, msgs)
}
