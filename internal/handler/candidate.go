package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/response"
)

// ListCandidates returns completed interview records for the dashboard,
// filtered by a case-insensitive name/email substring and sorted by
// score, name or date.
func (h *Handler) ListCandidates(c *gin.Context) {
	var q model.ListCandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	records := h.Candidates.List(q.Search, q.SortBy)
	response.OKWithMeta(c, records, &response.Meta{Total: len(records)})
}

// GetCandidate returns one completed interview record.
func (h *Handler) GetCandidate(c *gin.Context) {
	rec, ok := h.Candidates.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "candidate not found")
		return
	}
	response.OK(c, rec)
}
