package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/response"
)

// parseRequest is the JSON body for the parse endpoint. Text is a pointer
// so a missing field can be told apart from an empty string.
type parseRequest struct {
	Text *string `json:"text"`
	Base string  `json:"base"` // optional, RFC3339
}

// parseResponse is the JSON payload returned on success.
type parseResponse struct {
	Plugin string                  `json:"plugin"`
	Tokens []naturaltime.TimeToken `json:"tokens"`
	Result time.Time               `json:"result"`
}

// HandleParse resolves a natural-language time expression.
// @Summary     Parse a relative time expression
// @Description Tokenizes expressions such as "15 years -12 months 2 fortnights ago" and applies them to a base timestamp.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       request body parseRequest true "Expression and optional RFC3339 base timestamp"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing text or malformed base"
// @Failure     422 {object} response.Resp "Expression not recognized"
// @Router      /api/v1/parse [post]
func (h *handler) HandleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	input := naturaltime.ResolveInput{Text: req.Text}
	if req.Base != "" {
		base, err := time.Parse(time.RFC3339, req.Base)
		if err != nil {
			response.BadRequest(c, err)
			return
		}
		input.Base = base
	}

	out, err := h.uc.Resolve(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, naturaltime.ErrNilInput):
			response.BadRequest(c, err)
		case errors.Is(err, naturaltime.ErrUnrecognizedInput):
			response.UnprocessableEntity(c, err)
		default:
			h.l.Errorf(c.Request.Context(), "resolve failed: %v", err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, parseResponse{
		Plugin: out.Plugin,
		Tokens: out.Tokens,
		Result: out.Result,
	})
}
