package handler

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"spotify-etl/internal/domains/snapshot/service"
	"spotify-etl/internal/shared/response"
)

// Spotify IDs are 22 base-62 characters.
var playlistIDPattern = regexp.MustCompile(`^[0-9A-Za-z]{22}$`)

// ExtractRequest is the extract trigger's input. playlist_id is
// optional; the configured default playlist is used when absent.
type ExtractRequest struct {
	PlaylistID string `form:"playlist_id" json:"playlist_id"`
}

func (r ExtractRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PlaylistID,
			validation.Match(playlistIDPattern).Error("must be a 22-character Spotify playlist ID"),
		),
	)
}

// ExtractHandler exposes the HTTP trigger of the fetch stage.
type ExtractHandler struct {
	extractService service.ExtractService
}

func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
	}
}

// Extract handles POST /spotify/extract. Fetches one playlist snapshot,
// deposits it at intake, and queues its transformation.
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid playlist ID", err)
		return
	}

	documentKey, err := h.extractService.Extract(c.Request.Context(), req.PlaylistID)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Extraction failed")
		response.InternalServerError(c, "Failed to extract playlist snapshot")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"document_key": documentKey,
	})
}
