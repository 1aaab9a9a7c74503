package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/aisearch"
	"github.com/spec-kit/roster-service/internal/api/dto"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// SearchHandler exposes the natural-language search endpoint.
type SearchHandler struct {
	service *aisearch.Service
}

// NewSearchHandler constructs handler.
func NewSearchHandler(searchService *aisearch.Service) *SearchHandler {
	return &SearchHandler{service: searchService}
}

// Search POST /search.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Query) == "" {
		return apperrors.NewValidationError("query required", nil)
	}

	result, err := h.service.Search(c.Context(), req.Query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": result.Records,
		"meta": dto.SearchMeta{
			Outcome:  string(result.Outcome),
			Count:    len(result.Records),
			Rejected: result.Rejected,
			Message:  outcomeMessage(result),
		},
	})
}

func outcomeMessage(result *aisearch.SearchResult) string {
	switch result.Outcome {
	case aisearch.OutcomeSuccess:
		return fmt.Sprintf("Found %d matching employees", len(result.Records))
	case aisearch.OutcomeRecovered:
		return fmt.Sprintf("Found %d matching employees after fixing JSON", len(result.Records))
	default:
		return "No matching results. Try a different search query"
	}
}
