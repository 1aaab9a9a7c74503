package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/query"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// RosterHandler manages employee listing and record endpoints.
type RosterHandler struct {
	service *service.RosterService
}

// NewRosterHandler constructs handler.
func NewRosterHandler(rosterService *service.RosterService) *RosterHandler {
	return &RosterHandler{service: rosterService}
}

// ListEmployees GET /employees.
func (h *RosterHandler) ListEmployees(c *fiber.Ctx) error {
	state := parseQueryState(c, h.service.DefaultPageSize())
	result := h.service.Query(state.Params())
	return c.JSON(fiber.Map{
		"data": result.Items,
		"meta": dto.QueryMeta{
			Total:     result.Total,
			Page:      result.Page,
			PageSize:  result.PageSize,
			PageCount: result.PageCount,
		},
	})
}

// GetEmployee GET /employees/:id.
func (h *RosterHandler) GetEmployee(c *fiber.Ctx) error {
	rec, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rec})
}

// CreateEmployee POST /employees.
func (h *RosterHandler) CreateEmployee(c *fiber.Ctx) error {
	var req domain.Employee
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	rec, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": rec})
}

// ReplaceEmployee PUT /employees/:id.
func (h *RosterHandler) ReplaceEmployee(c *fiber.Ctx) error {
	var req domain.Employee
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	rec, err := h.service.Replace(c.Context(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rec})
}

// FieldValues GET /employees/filters/:field.
func (h *RosterHandler) FieldValues(c *fiber.Ctx) error {
	values, err := h.service.DistinctValues(c.Params("field"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": values})
}

// parseQueryState threads the request's parameters through an immutable
// query-state value. Filter values are comma-separated per field; date
// fields take a single "<from> to <to>" token.
func parseQueryState(c *fiber.Ctx, defaultPageSize int) query.State {
	criteria := query.Criteria{}
	for _, field := range query.FilterableFields() {
		raw := c.Query("filter_" + field)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, " to ") {
			criteria[field] = []string{raw}
			continue
		}
		values := []string{}
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		criteria[field] = values
	}

	sortSpec := query.SortSpec{}
	if key := c.Query("sort_by"); key != "" {
		sortSpec.Key = key
		sortSpec.Direction = query.Ascending
		if c.Query("sort_dir") == string(query.Descending) {
			sortSpec.Direction = query.Descending
		}
	}

	pageSize := parseInt(c.Query("page_size"), defaultPageSize)
	page := parseInt(c.Query("page"), 1)

	return query.NewState(pageSize).
		WithFilters(criteria).
		WithSearch(c.Query("search")).
		WithSort(sortSpec).
		WithPage(page)
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
