package countries

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/joefazee/countrysearch/app/api"
	"github.com/joefazee/countrysearch/internal/logger"
	"github.com/joefazee/countrysearch/internal/sanitizer"
	"github.com/joefazee/countrysearch/internal/validator"
	"github.com/joefazee/countrysearch/models"
)

// MaxQueryRunes bounds the query accepted by the JSON API.
const MaxQueryRunes = 100

// Handler handles HTTP requests for the country search
type Handler struct {
	service   Service
	templates *template.Template
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new country search handler
func NewHandler(service Service,
	templates *template.Template,
	sanitizer sanitizer.HTMLStripperer,
	log logger.Logger,
) *Handler {
	return &Handler{
		service:   service,
		templates: templates,
		sanitizer: sanitizer,
		logger:    log,
	}
}

// Page renders the search page, or only its grid when partial=1.
// The templates escape the query and the cards.
func (h *Handler) Page(c *gin.Context) {
	view := h.service.Page(c.Request.Context(), c.Query("q"))

	name := "index"
	if c.Query("partial") == "1" {
		name = "grid"
	}
	c.Render(http.StatusOK, render.HTML{Template: h.templates, Name: name, Data: view})
}

// SearchCountries godoc
// @Summary Search countries
// @Description Case-insensitive substring search over country display names
// @Tags countries
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} api.Response{data=[]CardResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) SearchCountries(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	v := validator.New()
	v.Check(validator.MaxRunes(req.Query, MaxQueryRunes), "q", models.ErrQueryTooLong.Error())
	if !v.Valid() {
		api.ValidationErrorResponse(c, v.Errors)
		return
	}

	cards, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, models.ErrStillLoading) {
			api.ServiceUnavailableResponse(c, "LOADING", "Countries are still loading")
			return
		}
		h.logger.Error(err, map[string]interface{}{"query": h.sanitizer.StripHTML(req.Query)})
		api.InternalErrorResponse(c, "Failed to search countries")
		return
	}

	h.logger.Debug("country search", map[string]interface{}{
		"query":   h.sanitizer.StripHTML(req.Query),
		"matches": len(cards),
	})

	api.ListResponse(c, "Countries retrieved successfully", cards, len(cards))
}

// GetStatus godoc
// @Summary Country list status
// @Description Report whether the country list has been loaded
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=StatusResponse}
// @Router /api/v1/countries/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	api.SuccessResponse(c, http.StatusOK, "Status retrieved successfully", h.service.Status(c.Request.Context()))
}
