package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/auth"
	"github.com/nekogravitycat/group-read-service/internal/group"
	"github.com/nekogravitycat/group-read-service/internal/pkg/request"
	"github.com/nekogravitycat/group-read-service/internal/pkg/response"
)

type Handler struct {
	service group.Service
	logger  *zap.Logger
}

func NewHandler(service group.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// caller returns the caller resolved by the caller middleware. A route
// registered without that middleware answers 401.
func (h *Handler) caller(c *gin.Context) (auth.Caller, bool) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return auth.Caller{}, false
	}
	return caller, true
}

// Template returns the defaults and option lists for a new group.
func (h *Handler) Template(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	caller, ok := h.caller(c)
	if !ok {
		return
	}

	tpl, err := h.service.RetrieveTemplate(c.Request.Context(), caller, group.TemplateRequest{
		OfficeID:                  req.OfficeID,
		CenterGroup:               req.CenterGroup,
		StaffInSelectedOfficeOnly: req.StaffInSelectedOfficeOnly,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewTemplateResponse(tpl))
}

// List retrieves a page of groups within the caller's office hierarchy.
func (h *Handler) List(c *gin.Context) {
	var req ListGroupsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	caller, ok := h.caller(c)
	if !ok {
		return
	}

	page, err := h.service.RetrieveAll(c.Request.Context(), caller, req.toSearchParameters())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	items := make([]GroupResponse, len(page.Items))
	for i, g := range page.Items {
		items[i] = NewGroupResponse(g)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page.Total, req.Limit, req.Offset))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	caller, ok := h.caller(c)
	if !ok {
		return
	}

	g, err := h.service.RetrieveOne(c.Request.Context(), caller, req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewGroupResponse(g))
}

// Lookup returns id and name of every group in one office.
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	caller, ok := h.caller(c)
	if !ok {
		return
	}

	lookups, err := h.service.RetrieveGroupsForLookup(c.Request.Context(), caller, req.OfficeID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	items := make([]LookupResponse, len(lookups))
	for i, l := range lookups {
		items[i] = LookupResponse{ID: l.ID, Name: l.Name}
	}

	c.JSON(http.StatusOK, items)
}
