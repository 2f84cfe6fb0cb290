package api

import (
	"net/http"
	"strconv"
	"time"

	"host-pricing/internal/domain/pricing"
	reqdto "host-pricing/internal/handler/dto/request"
	resdto "host-pricing/internal/handler/dto/response"
	"host-pricing/internal/handler/httperr"
	"host-pricing/internal/handler/middleware"
	"host-pricing/internal/pkg/errs"
	"host-pricing/internal/usecase/commands"
	"host-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingHost   = errs.New("host id missing from context")
	errInvalidPeriod = errs.New("year must be positive and month within 1..12")
)

type PricingHandler struct {
	cmds commands.PricingCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary Get pricing
// @Description Get the saved base price, ordered rules and date overrides of the host
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PricingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing [get]
func (h *PricingHandler) Get(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	view, err := h.q.GetConfig(c.Request.Context(), hostID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load pricing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Save pricing
// @Description Replace base price, rules and overrides. Rule order is evaluation order.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SavePricingRequest true "Pricing configuration"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /pricing [put]
func (h *PricingHandler) Save(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	if err := h.cmds.Save(c.Request.Context(), hostID, draft); err != nil {
		abortWithUseCaseError(c, err, "Save failed")
		return
	}
	h.respondConfig(c, hostID)
}

// @Summary Set base price
// @Description Set the default nightly price. Non-numeric input is stored as 0.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetBasePriceRequest true "Base price"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/base-price [put]
func (h *PricingHandler) SetBasePrice(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	var req reqdto.SetBasePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetBasePrice(c.Request.Context(), hostID, req.Amount.Decimal); err != nil {
		abortWithUseCaseError(c, err, "Save failed")
		return
	}
	h.respondConfig(c, hostID)
}

// @Summary Add rule
// @Description Append a rule to the end of the evaluation order
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingRuleRequest true "Rule"
// @Success 201 {object} resdto.RuleCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/rules [post]
func (h *PricingHandler) AddRule(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	var req reqdto.PricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rule, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule", nil)
		return
	}
	id, err := h.cmds.AddRule(c.Request.Context(), hostID, rule)
	if err != nil {
		abortWithUseCaseError(c, err, "Save failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.RuleCreatedResponse{ID: id.String()})
}

// @Summary Update rule
// @Description Partially update a rule. Its position in the evaluation order is kept.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdatePricingRuleRequest true "Rule fields"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/rules/{id} [patch]
func (h *PricingHandler) UpdateRule(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdatePricingRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule", nil)
		return
	}
	if err = h.cmds.UpdateRule(c.Request.Context(), hostID, ruleID, p); err != nil {
		abortWithUseCaseError(c, err, "Update failed")
		return
	}
	h.respondConfig(c, hostID)
}

// @Summary Delete rule
// @Tags pricing
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/rules/{id} [delete]
func (h *PricingHandler) DeleteRule(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err = h.cmds.DeleteRule(c.Request.Context(), hostID, ruleID); err != nil {
		abortWithUseCaseError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set date override
// @Description Pin an absolute price to one date, replacing any previous override of that date
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.SetOverrideRequest true "Override"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/overrides/{date} [put]
func (h *PricingHandler) SetOverride(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	date, err := pricing.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	var req reqdto.SetOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.SetOverride(c.Request.Context(), hostID, date, req.Price.Decimal, req.Reason); err != nil {
		abortWithUseCaseError(c, err, "Save failed")
		return
	}
	h.respondConfig(c, hostID)
}

// @Summary Delete date override
// @Tags pricing
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/overrides/{date} [delete]
func (h *PricingHandler) DeleteOverride(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	date, err := pricing.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	if err = h.cmds.DeleteOverride(c.Request.Context(), hostID, date); err != nil {
		abortWithUseCaseError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Month calendar
// @Description Resolve every day of a month against the saved configuration
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/calendar [get]
func (h *PricingHandler) Calendar(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	view, err := h.q.Calendar(c.Request.Context(), hostID, year, month)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to resolve calendar")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Resolve one date
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/resolve [get]
func (h *PricingHandler) Resolve(c *gin.Context) {
	hostID, ok := h.hostID(c)
	if !ok {
		return
	}
	date, err := pricing.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	res, err := h.q.ResolveDate(c.Request.Context(), hostID, date)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to resolve date")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolution(*res))
}

// @Summary Preview draft
// @Description Resolve an unsaved configuration for a month. Nothing is persisted.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Param request body reqdto.SavePricingRequest true "Draft configuration"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /pricing/preview [post]
func (h *PricingHandler) Preview(c *gin.Context) {
	if _, ok := h.hostID(c); !ok {
		return
	}
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	draft, ok := bindDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(h.q.Preview(draft, year, month)))
}

func (h *PricingHandler) hostID(c *gin.Context) (uuid.UUID, bool) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingHost, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return hostID, true
}

func (h *PricingHandler) respondConfig(c *gin.Context, hostID uuid.UUID) {
	view, err := h.q.GetConfig(c.Request.Context(), hostID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load pricing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

func bindDraft(c *gin.Context) (*pricing.RuleStore, bool) {
	var req reqdto.SavePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return nil, false
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pricing configuration", nil)
		return nil, false
	}
	return draft, true
}

// parsePeriod reads optional year and month. Missing values are returned as zero.
func parsePeriod(c *gin.Context) (int, time.Month, bool) {
	var year, month int
	var err error
	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil || year <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPeriod, "Invalid year", nil)
			return 0, 0, false
		}
	}
	if raw := c.Query("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil || month < 1 || month > 12 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPeriod, "Invalid month", nil)
			return 0, 0, false
		}
	}
	return year, time.Month(month), true
}

func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrHostNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Host not found", nil)
	case errs.Is(err, errs.ErrRuleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rule not found", nil)
	case errs.Is(err, errs.ErrOverrideNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Override not found", nil)
	case errs.Is(err, errs.ErrInvalidPricingConfig):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pricing configuration", nil)
	case errs.Is(err, errs.ErrSaveFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Save failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
