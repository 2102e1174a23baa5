package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/dto"
	"github.com/bizfolio/portal_backend/internal/middleware"
	"github.com/bizfolio/portal_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles the admin dashboard summary requests.
type FinanceHandler struct {
	financeService     portssvc.FinanceSvcFacade
	userService        portssvc.UserSvcFacade
	defaultMileageRate *decimal.Decimal
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(fs portssvc.FinanceSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) *FinanceHandler {
	return &FinanceHandler{
		financeService:     fs,
		userService:        us,
		defaultMileageRate: cfg.DefaultMileageRate,
	}
}

// RegisterFinanceRoutes sets up the finance summary routes. The group is
// expected to have auth middleware applied.
func RegisterFinanceRoutes(rg *gin.RouterGroup, cfg *config.Config, fs portssvc.FinanceSvcFacade, us portssvc.UserSvcFacade) {
	h := NewFinanceHandler(fs, us, cfg)

	finance := rg.Group("/finance")
	{
		finance.GET("/summary", h.GetSummary)
	}
}

// summaryQuery binds the dashboard query parameters. The period list is
// enforced here at the boundary; the domain itself treats anything
// unrecognized as a full year.
type summaryQuery struct {
	Period      string           `form:"period" binding:"required,oneof=day week month quarter year"`
	Year        int              `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	UserID      string           `form:"userID"`
	MileageRate *decimal.Decimal `form:"mileageRate"`
}

// GetSummary godoc
// @Summary Period finance summary
// @Description Aggregates expenses, income, taxes, mileage cost and order revenue for a calendar period. Admin only.
// @Tags finance
// @Produce json
// @Param period query string true "Calendar period" Enums(day, week, month, quarter, year)
// @Param year query int false "Reference year override"
// @Param userID query string false "Scope ledgers to a single user"
// @Param mileageRate query number false "Default per-mile rate for logs without one"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/summary [get]
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	requestingUser, err := h.userService.GetUserByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}
		logger.Error("Failed to load requesting user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify user"})
		return
	}
	if !requestingUser.IsAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
		return
	}

	var query summaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	period, _ := domain.ParsePeriod(query.Period)

	mileageRate := query.MileageRate
	if mileageRate == nil {
		mileageRate = h.defaultMileageRate
	}

	opts := domain.SummarizeOptions{
		UserID:      query.UserID,
		MileageRate: mileageRate,
	}

	summary, dateRange, err := h.financeService.SummarizePeriod(ctx, period, query.Year, opts)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error("Failed to compute finance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary, dateRange))
}
