package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/dto"
	"github.com/bizfolio/portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the portal entry forms for the four ledger kinds.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ls portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

// registerLedgerRoutes sets up the ledger entry routes. The group is expected
// to have auth middleware applied.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := NewLedgerHandler(ls)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/expenses", h.CreateExpense)
		ledger.GET("/expenses", h.ListExpenses)
		ledger.POST("/income", h.CreateIncomeEntry)
		ledger.GET("/income", h.ListIncomeEntries)
		ledger.POST("/taxes", h.CreateTaxItem)
		ledger.GET("/taxes", h.ListTaxItems)
		ledger.POST("/mileage", h.CreateMileageLog)
		ledger.GET("/mileage", h.ListMileageLogs)
	}
}

// rangeQuery binds the from/to list filters, both inclusive calendar dates.
type rangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q rangeQuery) parse() (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", q.From, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be in YYYY-MM-DD format")
	}
	to, err := time.ParseInLocation("2006-01-02", q.To, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be in YYYY-MM-DD format")
	}
	return from, to, nil
}

func handleLedgerError(c *gin.Context, err error, msg string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}
	logger := middleware.GetLoggerFromContext(c)
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags ledger
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense entry"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/expenses [post]
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.ledgerService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// ListExpenses godoc
// @Summary List expenses in a date range
// @Tags ledger
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/expenses [get]
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var query rangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}
	from, to, err := query.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	expenses, err := h.ledgerService.ListExpenses(c.Request.Context(), from, to, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// CreateIncomeEntry godoc
// @Summary Record an income entry
// @Tags ledger
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeEntryRequest true "Income entry"
// @Success 201 {object} dto.IncomeEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/income [post]
func (h *LedgerHandler) CreateIncomeEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateIncomeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateIncomeEntry(c.Request.Context(), req, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to create income entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncomeEntryResponse(entry))
}

// ListIncomeEntries godoc
// @Summary List income entries in a date range
// @Tags ledger
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.IncomeEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/income [get]
func (h *LedgerHandler) ListIncomeEntries(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var query rangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}
	from, to, err := query.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := h.ledgerService.ListIncomeEntries(c.Request.Context(), from, to, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to list income entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeEntryResponses(entries))
}

// CreateTaxItem godoc
// @Summary Record a tax item
// @Tags ledger
// @Accept json
// @Produce json
// @Param tax body dto.CreateTaxItemRequest true "Tax entry"
// @Success 201 {object} dto.TaxItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/taxes [post]
func (h *LedgerHandler) CreateTaxItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateTaxItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.ledgerService.CreateTaxItem(c.Request.Context(), req, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to create tax item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxItemResponse(item))
}

// ListTaxItems godoc
// @Summary List tax items in a date range
// @Tags ledger
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.TaxItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/taxes [get]
func (h *LedgerHandler) ListTaxItems(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var query rangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}
	from, to, err := query.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.ledgerService.ListTaxItems(c.Request.Context(), from, to, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to list tax items")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxItemResponses(items))
}

// CreateMileageLog godoc
// @Summary Record a mileage log
// @Tags ledger
// @Accept json
// @Produce json
// @Param mileage body dto.CreateMileageLogRequest true "Mileage entry"
// @Success 201 {object} dto.MileageLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/mileage [post]
func (h *LedgerHandler) CreateMileageLog(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateMileageLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	log, err := h.ledgerService.CreateMileageLog(c.Request.Context(), req, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to create mileage log")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMileageLogResponse(log))
}

// ListMileageLogs godoc
// @Summary List mileage logs in a date range
// @Tags ledger
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.MileageLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/mileage [get]
func (h *LedgerHandler) ListMileageLogs(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var query rangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to query parameters are required"})
		return
	}
	from, to, err := query.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logs, err := h.ledgerService.ListMileageLogs(c.Request.Context(), from, to, userID)
	if err != nil {
		handleLedgerError(c, err, "Failed to list mileage logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToMileageLogResponses(logs))
}
