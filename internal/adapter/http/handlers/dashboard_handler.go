package handlers

import (
	"errors"
	"net/http"

	request "ecommerce_dashboard/internal/adapter/http/dto/request"
	response "ecommerce_dashboard/internal/adapter/http/dto/response"
	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase"
	"ecommerce_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// DashboardHandler serves the dashboard widgets. Every endpoint accepts the
// inclusive start_date/end_date query pair (YYYY-MM-DD).
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	log     *logger.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, log: log.With("component", "dashboard_handler")}
}

// GetDateSpan godoc
// @Summary      Dataset date span
// @Description  First and last purchase dates in the dataset; valid bounds for every range filter.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DateRangeResponse
// @Router       /dashboard/range [get]
func (h *DashboardHandler) GetDateSpan(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDateRange(h.usecase.DateSpan(c.Request.Context())))
}

// GetDashboard godoc
// @Summary      Full dashboard
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.DashboardResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	d, err := h.usecase.Build(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// GetDailyOrders godoc
// @Summary      Daily orders and revenue
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.DailyOrdersWidgetResponse
// @Router       /dashboard/daily-orders [get]
func (h *DashboardHandler) GetDailyOrders(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	days, summary, err := h.usecase.DailyOrders(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DailyOrdersWidgetResponse{
		Range:   response.FromDateRange(r),
		Days:    response.FromDailyOrders(days),
		Summary: response.FromDailyOrdersSummary(summary),
	})
}

// GetFreight godoc
// @Summary      Freight cost by product
// @Description  Highest and lowest shipping cost products plus the full ordering.
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Param        limit       query  int     false  "size of the highest/lowest views (default 5)"
// @Success      200  {object}  response.FreightWidgetResponse
// @Router       /dashboard/freight [get]
func (h *DashboardHandler) GetFreight(c *gin.Context) {
	var q request.FreightQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	r, ok := h.resolveRange(c, q.DateRangeQuery)
	if !ok {
		return
	}
	products, leaders, err := h.usecase.Freight(c.Request.Context(), r, q.ResolveLimit(usecase.DefaultFreightLeaders))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FreightWidgetResponse{
		Range:    response.FromDateRange(r),
		Highest:  response.FromProductFreight(leaders.Highest),
		Lowest:   response.FromProductFreight(leaders.Lowest),
		Products: response.FromProductFreight(products),
	})
}

// GetCustomersByState godoc
// @Summary      Customers by state
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.ListResponse[response.StateCustomersResponse]
// @Router       /dashboard/customers-by-state [get]
func (h *DashboardHandler) GetCustomersByState(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, err := h.usecase.CustomersByState(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[response.StateCustomersResponse]{
		Range: response.FromDateRange(r),
		Items: response.FromStateCustomers(rows),
	})
}

// GetOrderStatus godoc
// @Summary      Order status distribution
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.ListResponse[response.CategoryCountResponse]
// @Router       /dashboard/order-status [get]
func (h *DashboardHandler) GetOrderStatus(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, err := h.usecase.OrderStatus(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[response.CategoryCountResponse]{
		Range: response.FromDateRange(r),
		Items: response.FromCategoryCounts(rows),
	})
}

// GetPaymentTypes godoc
// @Summary      Payment method distribution
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.ListResponse[response.CategoryShareResponse]
// @Router       /dashboard/payment-types [get]
func (h *DashboardHandler) GetPaymentTypes(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, err := h.usecase.PaymentTypes(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[response.CategoryShareResponse]{
		Range: response.FromDateRange(r),
		Items: response.FromCategoryShares(rows),
	})
}

// GetRFM godoc
// @Summary      RFM customer table
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Success      200  {object}  response.RFMWidgetResponse
// @Router       /dashboard/rfm [get]
func (h *DashboardHandler) GetRFM(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, summary, err := h.usecase.RFM(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RFMWidgetResponse{
		Range:     response.FromDateRange(r),
		Customers: response.FromCustomerRFM(rows),
		Summary:   response.FromRFMSummary(summary),
	})
}

// GetOrders godoc
// @Summary      Raw order lines
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "inclusive start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "inclusive end date (YYYY-MM-DD)"
// @Param        offset      query  int     false  "rows to skip"
// @Param        limit       query  int     false  "page size (default 50, max 1000)"
// @Success      200  {object}  response.OrderPageResponse
// @Router       /dashboard/orders [get]
func (h *DashboardHandler) GetOrders(c *gin.Context) {
	var q request.OrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	r, ok := h.resolveRange(c, q.DateRangeQuery)
	if !ok {
		return
	}
	page, err := h.usecase.Orders(c.Request.Context(), r, q.Offset, q.ResolveLimit(usecase.DefaultPageSize))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(r, page))
}

func (h *DashboardHandler) bindRange(c *gin.Context) (entities.DateRange, bool) {
	var q request.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return entities.DateRange{}, false
	}
	return h.resolveRange(c, q)
}

func (h *DashboardHandler) resolveRange(c *gin.Context, q request.DateRangeQuery) (entities.DateRange, bool) {
	r, err := q.Resolve(h.usecase.DateSpan(c.Request.Context()))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.DateRange{}, false
	}
	return r, true
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	appErr := mapDashboardError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("dashboard request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "start_date must not be after end_date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDateOutOfBounds):
		return pkg.NewDomainErrorSimple("DATE_OUT_OF_BOUNDS", "Date range is outside the dataset span", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_PAGINATION", "Invalid offset or limit", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
