package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/config"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	purchased := time.Date(2018, 1, 2, 10, 0, 0, 0, time.UTC)
	lines := []entities.OrderLine{{
		OrderID:                "o1",
		CustomerID:             "c1",
		CustomerUniqueID:       "u1",
		CustomerState:          "SP",
		ProductID:              "p1",
		OrderStatus:            entities.OrderStatusDelivered,
		PaymentType:            entities.PaymentTypeCreditCard,
		Price:                  decimal.NewFromInt(100),
		FreightValue:           decimal.NewFromInt(10),
		OrderPurchaseTimestamp: purchased,
	}}
	span, _ := usecase.PurchaseSpan(lines)
	uc := usecase.NewDashboardUseCase(entities.Dataset{Lines: lines, Span: span}, logger.Nop())
	return NewRouter(config.Default(), logger.Nop(), uc)
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter(t)

	cases := map[string]int{
		"/v1/ping":                         http.StatusOK,
		"/v1/dashboard":                    http.StatusOK,
		"/v1/dashboard/range":              http.StatusOK,
		"/v1/dashboard/daily-orders":       http.StatusOK,
		"/v1/dashboard/freight":            http.StatusOK,
		"/v1/dashboard/customers-by-state": http.StatusOK,
		"/v1/dashboard/order-status":       http.StatusOK,
		"/v1/dashboard/payment-types":      http.StatusOK,
		"/v1/dashboard/rfm":                http.StatusOK,
		"/v1/dashboard/orders":             http.StatusOK,

		"/v1/dashboard?start_date=2017-01-01": http.StatusUnprocessableEntity,
		"/v1/unknown":                         http.StatusNotFound,
	}
	for target, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != want {
			t.Fatalf("%s: expected %d, got %d (%s)", target, want, w.Code, w.Body.String())
		}
		if w.Header().Get("X-Request-Id") == "" {
			t.Fatalf("%s: missing request id header", target)
		}
	}
}

func TestNewRouter_DashboardBody(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["row_count"] != float64(1) {
		t.Fatalf("unexpected row_count: %v", body["row_count"])
	}
	summary := body["daily_summary"].(map[string]any)
	if summary["total_orders"] != float64(1) || summary["total_revenue"] != float64(110) {
		t.Fatalf("unexpected summary: %v", summary)
	}
}
