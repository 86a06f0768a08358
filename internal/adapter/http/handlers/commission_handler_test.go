package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loki/internal/adapter/http/handlers/mocks"
	"loki/internal/adapter/http/middleware"
	"loki/internal/domain/entities"
	"loki/internal/infrastructure/auth"
	"loki/internal/usecase"
	"loki/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCommissionHandler_PayCommission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := auth.Session{UserID: "owner-1", Role: entities.RoleOwner}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := gin.New()
		r.POST("/v1/commissions/:id/pay", middleware.WithSession(owner), h.PayCommission)

		req := httptest.NewRequest(http.MethodPost, "/v1/commissions/commission-c-1/pay", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrPaymentNotFound, http.StatusNotFound},
			{usecase.ErrPaymentForbidden, http.StatusForbidden},
			{usecase.ErrPaymentNotPending, http.StatusConflict},
			{usecase.ErrPaymentDeclined, http.StatusPaymentRequired},
			{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICommissionUseCase(ctrl)
			h := NewCommissionHandler(uc)

			r := gin.New()
			r.POST("/v1/commissions/:id/pay", middleware.WithSession(owner), h.PayCommission)

			uc.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(entities.Payment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/commissions/commission-c-1/pay", bytes.NewBufferString(`{"payment_method_id":"visa","token":"tok"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := gin.New()
		r.POST("/v1/commissions/:id/pay", middleware.WithSession(owner), h.PayCommission)

		paidAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Pay(gomock.Any(), usecase.PayCommissionCommand{
			PaymentID:       "commission-c-1",
			OwnerID:         "owner-1",
			PaymentMethodID: "visa",
			Token:           "tok",
			Installments:    1,
			PayerEmail:      "owner@loki.ci",
		}).Return(entities.Payment{
			ID:                "commission-c-1",
			Amount:            5000,
			Status:            entities.PaymentStatusPaid,
			ProviderPaymentID: "123",
			ProviderStatus:    "approved",
			ProviderPayload:   json.RawMessage(`{"card":"secret"}`),
			PaidAt:            &paidAt,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/commissions/commission-c-1/pay", bytes.NewBufferString(`{"payment_method_id":"visa","token":"tok","installments":1,"payer_email":"owner@loki.ci"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "paid" {
			t.Fatalf("expected paid, got %v", body["status"])
		}
		if _, ok := body["provider_payload"]; ok {
			t.Fatalf("provider payload must not be exposed")
		}
	})
}

func TestCommissionHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("owner sees own commissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := gin.New()
		r.GET("/v1/me/commissions", middleware.WithSession(auth.Session{UserID: "owner-1", Role: entities.RoleOwner}), h.ListMyCommissions)

		uc.EXPECT().List(gomock.Any(), interfaces.PaymentFilter{PayableBy: "owner-1", Status: entities.PaymentStatusPending}).
			Return([]entities.Payment{{ID: "commission-c-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me/commissions?status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICommissionUseCase(ctrl)
		h := NewCommissionHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/commissions", h.ListCommissions)

		uc.EXPECT().List(gomock.Any(), interfaces.PaymentFilter{Status: "refunded"}).Return(nil, usecase.ErrInvalidPaymentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/commissions?status=refunded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
