package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"loki/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the commission gateway. In mock mode every
// charge is approved locally and no access token is needed.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, charge interfaces.CommissionCharge) (interfaces.ProviderReceipt, error) {
	body, err := json.Marshal(chargeRequest(charge))
	if err != nil {
		return interfaces.ProviderReceipt{}, err
	}

	if g != nil && g.mockMode {
		return g.mockCharge(charge, body)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ProviderReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start external_reference=%s amount=%d", charge.ExternalReference, charge.Amount)

	var req payment.Request
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("[payment][gateway] request build failed err=%v", err)
		return interfaces.ProviderReceipt{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.ProviderReceipt{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.ProviderReceipt{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.ProviderReceipt{
		PaymentID: fmt.Sprintf("%d", resp.ID),
		Status:    resp.Status,
		Payload:   b,
	}, nil
}

func (g *MercadoPagoGateway) mockCharge(charge interfaces.CommissionCharge, body []byte) (interfaces.ProviderReceipt, error) {
	resp := map[string]any{}
	if err := json.Unmarshal(body, &resp); err != nil {
		resp = map[string]any{"request_payload_raw": string(body)}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.ProviderReceipt{}, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s external_reference=%s", id, charge.ExternalReference)
	return interfaces.ProviderReceipt{PaymentID: id, Status: "approved", Payload: b}, nil
}

// chargeRequest is the Mercado Pago payment body, in the provider's JSON
// field names.
func chargeRequest(c interfaces.CommissionCharge) map[string]any {
	req := map[string]any{
		"transaction_amount": float64(c.Amount),
		"description":        c.Description,
		"external_reference": c.ExternalReference,
		"payment_method_id":  c.PaymentMethodID,
		"installments":       c.Installments,
	}
	if c.Token != "" {
		req["token"] = c.Token
	}
	if c.PayerEmail != "" {
		req["payer"] = map[string]any{"email": c.PayerEmail}
	}
	return req
}
