package request

// PayCommissionRequest is the card data tokenized client side by the Mercado
// Pago SDK. The amount is never taken from the client.
type PayCommissionRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
	Token           string `json:"token"`
	Installments    int    `json:"installments"`
	PayerEmail      string `json:"payer_email"`
}
