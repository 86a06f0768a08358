package request

// SubmitBookingRequest carries the dates picked in the calendar, as
// YYYY-MM-DD strings, in any order.
type SubmitBookingRequest struct {
	TenantName  string   `json:"tenant_name"`
	TenantPhone string   `json:"tenant_phone"`
	Dates       []string `json:"dates"`
	Message     string   `json:"message"`
}
