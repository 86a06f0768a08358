package request

// InitiateContactRequest is sent when a visitor asks for the owner's number.
// Name and phone are required even for signed-in tenants.
type InitiateContactRequest struct {
	TenantName  string `json:"tenant_name"`
	TenantPhone string `json:"tenant_phone"`
}

// AdvanceContactRequest optionally names the stage the admin expects to reach.
// An empty body advances to the next stage.
type AdvanceContactRequest struct {
	Status string `json:"status"`
}
