package request

type CreateHouseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	City        string  `json:"city"`
	District    string  `json:"district"`
	Price       float64 `json:"price" binding:"required"`
}
