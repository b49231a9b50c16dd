package request

type CreateHotelRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	City string `json:"city" binding:"required"`
}
