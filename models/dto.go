package models

type AddCartItemRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Size      string `json:"size" form:"size"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type UpdateCartItemRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Size      string `json:"size" form:"size" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Size      string `json:"size" form:"size" binding:"required"`
}

type CartResponse struct {
	Items          []CartLine `json:"items"`
	ItemCount      int        `json:"item_count"`
	Total          int        `json:"total"`
	TotalFormatted string     `json:"total_formatted"`
}

type CategoryResponse struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
