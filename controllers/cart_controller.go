package controllers

import (
	"errors"

	"converse-store/models"
	"converse-store/repositories"
	"converse-store/services"
	"converse-store/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
	storageKey  string
	defaultSize string
}

func NewCartController(cartService *services.CartService, storageKey, defaultSize string) *CartController {
	return &CartController{
		cartService: cartService,
		storageKey:  storageKey,
		defaultSize: defaultSize,
	}
}

// cartKey scopes the stored cart per client. Browsers that send an X-Cart-ID
// get their own entry; without one everything shares the fixed default key,
// which matches the original single-browser behavior.
func (ctrl *CartController) cartKey(c *gin.Context) string {
	if id := c.GetHeader("X-Cart-ID"); id != "" {
		return ctrl.storageKey + ":" + id
	}
	return ctrl.storageKey
}

func (ctrl *CartController) respondCart(c *gin.Context, message string, lines []models.CartLine) {
	total := ctrl.cartService.Total(lines)
	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data: models.CartResponse{
			Items:          lines,
			ItemCount:      ctrl.cartService.Count(lines),
			Total:          total,
			TotalFormatted: utils.FormatPrice(total),
		},
	})
}

func (ctrl *CartController) respondStorageError(c *gin.Context, err error) {
	var storageErr *repositories.StorageError
	if errors.As(err, &storageErr) {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Cart could not be saved", Error: storageErr.Error()})
		return
	}
	c.JSON(500, models.ErrorResponse{Success: false, Message: "Cart operation failed", Error: err.Error()})
}

// @Summary Get cart
// @Description Get the cart lines with total and item count
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string false "Cart scope"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	lines, err := ctrl.cartService.Load(c.Request.Context(), ctrl.cartKey(c))
	if err != nil {
		ctrl.respondStorageError(c, err)
		return
	}
	ctrl.respondCart(c, "Cart retrieved", lines)
}

// @Summary Add item to cart
// @Description Add quantity units of a product variant; same (product, size) increments the existing line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart scope"
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}
	if req.Size == "" {
		req.Size = ctrl.defaultSize
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	lines, added, err := ctrl.cartService.AddItem(c.Request.Context(), ctrl.cartKey(c), req.ProductID, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid quantity", Error: err.Error()})
			return
		}
		ctrl.respondStorageError(c, err)
		return
	}
	if !added {
		// Stale or invalid product reference: not fatal, cart unchanged.
		ctrl.respondCart(c, "Product not in catalog, cart unchanged", lines)
		return
	}
	ctrl.respondCart(c, "Item added to cart", lines)
}

// @Summary Update item quantity
// @Description Set a line to an exact quantity; zero or negative removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart scope"
// @Param request body models.UpdateCartItemRequest true "Line to update"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	lines, err := ctrl.cartService.SetQuantity(c.Request.Context(), ctrl.cartKey(c), req.ProductID, req.Size, req.Quantity)
	if err != nil {
		ctrl.respondStorageError(c, err)
		return
	}
	ctrl.respondCart(c, "Cart updated", lines)
}

// @Summary Remove item from cart
// @Description Remove the (product, size) line; removing an absent line is a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart scope"
// @Param request body models.RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	lines, err := ctrl.cartService.RemoveItem(c.Request.Context(), ctrl.cartKey(c), req.ProductID, req.Size)
	if err != nil {
		ctrl.respondStorageError(c, err)
		return
	}
	ctrl.respondCart(c, "Item removed from cart", lines)
}

// @Summary Clear cart
// @Description Delete all cart state
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string false "Cart scope"
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.Clear(c.Request.Context(), ctrl.cartKey(c)); err != nil {
		ctrl.respondStorageError(c, err)
		return
	}
	ctrl.respondCart(c, "Cart cleared", []models.CartLine{})
}
