package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type CartController struct {
	Store *services.CafeStore
}

func NewCartController(store *services.CafeStore) *CartController {
	return &CartController{Store: store}
}

func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.Store.Cart()
	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"items":    cart.Items,
		"count":    cart.Count,
		"subtotal": cart.Subtotal,
		"total":    cc.Store.CartTotal(),
	})
}

// AddItem -> tambah item dari customization sheet
func (cc *CartController) AddItem(c *gin.Context) {
	var req services.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	line, err := cc.Store.AddToCart(req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item added to cart", line)
}

// UpdateItem -> quantity 0 menghapus item
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Store.UpdateCartItem(c.Param("item_id"), *req.Quantity); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.Store.Cart())
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	if err := cc.Store.RemoveFromCart(c.Param("item_id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.Store.Cart())
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Store.ClearCart()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.Store.Cart())
}
