package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type CheckoutController struct {
	Store *services.CafeStore
}

func NewCheckoutController(store *services.CafeStore) *CheckoutController {
	return &CheckoutController{Store: store}
}

type addressRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IsSaved bool   `json:"is_saved"`
}

func (r addressRequest) toModel() models.Address {
	return models.Address{Name: r.Name, Phone: r.Phone, Address: r.Address, IsSaved: r.IsSaved}
}

// SetAddress -> langkah pertama checkout
func (cc *CheckoutController) SetAddress(c *gin.Context) {
	var req struct {
		addressRequest
		DeliveryType models.DeliveryType `json:"delivery_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Store.SetCheckoutAddress(req.toModel(), req.DeliveryType); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Address saved", gin.H{
		"checkout": cc.Store.Checkout(),
		"summary":  cc.Store.CheckoutSummary(),
	})
}

func (cc *CheckoutController) ApplyCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !cc.Store.ApplyCoupon(req.Code) {
		respondStoreError(c, services.ErrInvalidCoupon)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Coupon applied", cc.Store.CheckoutSummary())
}

func (cc *CheckoutController) RemoveCoupon(c *gin.Context) {
	cc.Store.RemoveCoupon()
	utils.RespondJSON(c, http.StatusOK, "Coupon removed", cc.Store.CheckoutSummary())
}

func (cc *CheckoutController) GetSummary(c *gin.Context) {
	summary := cc.Store.CheckoutSummary()
	utils.RespondJSON(c, http.StatusOK, "Checkout summary", gin.H{
		"checkout":        cc.Store.Checkout(),
		"summary":         summary,
		"items":           cc.Store.CartItems(),
		"formatted_total": utils.FormatRupees(summary.Total),
	})
}

// PlaceOrder -> address boleh kosong jika sudah disimpan di langkah address
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	var req struct {
		Address       *addressRequest      `json:"address"`
		DeliveryType  models.DeliveryType  `json:"delivery_type"`
		PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = cc.Store.Checkout().DeliveryType
	}
	var address models.Address
	if req.Address != nil {
		address = req.Address.toModel()
	}

	order, err := cc.Store.PlaceOrder(address, deliveryType, req.PaymentMethod)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}
