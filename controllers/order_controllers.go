package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type OrderController struct {
	Store *services.CafeStore
}

func NewOrderController(store *services.CafeStore) *OrderController {
	return &OrderController{Store: store}
}

func (oc *OrderController) GetCurrentOrder(c *gin.Context) {
	order, ok := oc.Store.CurrentOrder()
	if !ok {
		respondStoreError(c, services.ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current order", order)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Store.Order(c.Param("order_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetTracking -> timeline untuk layar order tracking
func (oc *OrderController) GetTracking(c *gin.Context) {
	tracking, err := oc.Store.Tracking(c.Param("order_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order tracking", tracking)
}
