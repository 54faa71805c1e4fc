package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/statemachine"
	"github.com/yeremiapane/cafe-app/utils"
)

// AdminController serves the staff dashboard.
type AdminController struct {
	Store *services.CafeStore
}

func NewAdminController(store *services.CafeStore) *AdminController {
	return &AdminController{Store: store}
}

// GetOrders -> ?status=pending, kosong atau "all" untuk semua
func (ac *AdminController) GetOrders(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	if status != "all" && !statemachine.Valid(models.OrderStatus(status)) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status %q", status))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", ac.Store.Orders(status))
}

func (ac *AdminController) GetOrderStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order stats", ac.Store.OrderStats())
}

func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Store.UpdateOrderStatus(c.Param("order_id"), req.Status, statemachine.ActorStaff)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// AdvanceOrder -> tombol "next status" di kartu order
func (ac *AdminController) AdvanceOrder(c *gin.Context) {
	order, err := ac.Store.AdvanceOrder(c.Param("order_id"), statemachine.ActorStaff)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order advanced", order)
}

func (ac *AdminController) GetAnalytics(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Analytics", ac.Store.Analytics())
}

func (ac *AdminController) GetStateMachine(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order state machine", gin.H{
		"lifecycle":   statemachine.Lifecycle,
		"transitions": statemachine.GetAllTransitions(),
	})
}
