package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type SelectionController struct {
	Store *services.CafeStore
}

func NewSelectionController(store *services.CafeStore) *SelectionController {
	return &SelectionController{Store: store}
}

func (sc *SelectionController) GetSelection(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current selection", sc.Store.Selection())
}

// UpdateSelection -> ganti tanggal dan/atau slot yang dipilih
func (sc *SelectionController) UpdateSelection(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Slot string `json:"slot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sel, err := sc.Store.UpdateSelection(req.Date, req.Slot)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Selection updated", sel)
}
