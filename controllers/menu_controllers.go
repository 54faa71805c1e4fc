package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type MenuController struct {
	Store *services.CafeStore
}

func NewMenuController(store *services.CafeStore) *MenuController {
	return &MenuController{Store: store}
}

// GetMenu -> ?category=starters, kosong atau "all" untuk semua
func (mc *MenuController) GetMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Store.MenuItems(c.Query("category")))
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	id, err := intParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	item, ok := mc.Store.MenuItem(id)
	if !ok {
		respondStoreError(c, services.ErrMenuItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", mc.Store.Categories())
}

// GetOptions -> pilihan kustomisasi yang berlaku untuk semua menu
func (mc *MenuController) GetOptions(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Customization options", gin.H{
		"spice_levels":  mc.Store.SpiceLevels(),
		"portion_sizes": mc.Store.PortionSizes(),
	})
}
