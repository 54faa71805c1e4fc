package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type TableController struct {
	Store *services.CafeStore
}

func NewTableController(store *services.CafeStore) *TableController {
	return &TableController{Store: store}
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Store.Tables())
}

func (tc *TableController) GetTable(c *gin.Context) {
	table, ok := tc.lookupTable(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

func (tc *TableController) GetTableBookings(c *gin.Context) {
	table, ok := tc.lookupTable(c)
	if !ok {
		return
	}
	bookings := tc.Store.BookingsForTable(table.ID)
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.RespondJSON(c, http.StatusOK, "Table bookings", bookings)
}

// GetAvailableSlots -> slot yang belum lewat dan belum dipesan, default hari ini
func (tc *TableController) GetAvailableSlots(c *gin.Context) {
	table, ok := tc.lookupTable(c)
	if !ok {
		return
	}
	date := c.DefaultQuery("date", tc.Store.Now().Format(services.DateLayout))
	if !validDateParam(c, date) {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available slots", gin.H{
		"table_id": table.ID,
		"date":     date,
		"slots":    tc.Store.AvailableSlotsForTable(table.ID, date),
	})
}

// GetBoard -> status semua meja untuk satu tanggal dan slot, default pilihan dashboard
func (tc *TableController) GetBoard(c *gin.Context) {
	sel := tc.Store.Selection()
	date := c.DefaultQuery("date", sel.SelectedDate)
	slot := c.DefaultQuery("slot", sel.SelectedSlot)
	if !validDateParam(c, date) {
		return
	}
	if _, ok := services.FindTimeSlot(slot); !ok {
		respondStoreError(c, services.ErrUnknownSlot)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table board", gin.H{
		"date":           date,
		"formatted_date": services.FormatDate(date),
		"slot":           slot,
		"tables":         tc.Store.TableBoard(date, slot),
		"free":           tc.Store.FreeTablesForSlot(date, slot),
		"occupied":       tc.Store.OccupiedTablesForSlot(date, slot),
		"reserved":       tc.Store.ReservedTablesForSlot(date, slot),
		"estimated_wait": tc.Store.EstimatedWaitTime(date, slot),
	})
}

func (tc *TableController) lookupTable(c *gin.Context) (models.Table, bool) {
	id, err := intParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return models.Table{}, false
	}
	table, ok := tc.Store.Table(id)
	if !ok {
		respondStoreError(c, services.ErrTableNotFound)
		return models.Table{}, false
	}
	return table, true
}
