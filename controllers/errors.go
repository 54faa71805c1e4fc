package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/statemachine"
	"github.com/yeremiapane/cafe-app/utils"
)

// respondStoreError maps store errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	utils.RespondError(c, storeErrorStatus(err), err)
}

func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSlotTaken),
		errors.Is(err, services.ErrOrderFinished):
		return http.StatusConflict
	case errors.Is(err, services.ErrSlotInPast),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidAddress),
		errors.Is(err, statemachine.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrUnknownSlot),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidSpiceLevel),
		errors.Is(err, services.ErrInvalidPortion),
		errors.Is(err, services.ErrInvalidAddOn),
		errors.Is(err, services.ErrInvalidTopping),
		errors.Is(err, services.ErrInvalidDeliveryType),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidCoupon):
		return http.StatusBadRequest
	}
	utils.ErrorLogger.Errorf("unexpected store error: %v", err)
	return http.StatusInternalServerError
}

func intParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return v, nil
}

func parsePositiveInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}
