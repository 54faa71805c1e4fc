package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/middlewares"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

type SessionController struct {
	Store *services.CafeStore
}

func NewSessionController(store *services.CafeStore) *SessionController {
	return &SessionController{Store: store}
}

// Login -> pilih role di layar login, tanpa password
func (sc *SessionController) Login(c *gin.Context) {
	var req struct {
		Role models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.Role.Valid() {
		respondStoreError(c, services.ErrInvalidRole)
		return
	}

	token, err := utils.GenerateToken(string(req.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.Store.SetUserRole(req.Role); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Infof("Session started as %s", req.Role)
	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token":      token,
		"role":       req.Role,
		"expires_at": time.Now().Add(utils.TokenTTL),
	})
}

// Logout -> revoke token dan kembali ke layar login
func (sc *SessionController) Logout(c *gin.Context) {
	token := c.GetString(middlewares.ContextToken)
	expiry, ok := c.Get(middlewares.ContextTokenExpiry)
	if exp, isTime := expiry.(time.Time); ok && isTime {
		utils.BlacklistToken(token, exp)
	} else {
		utils.BlacklistToken(token, time.Now().Add(utils.TokenTTL))
	}

	if err := sc.Store.SetUserRole(""); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Logout success", nil)
}
