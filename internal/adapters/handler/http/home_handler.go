package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-home/internal/core/services"
)

type HomeHandler struct {
	svc *services.HomeService
}

func NewHomeHandler(svc *services.HomeService) *HomeHandler {
	return &HomeHandler{svc: svc}
}

type createHomeRequest struct {
	Name string `json:"name" binding:"required"`
}

type joinHomeRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

func (h *HomeHandler) RegisterRoutes(router *gin.RouterGroup) {
	homes := router.Group("/homes")
	{
		homes.POST("", h.Create)
		homes.POST("/join", h.Join)
		homes.POST("/leave", h.Leave)
		homes.GET("/current", h.Current)
	}
}

// Create godoc
// @Summary   Create a home with the caller as first member
// @Tags      homes
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createHomeRequest  true  "home"
// @Success   201   {object}  domain.Home
// @Failure   409   {object}  map[string]string
// @Router    /homes [post]
func (h *HomeHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	home, err := h.svc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, home)
}

// Join godoc
// @Summary   Join a home by invite code
// @Tags      homes
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      joinHomeRequest  true  "invite"
// @Success   200   {object}  domain.Home
// @Failure   404   {object}  map[string]string
// @Failure   409   {object}  map[string]string
// @Router    /homes/join [post]
func (h *HomeHandler) Join(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req joinHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	home, err := h.svc.Join(c.Request.Context(), userID, req.InviteCode)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, home)
}

// Leave godoc
// @Summary   Leave the current home
// @Tags      homes
// @Security  BearerAuth
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /homes/leave [post]
func (h *HomeHandler) Leave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.svc.Leave(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Current godoc
// @Summary   Current home and its members in join order
// @Tags      homes
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  services.HomeView
// @Failure   404  {object}  map[string]string
// @Router    /homes/current [get]
func (h *HomeHandler) Current(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.svc.Current(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
