package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-home/internal/core/services"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	svc *services.TaskService
	now func() time.Time
}

func NewTaskHandler(svc *services.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc, now: time.Now}
}

type createTaskRequest struct {
	Title      string  `json:"title" binding:"required"`
	Points     int     `json:"points" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	AssigneeID *string `json:"assignee_id"`
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/:id/complete", h.Complete)
	}
}

// Create godoc
// @Summary   Create a task in the caller's home
// @Tags      tasks
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createTaskRequest  true  "task, date as YYYY-MM-DD"
// @Success   201   {object}  domain.Task
// @Failure   400   {object}  map[string]string
// @Router    /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	task, err := h.svc.Create(c.Request.Context(), services.CreateTaskInput{
		UserID:     userID,
		Title:      req.Title,
		Points:     req.Points,
		Date:       date,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// List godoc
// @Summary   Tasks of the caller's home, both bounds inclusive
// @Tags      tasks
// @Produce   json
// @Security  BearerAuth
// @Param     from  query     string  false  "YYYY-MM-DD, default today"
// @Param     to    query     string  false  "YYYY-MM-DD, default from + 6 days"
// @Success   200   {array}   domain.Task
// @Router    /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	y, m, d := h.now().UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from format, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, 6)
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to format, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	tasks, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Complete godoc
// @Summary   Complete a task and issue its receipt
// @Tags      tasks
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "task id"
// @Success   201  {object}  domain.Receipt
// @Failure   404  {object}  map[string]string
// @Failure   409  {object}  map[string]string
// @Router    /tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	receipt, err := h.svc.Complete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
