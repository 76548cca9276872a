package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/core/services"
	"github.com/comitanigiacomo/kanso-home/internal/core/stats"
)

const (
	defaultStatsDays    = 14
	defaultProgressDays = 7
)

type StatsHandler struct {
	svc          *services.StatsService
	homes        *services.HomeService
	maxRangeDays int
	now          func() time.Time
}

func NewStatsHandler(svc *services.StatsService, homes *services.HomeService, maxRangeDays int) *StatsHandler {
	return &StatsHandler{
		svc:          svc,
		homes:        homes,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/stats")
	{
		group.GET("/home", h.GetHomeStatistic)
		group.GET("/users", h.GetUserStatistics)
		group.GET("/progress", h.GetProgress)
	}
}

// GetHomeStatistic godoc
// @Summary   Daily and rolling weekly points of the whole home
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Param     start_date  query     string  false  "YYYY-MM-DD, default end_date - 13 days"
// @Param     end_date    query     string  false  "YYYY-MM-DD, default today"
// @Param     tz          query     string  false  "IANA time zone, default UTC"
// @Success   200         {object}  domain.HomeStatistic
// @Failure   400         {object}  map[string]string
// @Failure   500         {object}  map[string]string
// @Router    /stats/home [get]
func (h *StatsHandler) GetHomeStatistic(c *gin.Context) {
	input, ok := h.statsInput(c)
	if !ok {
		return
	}

	result, err := h.svc.HomeStatistic(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserStatistics godoc
// @Summary   Per-member points; a null user collects former members
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Param     start_date  query     string  false  "YYYY-MM-DD, default end_date - 13 days"
// @Param     end_date    query     string  false  "YYYY-MM-DD, default today"
// @Param     tz          query     string  false  "IANA time zone, default UTC"
// @Success   200         {array}   domain.UserStatistic
// @Failure   400         {object}  map[string]string
// @Failure   500         {object}  map[string]string
// @Router    /stats/users [get]
func (h *StatsHandler) GetUserStatistics(c *gin.Context) {
	input, ok := h.statsInput(c)
	if !ok {
		return
	}

	result, err := h.svc.UserStatistics(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProgress godoc
// @Summary   Completed share of the tasks due from today over the next days
// @Tags      stats
// @Produce   json
// @Security  BearerAuth
// @Param     days  query     int     false  "window length, default 7"
// @Param     tz    query     string  false  "IANA time zone, default UTC"
// @Success   200   {object}  domain.ProgressMetric
// @Failure   400   {object}  map[string]string
// @Router    /stats/progress [get]
func (h *StatsHandler) GetProgress(c *gin.Context) {
	homeID, ok := h.homeID(c)
	if !ok {
		return
	}

	loc, ok := location(c)
	if !ok {
		return
	}

	days := defaultProgressDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > h.maxRangeDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("days must be an integer between 0 and %d", h.maxRangeDays)})
			return
		}
		days = n
	}

	progress, err := h.svc.Progress(c.Request.Context(), domain.ProgressInput{
		HomeID:     homeID,
		WindowDays: days,
		Today:      h.now(),
		Location:   loc,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *StatsHandler) homeID(c *gin.Context) (string, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return "", false
	}

	homeID, err := h.homes.HomeIDForUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return "", false
	}

	return homeID, true
}

func location(c *gin.Context) (*time.Location, bool) {
	tz := c.Query("tz")
	if tz == "" {
		return time.UTC, true
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tz, expected an IANA time zone name"})
		return nil, false
	}
	return loc, true
}

// statsInput resolves the caller's home and the requested range. Missing
// bounds default to the two weeks ending today.
func (h *StatsHandler) statsInput(c *gin.Context) (domain.StatsInput, bool) {
	homeID, ok := h.homeID(c)
	if !ok {
		return domain.StatsInput{}, false
	}

	loc, ok := location(c)
	if !ok {
		return domain.StatsInput{}, false
	}

	y, m, d := h.now().In(loc).Date()
	endDate := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, expected YYYY-MM-DD"})
			return domain.StatsInput{}, false
		}
		endDate = parsed
	}

	startDate := endDate.AddDate(0, 0, -(defaultStatsDays - 1))
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, expected YYYY-MM-DD"})
			return domain.StatsInput{}, false
		}
		startDate = parsed
	}

	if startDate.After(endDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date cannot be after end_date"})
		return domain.StatsInput{}, false
	}

	if days := stats.DayOffset(startDate, endDate) + 1; days > h.maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("date range too large, max %d days allowed", h.maxRangeDays)})
		return domain.StatsInput{}, false
	}

	return domain.StatsInput{
		HomeID:    homeID,
		StartDate: startDate,
		EndDate:   endDate,
		Location:  loc,
	}, true
}
