package admin

import (
	"strconv"

	"github.com/qamees-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 仪表盘总览
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	forceRefresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))
	overview, err := h.DashboardService.GetOverview(c.Request.Context(), forceRefresh)
	if err != nil {
		respondError(c, response.CodeInternal, "error.dashboard_fetch_failed", err)
		return
	}
	response.Success(c, overview)
}

// GetDashboardTrends 近 N 天订单与营收趋势
func (h *Handler) GetDashboardTrends(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	points, err := h.DashboardService.GetTrends(c.Request.Context(), days)
	if err != nil {
		respondError(c, response.CodeInternal, "error.dashboard_fetch_failed", err)
		return
	}
	response.Success(c, points)
}

// GetDashboardTopProducts 商品销量排行
func (h *Handler) GetDashboardTopProducts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	rankings, err := h.DashboardService.GetTopProducts(c.Request.Context(), days, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.dashboard_fetch_failed", err)
		return
	}
	response.Success(c, rankings)
}
