package controller

import (
	"epochrank/app_error"
	"epochrank/service"
	"epochrank/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		dashboardService: service.NewDashboardService(db),
	}
}

func setupDashboardController(db *gorm.DB) []RouteInfo {
	e := NewDashboardController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/dashboard", HandlerFunc: e.getDashboardHandler(), Authenticated: true},
	}
}

// @Description Aggregate counts and the latest deliveries
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (e *DashboardController) getDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := e.dashboardService.GetStats()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, DashboardResponse{
			ActivePlayers:    stats.ActivePlayers,
			TotalItems:       stats.TotalItems,
			RecentDeliveries: utils.Map(stats.RecentDeliveries, toDeliveryResponse),
			Items:            utils.Map(stats.Items, toItemResponse),
			ItemsAtThreshold: utils.Map(stats.ItemsAtThreshold, toItemResponse),
		})
	}
}

type DashboardResponse struct {
	ActivePlayers    int64              `json:"active_players"`
	TotalItems       int64              `json:"total_items"`
	RecentDeliveries []DeliveryResponse `json:"recent_deliveries"`
	Items            []ItemResponse     `json:"items"`
	ItemsAtThreshold []ItemResponse     `json:"items_at_threshold"`
}
