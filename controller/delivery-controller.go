package controller

import (
	"strconv"
	"time"

	"epochrank/app_error"
	"epochrank/repository"
	"epochrank/service"
	"epochrank/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DeliveryController struct {
	deliveryService *service.DeliveryService
}

func NewDeliveryController(db *gorm.DB, notifier service.ThresholdNotifier) *DeliveryController {
	return &DeliveryController{
		deliveryService: service.NewDeliveryService(db, notifier),
	}
}

func setupDeliveryController(db *gorm.DB, notifier service.ThresholdNotifier) []RouteInfo {
	e := NewDeliveryController(db, notifier)
	basePath := "/deliveries"
	routes := []RouteInfo{
		{Method: "POST", Path: "/confirm/:player_id/:item_id", HandlerFunc: e.confirmDeliveryHandler(), Authenticated: true},
		{Method: "GET", Path: "/history", HandlerFunc: e.getHistoryHandler(), Authenticated: true},
		{Method: "POST", Path: "/reset/:item_id", HandlerFunc: e.resetItemHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Confirms that the item was handed to the player, resets the
// @Description player's score for it and bumps the item's delivery counter
// @Tags deliveries
// @Produce json
// @Param playerId path int true "Player Id"
// @Param itemId path int true "Item Id"
// @Success 201 {object} DeliveryConfirmResponse
// @Router /deliveries/confirm/{playerId}/{itemId} [post]
func (e *DeliveryController) confirmDeliveryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		itemId, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		thresholdReached, err := e.deliveryService.ConfirmDelivery(playerId, itemId, adminId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, DeliveryConfirmResponse{ThresholdReached: thresholdReached})
	}
}

// @Description Delivery audit log, newest first, filterable by item and player
// @Tags deliveries
// @Produce json
// @Param item_id query int false "Item Id"
// @Param player_id query int false "Player Id"
// @Success 200 {array} DeliveryResponse
// @Router /deliveries/history [get]
func (e *DeliveryController) getHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var itemId, playerId *int
		if raw := c.Query("item_id"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": "item_id must be an integer"})
				return
			}
			itemId = &value
		}
		if raw := c.Query("player_id"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": "player_id must be an integer"})
				return
			}
			playerId = &value
		}
		deliveries, err := e.deliveryService.GetHistory(itemId, playerId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(deliveries, toDeliveryResponse))
	}
}

// @Description Clears the already-received flags for the item and zeroes its
// @Description delivery counter
// @Tags deliveries
// @Param itemId path int true "Item Id"
// @Success 204
// @Router /deliveries/reset/{itemId} [post]
func (e *DeliveryController) resetItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.deliveryService.ResetItem(itemId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type DeliveryConfirmResponse struct {
	ThresholdReached bool `json:"threshold_reached"`
}

type DeliveryResponse struct {
	Id          int       `json:"id"`
	PlayerName  string    `json:"player_name"`
	ItemName    string    `json:"item_name"`
	AdminName   string    `json:"admin_name"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func toDeliveryResponse(delivery *repository.Delivery) DeliveryResponse {
	response := DeliveryResponse{
		Id:          delivery.Id,
		DeliveredAt: delivery.DeliveredAt,
	}
	if delivery.Player != nil {
		response.PlayerName = delivery.Player.Name
	}
	if delivery.Item != nil {
		response.ItemName = delivery.Item.Name
	}
	if delivery.Admin != nil {
		response.AdminName = delivery.Admin.DisplayName
	}
	return response
}
