package controller

import (
	"strconv"

	"epochrank/app_error"
	"epochrank/repository"
	"epochrank/service"
	"epochrank/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemController struct {
	itemService *service.ItemService
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{
		itemService: service.NewItemService(db),
	}
}

func setupItemController(db *gorm.DB) []RouteInfo {
	e := NewItemController(db)
	basePath := "/items"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getItemsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createItemHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:item_id", HandlerFunc: e.updateItemHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Lists all reward items with their delivery counters
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Router /items [get]
func (e *ItemController) getItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := e.itemService.GetAllItems()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(items, toItemResponse))
	}
}

// @Description Creates a reward item and backfills score rows for all players
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemCreate true "Item to create"
// @Success 201 {object} ItemResponse
// @Router /items [post]
func (e *ItemController) createItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ItemCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		item, err := e.itemService.CreateItem(request.Name, request.ResetThreshold, request.Description)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toItemResponse(item))
	}
}

// @Description Updates an item's name, threshold and description
// @Tags items
// @Accept json
// @Produce json
// @Param itemId path int true "Item Id"
// @Param item body ItemUpdate true "Fields to update"
// @Success 200 {object} ItemResponse
// @Router /items/{itemId} [patch]
func (e *ItemController) updateItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var request ItemUpdate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		item, err := e.itemService.UpdateItem(itemId, request.Name, request.ResetThreshold, request.Description)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toItemResponse(item))
	}
}

type ItemCreate struct {
	Name           string `json:"name" binding:"required"`
	ResetThreshold int    `json:"reset_threshold"`
	Description    string `json:"description"`
}

type ItemUpdate struct {
	Name           string `json:"name" binding:"required"`
	ResetThreshold int    `json:"reset_threshold"`
	Description    string `json:"description"`
}

type ItemResponse struct {
	Id             int    `json:"id"`
	Name           string `json:"name"`
	DeliveryCount  int    `json:"delivery_count"`
	ResetThreshold int    `json:"reset_threshold"`
	Description    string `json:"description"`
}

func toItemResponse(item *repository.Item) ItemResponse {
	return ItemResponse{
		Id:             item.Id,
		Name:           item.Name,
		DeliveryCount:  item.DeliveryCount,
		ResetThreshold: item.ResetThreshold,
		Description:    item.Description,
	}
}
