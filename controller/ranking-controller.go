package controller

import (
	"strconv"
	"time"

	"epochrank/app_error"
	"epochrank/service"
	"epochrank/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RankingController serves the public, unauthenticated ranking views.
type RankingController struct {
	scoreService *service.ScoreService
	itemService  *service.ItemService
}

func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{
		scoreService: service.NewScoreService(db),
		itemService:  service.NewItemService(db),
	}
}

func setupRankingController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewRankingController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/", HandlerFunc: e.indexHandler()},
		{Method: "GET", Path: "/ranking/:item_id", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getRankingHandler())},
	}
}

// @Description Lists the items available in the public ranking view
// @Tags ranking
// @Produce json
// @Success 200 {array} ItemResponse
// @Router / [get]
func (e *RankingController) indexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := e.itemService.GetAllItems()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(items, toItemResponse))
	}
}

// @Description Public ranking of active players for one item, cached for a minute
// @Tags ranking
// @Produce json
// @Param itemId path int true "Item Id"
// @Success 200 {object} RankingResponse
// @Router /ranking/{itemId} [get]
func (e *RankingController) getRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		item, err := e.itemService.GetItemById(itemId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		items, err := e.itemService.GetAllItems()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		scores, err := e.scoreService.RankPlayers(itemId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, RankingResponse{
			Item:     toItemResponse(item),
			Items:    utils.Map(items, toItemResponse),
			Rankings: utils.Map(scores, toScoreResponse),
		})
	}
}

type RankingResponse struct {
	Item     ItemResponse    `json:"item"`
	Items    []ItemResponse  `json:"items"`
	Rankings []ScoreResponse `json:"rankings"`
}
