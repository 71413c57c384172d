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

type PlayerController struct {
	playerService *service.PlayerService
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{
		playerService: service.NewPlayerService(db),
	}
}

func setupPlayerController(db *gorm.DB) []RouteInfo {
	e := NewPlayerController(db)
	basePath := "/players"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getPlayersHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createPlayerHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:player_id", HandlerFunc: e.updatePlayerHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Lists all players, active and inactive
// @Tags players
// @Produce json
// @Success 200 {array} PlayerResponse
// @Router /players [get]
func (e *PlayerController) getPlayersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := e.playerService.GetAllPlayers()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(players, toPlayerResponse))
	}
}

// @Description Registers a player and backfills score rows for all items
// @Tags players
// @Accept json
// @Produce json
// @Param player body PlayerCreate true "Player to create"
// @Success 201 {object} PlayerResponse
// @Router /players [post]
func (e *PlayerController) createPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request PlayerCreate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.CreatePlayer(request.Name)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toPlayerResponse(player))
	}
}

// @Description Renames a player and/or toggles the active flag
// @Tags players
// @Accept json
// @Produce json
// @Param playerId path int true "Player Id"
// @Param player body PlayerUpdate true "Fields to update"
// @Success 200 {object} PlayerResponse
// @Router /players/{playerId} [patch]
func (e *PlayerController) updatePlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var request PlayerUpdate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.playerService.UpdatePlayer(playerId, request.Name, request.Active)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPlayerResponse(player))
	}
}

type PlayerCreate struct {
	Name string `json:"name" binding:"required"`
}

type PlayerUpdate struct {
	Name   string `json:"name" binding:"required"`
	Active bool   `json:"active"`
}

type PlayerResponse struct {
	Id           int       `json:"id"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toPlayerResponse(player *repository.Player) PlayerResponse {
	return PlayerResponse{
		Id:           player.Id,
		Name:         player.Name,
		Active:       player.Active,
		RegisteredAt: player.RegisteredAt,
	}
}
