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

type ScoreController struct {
	scoreService *service.ScoreService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoreService: service.NewScoreService(db),
	}
}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	basePath := "/scores"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getScoresHandler(), Authenticated: true},
		{Method: "POST", Path: "/update", HandlerFunc: e.bulkUpdateHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Ranked scores of active players for one item
// @Tags scores
// @Produce json
// @Param item_id query int true "Item Id"
// @Success 200 {array} ScoreResponse
// @Router /scores [get]
func (e *ScoreController) getScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId, err := strconv.Atoi(c.Query("item_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "item_id is required"})
			return
		}
		scores, err := e.scoreService.RankPlayers(itemId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @Description Bulk-sets one counter field for many players of one item.
// @Description Unparseable or negative values are skipped and reported.
// @Tags scores
// @Accept json
// @Produce json
// @Param update body ScoreBulkUpdate true "Bulk update"
// @Success 200 {object} ScoreBulkUpdateResponse
// @Router /scores/update [post]
func (e *ScoreController) bulkUpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ScoreBulkUpdate
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// keys that are not player ids count as skipped, same as bad values
		values := make(map[int]string)
		badKeys := []int{}
		for key, value := range request.Values {
			playerId, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if playerId <= 0 {
				badKeys = append(badKeys, playerId)
				continue
			}
			values[playerId] = value
		}

		result, err := e.scoreService.BulkUpdateScores(request.ItemId, service.ScoreField(request.Field), values)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, ScoreBulkUpdateResponse{
			Applied:          result.Applied,
			SkippedPlayerIds: append(result.SkippedPlayerIds, badKeys...),
		})
	}
}

type ScoreBulkUpdate struct {
	ItemId int               `json:"item_id" binding:"required"`
	Field  string            `json:"field" binding:"required"`
	Values map[string]string `json:"values" binding:"required"`
}

type ScoreBulkUpdateResponse struct {
	Applied          int   `json:"applied"`
	SkippedPlayerIds []int `json:"skipped_player_ids"`
}

type ScoreResponse struct {
	PlayerId             int       `json:"player_id"`
	PlayerName           string    `json:"player_name"`
	WeeklyReputation     int       `json:"weekly_reputation"`
	BossParticipations   int       `json:"boss_participations"`
	CastleParticipations int       `json:"castle_participations"`
	AlreadyReceived      bool      `json:"already_received"`
	Total                int       `json:"total"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toScoreResponse(score *repository.Score) ScoreResponse {
	response := ScoreResponse{
		PlayerId:             score.PlayerId,
		WeeklyReputation:     score.WeeklyReputation,
		BossParticipations:   score.BossParticipations,
		CastleParticipations: score.CastleParticipations,
		AlreadyReceived:      score.AlreadyReceived,
		Total:                score.Total,
		UpdatedAt:            score.UpdatedAt,
	}
	if score.Player != nil {
		response.PlayerName = score.Player.Name
	}
	return response
}
