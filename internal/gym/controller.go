package gym

import (
	"net/http"
	"strconv"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"github.com/gin-gonic/gin"
)

type GymController struct {
	GymService GymServicePort
}

// GetGyms lists all gyms, or returns one gym when ?id= is present.
func (gc *GymController) GetGyms(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		row, err := gc.GymService.GetGymByID(uint(id))
		if err != nil {
			util.WriteDBError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := gc.GymService.GetAllGyms()
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (gc *GymController) CreateGym(c *gin.Context) {
	var req GymInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := gc.GymService.CreateGym(req)
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gym_id": id})
}

func (gc *GymController) UpdateGym(c *gin.Context) {
	var req GymInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.GymID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gym_id is required"})
		return
	}

	if err := gc.GymService.UpdateGym(req); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (gc *GymController) DeleteGym(c *gin.Context) {
	var req GymDeleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.GymService.DeleteGym(req.GymID); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
