package trainer

import (
	"net/http"
	"strconv"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainerController struct {
	TrainerService TrainerServicePort
}

func (tc *TrainerController) GetTrainers(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		row, err := tc.TrainerService.GetTrainerByID(uint(id))
		if err != nil {
			util.WriteDBError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := tc.TrainerService.GetAllTrainers()
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (tc *TrainerController) CreateTrainer(c *gin.Context) {
	var req TrainerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := tc.TrainerService.CreateTrainer(req)
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer_id": id})
}

// UpdateTrainer accepts the legacy form where phones and times arrive as
// delimited strings. "mobiles" is honoured as an alias when "phones" is empty.
func (tc *TrainerController) UpdateTrainer(c *gin.Context) {
	var req TrainerUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phones := req.Phones
	if phones == "" {
		phones = req.Mobiles
	}

	err := tc.TrainerService.UpdateTrainerFull(req.TrainerID,
		req.TrainerFirstName, req.TrainerLastName,
		util.SplitCSV(phones), util.SplitCSV(req.Times))
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.String(http.StatusOK, "Trainer updated successfully")
}

func (tc *TrainerController) DeleteTrainer(c *gin.Context) {
	var req TrainerDeleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tc.TrainerService.DeleteTrainer(req.TrainerID); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
