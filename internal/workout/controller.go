package workout

import (
	"net/http"
	"strconv"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	WorkoutService WorkoutServicePort
}

func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		row, err := wc.WorkoutService.GetWorkoutByID(uint(id))
		if err != nil {
			util.WriteDBError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := wc.WorkoutService.GetAllWorkouts()
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var req WorkoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := wc.WorkoutService.CreateWorkout(req)
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout_id": id})
}

func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	var req WorkoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WorkoutID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workout_id is required"})
		return
	}

	if err := wc.WorkoutService.UpdateWorkout(req); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	var req WorkoutDeleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := wc.WorkoutService.DeleteWorkout(req.WorkoutID); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
