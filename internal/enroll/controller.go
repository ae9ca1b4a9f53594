package enroll

import (
	"net/http"
	"strconv"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollController struct {
	EnrollService EnrollServicePort
}

// GetEnrollments lists every enrollment, or fetches one when the composite
// key arrives as the old_mem and old_wid query parameters.
func (ec *EnrollController) GetEnrollments(c *gin.Context) {
	rawMem := c.Query("old_mem")
	rawWid := c.Query("old_wid")

	if rawMem != "" || rawWid != "" {
		memID, err := strconv.ParseUint(rawMem, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid old_mem"})
			return
		}
		workoutID, err := strconv.ParseUint(rawWid, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid old_wid"})
			return
		}

		row, err := ec.EnrollService.GetEnrollmentByPair(uint(memID), uint(workoutID))
		if err != nil {
			util.WriteDBError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := ec.EnrollService.GetAllEnrollments()
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ec *EnrollController) CreateEnrollment(c *gin.Context) {
	var req EnrollInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ec.EnrollService.CreateEnrollment(req); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EnrollController) UpdateEnrollment(c *gin.Context) {
	var req EnrollUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ec.EnrollService.UpdateEnrollment(req); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EnrollController) DeleteEnrollment(c *gin.Context) {
	var req EnrollDeleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ec.EnrollService.DeleteEnrollment(req.MemID, req.WorkoutID); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
