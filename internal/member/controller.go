package member

import (
	"net/http"
	"strconv"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	MemberService MemberServicePort
}

func (mc *MemberController) GetMembers(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		row, err := mc.MemberService.GetMemberByID(uint(id))
		if err != nil {
			util.WriteDBError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
		return
	}

	rows, err := mc.MemberService.GetAllMembers()
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (mc *MemberController) CreateMember(c *gin.Context) {
	var req MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.MemberService.CreateMember(req)
	if err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mem_id": id})
}

func (mc *MemberController) UpdateMember(c *gin.Context) {
	var req MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mem_id is required"})
		return
	}

	if err := mc.MemberService.UpdateMember(req); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (mc *MemberController) DeleteMember(c *gin.Context) {
	var req MemberDeleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.MemberService.DeleteMember(req.MemID); err != nil {
		util.WriteDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
