package controllers

import (
	"strconv"

	"foodhub/entity"
	"foodhub/pkg/resp"
	"foodhub/utils"

	"github.com/gin-gonic/gin"
)

// targetUserID resolves which user a request acts on: the caller by
// default, or the userId query param when the caller is an admin or the
// param matches the caller. Writes the error response itself on failure.
func targetUserID(c *gin.Context) (uint, bool) {
	current := utils.CurrentUserID(c)
	q := c.Query("userId")
	if q == "" {
		return current, true
	}

	id, err := strconv.Atoi(q)
	if err != nil || id <= 0 {
		resp.BadRequest(c, "bad userId")
		return 0, false
	}
	target := uint(id)
	if target != current && utils.CurrentRole(c) != entity.RoleAdmin {
		resp.Forbidden(c, "forbidden")
		return 0, false
	}
	return target, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "bad "+name)
		return 0, false
	}
	return uint(id), true
}

func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "bad "+name)
		return 0, false
	}
	return uint(id), true
}
