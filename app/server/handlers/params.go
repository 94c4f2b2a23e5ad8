package handlers

import (
	"github.com/labstack/echo/v4"
	"math"
	"strconv"
)

// parsePostID 解析 ?post_id= ，只接受十进制正整数
func parsePostID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.QueryParam("post_id"), 10, 64)
	if err != nil || id == 0 || id > math.MaxInt64 {
		return 0, false
	}
	return uint(id), true
}
