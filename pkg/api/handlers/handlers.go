package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// actorID reads the acting user from the X-Actor-ID header. Identity is
// managed by the surrounding platform; 0 means the actor is unknown and
// activity entries are recorded without one.
func actorID(c echo.Context) int {
	id, err := strconv.Atoi(c.Request().Header.Get("X-Actor-ID"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
