package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination lee page/size (1-indexado) y los traduce a limit/offset.
// size se acota a [1, 100]; page a >= 1.
func parsePagination(c *fiber.Ctx) (page, size, limit, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.Query("size", strconv.Itoa(defaultPageSize)))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size, size, size * (page - 1)
}
