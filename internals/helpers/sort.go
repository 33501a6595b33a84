package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// OrderClause maps ?sort_by=/?order= onto a whitelist of physical columns.
// Unknown keys fall back to defaultKey; direction defaults to DESC.
func OrderClause(c *fiber.Ctx, allowed map[string]string, defaultKey string) string {
	key := strings.ToLower(strings.TrimSpace(c.Query("sort_by")))
	col, ok := allowed[key]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
