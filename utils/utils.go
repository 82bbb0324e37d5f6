package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PageParams are the list-screen query params shared by every document
// list: free-text search plus page/per_page.
type PageParams struct {
	Page    int
	PerPage int
	Search  string
}

func ParsePageParams(ctx *fiber.Ctx) PageParams {
	p := PageParams{
		Page:    ctx.QueryInt("page", 1),
		PerPage: ctx.QueryInt("per_page", 20),
		Search:  strings.TrimSpace(ctx.Query("search")),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}
	if p.PerPage > 200 {
		p.PerPage = 200
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// LikePattern wraps a search term for a LIKE query.
func LikePattern(search string) string {
	return "%" + search + "%"
}

// GetCell reads one Excel cell from a row slice, empty when the row is
// shorter than the index.
func GetCell(row []string, index int) string {
	if index < len(row) {
		return strings.TrimSpace(row[index])
	}
	return ""
}
