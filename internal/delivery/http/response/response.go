// Package response contains the helpers shaping successful HTTP responses.
// Success bodies are the bare resource representations; paging metadata
// travels in headers instead of an envelope.
package response

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"petcare/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HeaderTotalCount carries the total number of rows matching a list query.
const HeaderTotalCount = "X-Total-Count"

// Created writes a 201 with the Location of the new resource.
func Created(c echo.Context, location string, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return c.JSON(http.StatusCreated, body)
}

// OK writes a 200 with the given body.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Page writes one page of a list result: the content as a bare JSON array,
// the total in X-Total-Count and the navigation links in the Link header.
func Page[T any](c echo.Context, page repository.Page[T]) error {
	header := c.Response().Header()
	header.Set(HeaderTotalCount, strconv.FormatInt(page.TotalElements, 10))
	header.Set("Link", buildLinkHeader(c, page.Number, page.Size, page.TotalPages(), page.HasNext(), page.HasPrevious()))

	return c.JSON(http.StatusOK, page.Content)
}

// buildLinkHeader produces the next/prev/last/first navigation links,
// preserving every other query parameter of the request.
func buildLinkHeader(c echo.Context, number, size, totalPages int, hasNext, hasPrev bool) string {
	links := make([]string, 0, 4)
	if hasNext {
		links = append(links, pageLink(c, number+1, size, "next"))
	}
	if hasPrev {
		links = append(links, pageLink(c, number-1, size, "prev"))
	}

	last := totalPages - 1
	if last < 0 {
		last = 0
	}
	links = append(links, pageLink(c, last, size, "last"), pageLink(c, 0, size, "first"))

	return strings.Join(links, ",")
}

func pageLink(c echo.Context, page, size int, rel string) string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return fmt.Sprintf("<%s>; rel=%q", u.RequestURI(), rel)
}
