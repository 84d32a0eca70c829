package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPage_SetsTotalCountAndLinks(t *testing.T) {
	c, rec := newTestContext(t, "/api/pets?page=1&size=2&name.contains=rex")

	err := Page(c, repository.Page[string]{
		Content:       []string{"a", "b"},
		TotalElements: 7,
		Number:        1,
		Size:          2,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", rec.Header().Get(HeaderTotalCount))
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())

	link := rec.Header().Get("Link")
	assert.Contains(t, link, `page=2`)
	assert.Contains(t, link, `rel="next"`)
	assert.Contains(t, link, `rel="prev"`)
	assert.Contains(t, link, `rel="last"`)
	assert.Contains(t, link, `rel="first"`)
	// Filter parameters survive in every link.
	assert.Contains(t, link, "name.contains=rex")
}

func TestPage_FirstPageHasNoPrev(t *testing.T) {
	c, rec := newTestContext(t, "/api/pets")

	err := Page(c, repository.Page[string]{
		Content:       []string{"a"},
		TotalElements: 1,
		Number:        0,
		Size:          20,
	})

	require.NoError(t, err)
	link := rec.Header().Get("Link")
	assert.NotContains(t, link, `rel="next"`)
	assert.NotContains(t, link, `rel="prev"`)
	assert.Contains(t, link, `rel="first"`)
}

func TestPage_EmptyResultIsBareArray(t *testing.T) {
	c, rec := newTestContext(t, "/api/pets")

	err := Page(c, repository.Page[string]{
		Content:       []string{},
		TotalElements: 0,
		Number:        0,
		Size:          20,
	})

	require.NoError(t, err)
	assert.Equal(t, "0", rec.Header().Get(HeaderTotalCount))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreated_SetsLocation(t *testing.T) {
	c, rec := newTestContext(t, "/api/pets")

	err := Created(c, "/api/pets/42", map[string]int64{"id": 42})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/pets/42", rec.Header().Get(echo.HeaderLocation))
}
