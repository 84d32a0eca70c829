package query

import (
	"net/url"
	"testing"

	"petcare/config"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaginationConfig() config.PaginationConfig {
	return config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestParsePageable_Defaults(t *testing.T) {
	pageable, err := ParsePageable(url.Values{}, testPaginationConfig(), "pet")

	require.NoError(t, err)
	assert.Equal(t, 0, pageable.Page)
	assert.Equal(t, 20, pageable.Size)
	assert.Empty(t, pageable.Sort)
}

func TestParsePageable_PageAndSize(t *testing.T) {
	values, err := url.ParseQuery("page=2&size=5")
	require.NoError(t, err)

	pageable, err := ParsePageable(values, testPaginationConfig(), "pet")

	require.NoError(t, err)
	assert.Equal(t, 2, pageable.Page)
	assert.Equal(t, 5, pageable.Size)
	assert.Equal(t, 10, pageable.Offset())
}

func TestParsePageable_SizeClampedToMax(t *testing.T) {
	values, err := url.ParseQuery("size=5000")
	require.NoError(t, err)

	pageable, err := ParsePageable(values, testPaginationConfig(), "pet")

	require.NoError(t, err)
	assert.Equal(t, 100, pageable.Size)
}

func TestParsePageable_Sort(t *testing.T) {
	values, err := url.ParseQuery("sort=name,asc&sort=createdAt,desc&sort=id")
	require.NoError(t, err)

	pageable, err := ParsePageable(values, testPaginationConfig(), "pet")

	require.NoError(t, err)
	assert.Equal(t, []repository.SortOrder{
		{Property: "name"},
		{Property: "createdAt", Descending: true},
		{Property: "id"},
	}, pageable.Sort)
}

func TestParsePageable_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"negative page", "page=-1"},
		{"non-numeric page", "page=one"},
		{"zero size", "size=0"},
		{"bad sort direction", "sort=name,sideways"},
		{"empty sort property", "sort=,asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParsePageable(values, testPaginationConfig(), "pet")

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.KeyValidationFailed, appErr.ErrorKey())
		})
	}
}
