package query

import (
	"net/url"
	"strconv"
	"strings"

	"petcare/config"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
)

// ParsePageable reads the page, size and sort parameters. Page numbering is
// 0-based; size is clamped to the configured maximum; sort takes the form
// sort=property,asc|desc and may repeat.
func ParsePageable(values url.Values, cfg config.PaginationConfig, entityName string) (repository.Pageable, error) {
	pageable := repository.Pageable{
		Page: 0,
		Size: cfg.DefaultPageSize,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return repository.Pageable{}, domainerrors.ValidationFailed(entityName, "invalid value for parameter page")
		}
		pageable.Page = page
	}

	if raw := values.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return repository.Pageable{}, domainerrors.ValidationFailed(entityName, "invalid value for parameter size")
		}
		pageable.Size = size
	}
	if cfg.MaxPageSize > 0 && pageable.Size > cfg.MaxPageSize {
		pageable.Size = cfg.MaxPageSize
	}

	for _, raw := range values["sort"] {
		order, err := parseSortOrder(raw, entityName)
		if err != nil {
			return repository.Pageable{}, err
		}
		pageable.Sort = append(pageable.Sort, order)
	}

	return pageable, nil
}

func parseSortOrder(raw, entityName string) (repository.SortOrder, error) {
	parts := strings.Split(raw, ",")
	property := strings.TrimSpace(parts[0])
	if property == "" {
		return repository.SortOrder{}, domainerrors.ValidationFailed(entityName, "invalid value for parameter sort")
	}

	order := repository.SortOrder{Property: property}
	if len(parts) > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc", "":
		case "desc":
			order.Descending = true
		default:
			return repository.SortOrder{}, domainerrors.ValidationFailed(entityName, "invalid value for parameter sort")
		}
	}

	return order, nil
}
