package postgres

import (
	"context"
	"strings"

	"petcare/internal/domain/criteria"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// filterExprs translates one discrete-value filter into WHERE conditions.
// A nil filter or a nil operand contributes nothing, so an empty criteria
// matches every row.
func filterExprs[T comparable](column string, f *criteria.Filter[T]) []clause.Expression {
	if f == nil {
		return nil
	}

	col := clause.Column{Name: column}
	var exprs []clause.Expression

	if f.Equals != nil {
		exprs = append(exprs, clause.Eq{Column: col, Value: *f.Equals})
	}
	if f.NotEquals != nil {
		exprs = append(exprs, clause.Neq{Column: col, Value: *f.NotEquals})
	}
	if len(f.In) > 0 {
		exprs = append(exprs, clause.IN{Column: col, Values: toAnySlice(f.In)})
	}
	if len(f.NotIn) > 0 {
		exprs = append(exprs, clause.Not(clause.IN{Column: col, Values: toAnySlice(f.NotIn)}))
	}
	if f.Specified != nil {
		if *f.Specified {
			// Renders as IS NOT NULL.
			exprs = append(exprs, clause.Neq{Column: col, Value: nil})
		} else {
			// Renders as IS NULL.
			exprs = append(exprs, clause.Eq{Column: col, Value: nil})
		}
	}

	return exprs
}

// rangeExprs adds the ordering comparisons on top of the discrete filter.
func rangeExprs[T comparable](column string, f *criteria.RangeFilter[T]) []clause.Expression {
	if f == nil {
		return nil
	}

	col := clause.Column{Name: column}
	exprs := filterExprs(column, &f.Filter)

	if f.GreaterThan != nil {
		exprs = append(exprs, clause.Gt{Column: col, Value: *f.GreaterThan})
	}
	if f.GreaterThanOrEqual != nil {
		exprs = append(exprs, clause.Gte{Column: col, Value: *f.GreaterThanOrEqual})
	}
	if f.LessThan != nil {
		exprs = append(exprs, clause.Lt{Column: col, Value: *f.LessThan})
	}
	if f.LessThanOrEqual != nil {
		exprs = append(exprs, clause.Lte{Column: col, Value: *f.LessThanOrEqual})
	}

	return exprs
}

// stringExprs adds the case-insensitive containment checks on top of the
// discrete filter.
func stringExprs(column string, f *criteria.StringFilter) []clause.Expression {
	if f == nil {
		return nil
	}

	col := clause.Column{Name: column}
	exprs := filterExprs(column, &f.Filter)

	if f.Contains != nil {
		exprs = append(exprs, containsExpr(col, *f.Contains))
	}
	if f.DoesNotContain != nil {
		exprs = append(exprs, clause.Not(containsExpr(col, *f.DoesNotContain)))
	}

	return exprs
}

func containsExpr(col clause.Column, needle string) clause.Expression {
	return clause.Expr{
		SQL:  "lower(?) LIKE ?",
		Vars: []any{col, "%" + strings.ToLower(needle) + "%"},
	}
}

func toAnySlice[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}

	return out
}

// criteriaQuery builds the shared filtered query both Find and Count start
// from.
func criteriaQuery(db *gorm.DB, modelPtr any, exprs []clause.Expression, distinct bool) *gorm.DB {
	query := db.Model(modelPtr)
	if len(exprs) > 0 {
		query = query.Where(clause.And(exprs...))
	}
	if distinct {
		query = query.Distinct()
	}

	return query
}

// findPage runs the count plus fetch pair behind every paged list endpoint.
// Sort properties are whitelisted through sortColumns, which maps wire-level
// property names to column names.
func findPage[M, E any](
	ctx context.Context,
	db *gorm.DB,
	entityName string,
	exprs []clause.Expression,
	distinct bool,
	pageable repository.Pageable,
	sortColumns map[string]string,
	toDomain func(*M) E,
) (repository.Page[E], error) {
	var total int64
	if err := criteriaQuery(db.WithContext(ctx), new(M), exprs, distinct).Count(&total).Error; err != nil {
		return repository.Page[E]{}, errors.Wrap(err, "failed to count rows")
	}

	query := criteriaQuery(db.WithContext(ctx), new(M), exprs, distinct)
	for _, order := range pageable.Sort {
		column, ok := sortColumns[order.Property]
		if !ok {
			return repository.Page[E]{}, domainerrors.ValidationFailed(entityName, "unsupported sort property: "+order.Property)
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order.Descending})
	}

	var models []*M
	if err := query.Offset(pageable.Offset()).Limit(pageable.Size).Find(&models).Error; err != nil {
		return repository.Page[E]{}, errors.Wrap(err, "failed to fetch page")
	}

	content := make([]E, 0, len(models))
	for _, m := range models {
		content = append(content, toDomain(m))
	}

	return repository.Page[E]{
		Content:       content,
		TotalElements: total,
		Number:        pageable.Page,
		Size:          pageable.Size,
	}, nil
}

// countRows runs the count half alone for the /count endpoints.
func countRows[M any](ctx context.Context, db *gorm.DB, exprs []clause.Expression, distinct bool) (int64, error) {
	var total int64
	if err := criteriaQuery(db.WithContext(ctx), new(M), exprs, distinct).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rows")
	}

	return total, nil
}
