package postgres

import (
	"testing"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func int64Ptr(v int64) *int64 { return &v }
func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestFilterExprs_NilFilterProducesNothing(t *testing.T) {
	assert.Nil(t, filterExprs[int64]("id", nil))
}

func TestFilterExprs_EqualsAndNotEquals(t *testing.T) {
	f := &criteria.Filter[int64]{
		Equals:    int64Ptr(7),
		NotEquals: int64Ptr(9),
	}

	exprs := filterExprs("owner_id", f)

	require.Len(t, exprs, 2)
	assert.Equal(t, clause.Eq{Column: clause.Column{Name: "owner_id"}, Value: int64(7)}, exprs[0])
	assert.Equal(t, clause.Neq{Column: clause.Column{Name: "owner_id"}, Value: int64(9)}, exprs[1])
}

func TestFilterExprs_InAndNotIn(t *testing.T) {
	f := &criteria.Filter[entity.AppointmentStatus]{
		In:    []entity.AppointmentStatus{entity.StatusPending, entity.StatusConfirmed},
		NotIn: []entity.AppointmentStatus{entity.StatusDone},
	}

	exprs := filterExprs("status", f)

	require.Len(t, exprs, 2)
	assert.Equal(t, clause.IN{
		Column: clause.Column{Name: "status"},
		Values: []any{entity.StatusPending, entity.StatusConfirmed},
	}, exprs[0])
}

func TestFilterExprs_SpecifiedRendersNullChecks(t *testing.T) {
	col := clause.Column{Name: "breed"}

	exprs := filterExprs("breed", &criteria.Filter[string]{Specified: boolPtr(true)})
	require.Len(t, exprs, 1)
	// A Neq against nil renders as IS NOT NULL.
	assert.Equal(t, clause.Neq{Column: col, Value: nil}, exprs[0])

	exprs = filterExprs("breed", &criteria.Filter[string]{Specified: boolPtr(false)})
	require.Len(t, exprs, 1)
	assert.Equal(t, clause.Eq{Column: col, Value: nil}, exprs[0])
}

func TestRangeExprs_Bounds(t *testing.T) {
	f := &criteria.RangeFilter[int32]{
		GreaterThan:        int32Ptr(1),
		GreaterThanOrEqual: int32Ptr(2),
		LessThan:           int32Ptr(10),
		LessThanOrEqual:    int32Ptr(9),
	}

	exprs := rangeExprs("age", f)

	col := clause.Column{Name: "age"}
	require.Len(t, exprs, 4)
	assert.Equal(t, clause.Gt{Column: col, Value: int32(1)}, exprs[0])
	assert.Equal(t, clause.Gte{Column: col, Value: int32(2)}, exprs[1])
	assert.Equal(t, clause.Lt{Column: col, Value: int32(10)}, exprs[2])
	assert.Equal(t, clause.Lte{Column: col, Value: int32(9)}, exprs[3])
}

func TestStringExprs_ContainsIsCaseInsensitive(t *testing.T) {
	f := &criteria.StringFilter{Contains: strPtr("ReX")}

	exprs := stringExprs("name", f)

	require.Len(t, exprs, 1)
	expr, ok := exprs[0].(clause.Expr)
	require.True(t, ok)
	assert.Equal(t, "lower(?) LIKE ?", expr.SQL)
	require.Len(t, expr.Vars, 2)
	assert.Equal(t, "%rex%", expr.Vars[1])
}

func TestPetCriteriaExprs_ComposesAllFields(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	gender := entity.GenderMale
	c := &criteria.PetCriteria{
		OwnerID:   &criteria.RangeFilter[int64]{Filter: criteria.Filter[int64]{Equals: int64Ptr(7)}},
		Name:      &criteria.StringFilter{Contains: strPtr("rex")},
		Gender:    &criteria.Filter[entity.Gender]{Equals: &gender},
		CreatedAt: &criteria.RangeFilter[time.Time]{GreaterThan: &now},
		Distinct:  boolPtr(true),
	}

	exprs, distinct := petCriteriaExprs(c)

	assert.Len(t, exprs, 4)
	assert.True(t, distinct)
}

func TestPetCriteriaExprs_NilCriteria(t *testing.T) {
	exprs, distinct := petCriteriaExprs(nil)

	assert.Nil(t, exprs)
	assert.False(t, distinct)
}

func TestAppointmentCriteriaExprs_StatusColumn(t *testing.T) {
	status := entity.StatusConfirmed
	c := &criteria.AppointmentCriteria{
		Status: &criteria.Filter[entity.AppointmentStatus]{Equals: &status},
	}

	exprs, distinct := appointmentCriteriaExprs(c)

	require.Len(t, exprs, 1)
	assert.Equal(t, clause.Eq{Column: clause.Column{Name: "status"}, Value: entity.StatusConfirmed}, exprs[0])
	assert.False(t, distinct)
}
