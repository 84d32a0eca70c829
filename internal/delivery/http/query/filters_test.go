package query

import (
	"net/url"
	"testing"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindPetCriteria_AllOperatorForms(t *testing.T) {
	values, err := url.ParseQuery(
		"ownerId.equals=7" +
			"&name.contains=rex" +
			"&species.notEquals=cat" +
			"&age.greaterThanOrEqual=2&age.lessThan=10" +
			"&gender.in=MALE,FEMALE" +
			"&breed.specified=false" +
			"&createdAt.greaterThan=2025-01-01T00:00:00Z" +
			"&distinct=true")
	require.NoError(t, err)

	c, err := BindPetCriteria(values)
	require.NoError(t, err)

	require.NotNil(t, c.OwnerID)
	assert.Equal(t, int64(7), *c.OwnerID.Equals)

	require.NotNil(t, c.Name)
	assert.Equal(t, "rex", *c.Name.Contains)

	require.NotNil(t, c.Species)
	assert.Equal(t, "cat", *c.Species.NotEquals)

	require.NotNil(t, c.Age)
	assert.Equal(t, int32(2), *c.Age.GreaterThanOrEqual)
	assert.Equal(t, int32(10), *c.Age.LessThan)

	require.NotNil(t, c.Gender)
	assert.Equal(t, []entity.Gender{entity.GenderMale, entity.GenderFemale}, c.Gender.In)

	require.NotNil(t, c.Breed)
	require.NotNil(t, c.Breed.Specified)
	assert.False(t, *c.Breed.Specified)

	require.NotNil(t, c.CreatedAt)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *c.CreatedAt.GreaterThan)

	require.NotNil(t, c.Distinct)
	assert.True(t, *c.Distinct)
}

func TestBindPetCriteria_RepeatedInParams(t *testing.T) {
	values := url.Values{"id.in": []string{"1,2", "3"}}

	c, err := BindPetCriteria(values)
	require.NoError(t, err)

	require.NotNil(t, c.ID)
	assert.Equal(t, []int64{1, 2, 3}, c.ID.In)
}

func TestBindPetCriteria_UnknownParamsIgnored(t *testing.T) {
	values := url.Values{
		"bogus.equals": []string{"x"},
		"page":         []string{"3"},
	}

	c, err := BindPetCriteria(values)
	require.NoError(t, err)

	assert.Nil(t, c.ID)
	assert.Nil(t, c.Name)
	assert.Nil(t, c.Distinct)
}

func TestBindPetCriteria_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric id", "id.equals=abc"},
		{"bad timestamp", "createdAt.lessThan=yesterday"},
		{"bad enum", "gender.equals=OTHER"},
		{"bad specified flag", "name.specified=maybe"},
		{"bad distinct flag", "distinct=maybe"},
		{"bad in element", "id.in=1,x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			c, err := BindPetCriteria(values)

			assert.Nil(t, c)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.KeyValidationFailed, appErr.ErrorKey())
		})
	}
}

func TestBindAppointmentCriteria_StatusEnum(t *testing.T) {
	values, err := url.ParseQuery("status.notIn=CANCELLED,DONE&apptTime.greaterThan=2025-06-01T12:00:00Z")
	require.NoError(t, err)

	c, err := BindAppointmentCriteria(values)
	require.NoError(t, err)

	require.NotNil(t, c.Status)
	assert.Equal(t, []entity.AppointmentStatus{entity.StatusCancelled, entity.StatusDone}, c.Status.NotIn)
	require.NotNil(t, c.ApptTime)
	assert.Equal(t, 12, c.ApptTime.GreaterThan.Hour())
}

func TestBindUserPetCriteria_HasNoPasswordFilter(t *testing.T) {
	values := url.Values{"passwordHash.contains": []string{"secret"}}

	c, err := BindUserPetCriteria(values)
	require.NoError(t, err)

	// The hash column is simply not filterable; the parameter is ignored.
	assert.Equal(t, &criteria.UserPetCriteria{}, c)
}
