// Package query translates the wire-level filter syntax into domain criteria
// and page requests. Filters arrive as "field.operator=value" query
// parameters, e.g. name.contains=rex or age.greaterThanOrEqual=2; unknown
// parameters are ignored, bad values are rejected.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"petcare/internal/domain/criteria"
	domainerrors "petcare/internal/domain/errors"

	"github.com/pkg/errors"
)

func badParam(entityName, field, op string) error {
	return domainerrors.ValidationFailed(entityName, "invalid value for parameter "+field+"."+op)
}

// param returns the first value of field.op, if present.
func param(values url.Values, field, op string) (string, bool) {
	vs, ok := values[field+"."+op]
	if !ok || len(vs) == 0 {
		return "", false
	}

	return vs[0], true
}

// listParam gathers the values of field.op, splitting comma-separated lists
// so both ?f.in=a,b and ?f.in=a&f.in=b work.
func listParam(values url.Values, field, op string) []string {
	var out []string
	for _, raw := range values[field+"."+op] {
		for _, part := range strings.Split(raw, ",") {
			if part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// parseFilter reads the discrete-value operators of one field. It returns
// nil when no operator of the field is present.
func parseFilter[T comparable](values url.Values, entityName, field string, parse func(string) (T, error)) (*criteria.Filter[T], error) {
	var f criteria.Filter[T]
	present := false

	set := func(op string, dst **T) error {
		raw, ok := param(values, field, op)
		if !ok {
			return nil
		}
		v, err := parse(raw)
		if err != nil {
			return badParam(entityName, field, op)
		}
		*dst = &v
		present = true

		return nil
	}

	if err := set("equals", &f.Equals); err != nil {
		return nil, err
	}
	if err := set("notEquals", &f.NotEquals); err != nil {
		return nil, err
	}

	for _, raw := range listParam(values, field, "in") {
		v, err := parse(raw)
		if err != nil {
			return nil, badParam(entityName, field, "in")
		}
		f.In = append(f.In, v)
		present = true
	}
	for _, raw := range listParam(values, field, "notIn") {
		v, err := parse(raw)
		if err != nil {
			return nil, badParam(entityName, field, "notIn")
		}
		f.NotIn = append(f.NotIn, v)
		present = true
	}

	if raw, ok := param(values, field, "specified"); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, badParam(entityName, field, "specified")
		}
		f.Specified = &b
		present = true
	}

	if !present {
		return nil, nil
	}

	return &f, nil
}

// parseRangeFilter adds the ordering operators on top of parseFilter.
func parseRangeFilter[T comparable](values url.Values, entityName, field string, parse func(string) (T, error)) (*criteria.RangeFilter[T], error) {
	base, err := parseFilter(values, entityName, field, parse)
	if err != nil {
		return nil, err
	}

	var f criteria.RangeFilter[T]
	present := base != nil
	if base != nil {
		f.Filter = *base
	}

	set := func(op string, dst **T) error {
		raw, ok := param(values, field, op)
		if !ok {
			return nil
		}
		v, err := parse(raw)
		if err != nil {
			return badParam(entityName, field, op)
		}
		*dst = &v
		present = true

		return nil
	}

	if err := set("greaterThan", &f.GreaterThan); err != nil {
		return nil, err
	}
	if err := set("greaterThanOrEqual", &f.GreaterThanOrEqual); err != nil {
		return nil, err
	}
	if err := set("lessThan", &f.LessThan); err != nil {
		return nil, err
	}
	if err := set("lessThanOrEqual", &f.LessThanOrEqual); err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	return &f, nil
}

// parseStringFilter adds the containment operators on top of parseFilter.
func parseStringFilter(values url.Values, entityName, field string) (*criteria.StringFilter, error) {
	base, err := parseFilter(values, entityName, field, stringValue)
	if err != nil {
		return nil, err
	}

	var f criteria.StringFilter
	present := base != nil
	if base != nil {
		f.Filter = *base
	}

	if raw, ok := param(values, field, "contains"); ok {
		f.Contains = &raw
		present = true
	}
	if raw, ok := param(values, field, "doesNotContain"); ok {
		f.DoesNotContain = &raw
		present = true
	}

	if !present {
		return nil, nil
	}

	return &f, nil
}

// parseDistinct reads the bare distinct flag shared by every criteria.
func parseDistinct(values url.Values, entityName string) (*bool, error) {
	raw := values.Get("distinct")
	if raw == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.ValidationFailed(entityName, "invalid value for parameter distinct")
	}

	return &b, nil
}

// --- Value parsers ---

func stringValue(raw string) (string, error) {
	return raw, nil
}

func int64Value(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)

	return v, errors.WithStack(err)
}

func int32Value(raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)

	return int32(v), errors.WithStack(err)
}

func timeValue(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)

	return t, errors.WithStack(err)
}

// enumValue builds a parser that also rejects values outside the enum.
func enumValue[T ~string](valid func(T) bool) func(string) (T, error) {
	return func(raw string) (T, error) {
		v := T(raw)
		if !valid(v) {
			return v, errors.Errorf("invalid enum value: %s", raw)
		}

		return v, nil
	}
}
