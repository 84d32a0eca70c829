// Package criteria defines the optional-filter model used for dynamic list
// queries. Each entity has a criteria struct whose fields are nil-able
// filters; a nil filter (or a nil operand inside one) contributes no
// constraint, so an empty criteria matches every record. The persistence
// layer translates a populated criteria into a single AND-composed predicate.
package criteria

// Filter matches a field against discrete values. The zero value matches
// everything; each non-nil operand adds one condition.
type Filter[T comparable] struct {
	Equals    *T
	NotEquals *T
	In        []T
	NotIn     []T
	// Specified filters on presence: true keeps rows where the field is not
	// null, false keeps rows where it is null.
	Specified *bool
}

// RangeFilter extends Filter with ordering comparisons. It is used for
// numeric, identifier and timestamp fields.
type RangeFilter[T comparable] struct {
	Filter[T]
	GreaterThan        *T
	GreaterThanOrEqual *T
	LessThan           *T
	LessThanOrEqual    *T
}

// StringFilter extends Filter with case-insensitive containment checks.
type StringFilter struct {
	Filter[string]
	Contains       *string
	DoesNotContain *string
}
