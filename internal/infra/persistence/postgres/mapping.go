package postgres

import "time"

// timePtr turns a datastore timestamp into the domain's optional form. A
// zero value means the column was never populated.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

// toStringPtr converts an optional domain enum to its column form.
func toStringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}

	s := string(*v)

	return &s
}

// fromStringPtr converts an optional column value back to a domain enum.
func fromStringPtr[T ~string](v *string) *T {
	if v == nil {
		return nil
	}

	t := T(*v)

	return &t
}
