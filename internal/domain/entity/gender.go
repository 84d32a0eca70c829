package entity

// Gender represents the gender of a pet.
type Gender string

const (
	// GenderMale indicates a male pet.
	GenderMale Gender = "MALE"
	// GenderFemale indicates a female pet.
	GenderFemale Gender = "FEMALE"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}
