package query

import (
	"net/url"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// BindPetCriteria parses the pet filter parameters.
func BindPetCriteria(values url.Values) (*criteria.PetCriteria, error) {
	var (
		c   criteria.PetCriteria
		err error
	)

	if c.ID, err = parseRangeFilter(values, "pet", "id", int64Value); err != nil {
		return nil, err
	}
	if c.OwnerID, err = parseRangeFilter(values, "pet", "ownerId", int64Value); err != nil {
		return nil, err
	}
	if c.Name, err = parseStringFilter(values, "pet", "name"); err != nil {
		return nil, err
	}
	if c.Species, err = parseStringFilter(values, "pet", "species"); err != nil {
		return nil, err
	}
	if c.Breed, err = parseStringFilter(values, "pet", "breed"); err != nil {
		return nil, err
	}
	if c.Age, err = parseRangeFilter(values, "pet", "age", int32Value); err != nil {
		return nil, err
	}
	if c.Gender, err = parseFilter(values, "pet", "gender", enumValue(entity.Gender.IsValid)); err != nil {
		return nil, err
	}
	if c.PhotoURL, err = parseStringFilter(values, "pet", "photoUrl"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseRangeFilter(values, "pet", "createdAt", timeValue); err != nil {
		return nil, err
	}
	if c.Distinct, err = parseDistinct(values, "pet"); err != nil {
		return nil, err
	}

	return &c, nil
}

// BindUserPetCriteria parses the account filter parameters.
func BindUserPetCriteria(values url.Values) (*criteria.UserPetCriteria, error) {
	var (
		c   criteria.UserPetCriteria
		err error
	)

	if c.ID, err = parseRangeFilter(values, "userPet", "id", int64Value); err != nil {
		return nil, err
	}
	if c.Name, err = parseStringFilter(values, "userPet", "name"); err != nil {
		return nil, err
	}
	if c.Email, err = parseStringFilter(values, "userPet", "email"); err != nil {
		return nil, err
	}
	if c.Phone, err = parseStringFilter(values, "userPet", "phone"); err != nil {
		return nil, err
	}
	if c.Address, err = parseStringFilter(values, "userPet", "address"); err != nil {
		return nil, err
	}
	if c.Role, err = parseFilter(values, "userPet", "role", enumValue(entity.UserRole.IsValid)); err != nil {
		return nil, err
	}
	if c.Avatar, err = parseStringFilter(values, "userPet", "avatar"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseRangeFilter(values, "userPet", "createdAt", timeValue); err != nil {
		return nil, err
	}
	if c.Distinct, err = parseDistinct(values, "userPet"); err != nil {
		return nil, err
	}

	return &c, nil
}

// BindAppointmentCriteria parses the appointment filter parameters.
func BindAppointmentCriteria(values url.Values) (*criteria.AppointmentCriteria, error) {
	var (
		c   criteria.AppointmentCriteria
		err error
	)

	if c.ID, err = parseRangeFilter(values, "appointment", "id", int64Value); err != nil {
		return nil, err
	}
	if c.PetID, err = parseRangeFilter(values, "appointment", "petId", int64Value); err != nil {
		return nil, err
	}
	if c.OwnerID, err = parseRangeFilter(values, "appointment", "ownerId", int64Value); err != nil {
		return nil, err
	}
	if c.VetID, err = parseRangeFilter(values, "appointment", "vetId", int64Value); err != nil {
		return nil, err
	}
	if c.ApptTime, err = parseRangeFilter(values, "appointment", "apptTime", timeValue); err != nil {
		return nil, err
	}
	if c.Status, err = parseFilter(values, "appointment", "status", enumValue(entity.AppointmentStatus.IsValid)); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseRangeFilter(values, "appointment", "createdAt", timeValue); err != nil {
		return nil, err
	}
	if c.Distinct, err = parseDistinct(values, "appointment"); err != nil {
		return nil, err
	}

	return &c, nil
}

// BindHealthRecordCriteria parses the health record filter parameters.
func BindHealthRecordCriteria(values url.Values) (*criteria.HealthRecordCriteria, error) {
	var (
		c   criteria.HealthRecordCriteria
		err error
	)

	if c.ID, err = parseRangeFilter(values, "healthRecord", "id", int64Value); err != nil {
		return nil, err
	}
	if c.PetID, err = parseRangeFilter(values, "healthRecord", "petId", int64Value); err != nil {
		return nil, err
	}
	if c.VetID, err = parseRangeFilter(values, "healthRecord", "vetId", int64Value); err != nil {
		return nil, err
	}
	if c.ApptID, err = parseRangeFilter(values, "healthRecord", "apptId", int64Value); err != nil {
		return nil, err
	}
	if c.Diagnosis, err = parseStringFilter(values, "healthRecord", "diagnosis"); err != nil {
		return nil, err
	}
	if c.Treatment, err = parseStringFilter(values, "healthRecord", "treatment"); err != nil {
		return nil, err
	}
	if c.Notes, err = parseStringFilter(values, "healthRecord", "notes"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseRangeFilter(values, "healthRecord", "createdAt", timeValue); err != nil {
		return nil, err
	}
	if c.Distinct, err = parseDistinct(values, "healthRecord"); err != nil {
		return nil, err
	}

	return &c, nil
}

// BindDiscoveryCriteria parses the discovery filter parameters.
func BindDiscoveryCriteria(values url.Values) (*criteria.DiscoveryCriteria, error) {
	var (
		c   criteria.DiscoveryCriteria
		err error
	)

	if c.ID, err = parseRangeFilter(values, "discovery", "id", int64Value); err != nil {
		return nil, err
	}
	if c.Name, err = parseStringFilter(values, "discovery", "name"); err != nil {
		return nil, err
	}
	if c.Description, err = parseStringFilter(values, "discovery", "description"); err != nil {
		return nil, err
	}
	if c.Category, err = parseStringFilter(values, "discovery", "category"); err != nil {
		return nil, err
	}
	if c.Requirements, err = parseStringFilter(values, "discovery", "requirements"); err != nil {
		return nil, err
	}
	if c.Location, err = parseStringFilter(values, "discovery", "location"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseRangeFilter(values, "discovery", "createdAt", timeValue); err != nil {
		return nil, err
	}
	if c.Distinct, err = parseDistinct(values, "discovery"); err != nil {
		return nil, err
	}

	return &c, nil
}
