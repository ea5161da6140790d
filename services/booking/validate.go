package booking

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"eliezerclean/models"
	"eliezerclean/services/catalog"
)

// Digits, plus, parentheses, hyphen and space only.
var phonePattern = regexp.MustCompile(`^[0-9+\s()\-]+$`)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

func fieldErr(field, message string) *models.FieldError {
	return &models.FieldError{Field: field, Message: message}
}

// ValidateName requires at least 3 characters.
func ValidateName(name string) *models.FieldError {
	if utf8.RuneCountInString(name) < 3 {
		return fieldErr("name", "Numele trebuie să conțină cel puțin 3 caractere")
	}
	return nil
}

// ValidatePhone requires at least 10 characters from the allowed class.
func ValidatePhone(phone string) *models.FieldError {
	if utf8.RuneCountInString(phone) < 10 {
		return fieldErr("phone", "Numărul de telefon trebuie să conțină cel puțin 10 caractere")
	}
	if !phonePattern.MatchString(phone) {
		return fieldErr("phone", "Numărul de telefon poate conține doar cifre și simboluri: +()-")
	}
	return nil
}

// ValidateAddress requires at least 5 characters.
func ValidateAddress(address string) *models.FieldError {
	if utf8.RuneCountInString(address) < 5 {
		return fieldErr("address", "Adresa trebuie să conțină cel puțin 5 caractere")
	}
	return nil
}

// ValidateDate rejects missing, malformed, past and Sunday dates.
func ValidateDate(date string, now time.Time) *models.FieldError {
	if date == "" {
		return fieldErr("date", "Vă rugăm selectați o dată")
	}
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return fieldErr("date", "Data nu este validă")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return fieldErr("date", "Data selectată nu mai este disponibilă")
	}
	if d.Weekday() == time.Sunday {
		return fieldErr("date", "Duminica este zi liberă; vă rugăm alegeți altă dată")
	}
	return nil
}

// ValidateTime requires an HH:MM time of day.
func ValidateTime(t string) *models.FieldError {
	if t == "" {
		return fieldErr("time", "Vă rugăm selectați o oră")
	}
	if !timePattern.MatchString(t) {
		return fieldErr("time", "Ora nu este validă")
	}
	return nil
}

// validateServiceSelection checks the step-1 fields: service type, size
// bounds, car category and extras.
func validateServiceSelection(d models.BookingDraft) []models.FieldError {
	var errs []models.FieldError

	if d.ServiceType == "" {
		return append(errs, *fieldErr("serviceType", "Vă rugăm selectați un serviciu"))
	}
	st, ok := catalog.ServiceTypeInfo(d.ServiceType)
	if !ok {
		return append(errs, *fieldErr("serviceType", "Serviciul selectat nu există"))
	}

	if st.Sizes != nil && (d.Size < st.Sizes.Min || d.Size > st.Sizes.Max) {
		errs = append(errs, *fieldErr("size",
			fmt.Sprintf("Dimensiunea trebuie să fie între %d și %d m²", st.Sizes.Min, st.Sizes.Max)))
	}
	if d.ServiceType == models.ServiceCar && d.CarCategory != "" && !catalog.ValidCarCategory(d.CarCategory) {
		errs = append(errs, *fieldErr("carCategory", "Tipul de mașină selectat nu există"))
	}
	for _, e := range d.Extras {
		if !catalog.ValidExtra(d.ServiceType, e) {
			errs = append(errs, *fieldErr("extras",
				fmt.Sprintf("Serviciul extra %q nu este disponibil pentru serviciul ales", e)))
		}
	}
	return errs
}

// ValidateStep checks the fields required by one wizard step. The review
// step has no requirements of its own.
func ValidateStep(d models.BookingDraft, step int, now time.Time) []models.FieldError {
	var errs []models.FieldError
	switch step {
	case 1:
		errs = validateServiceSelection(d)
	case 2:
		if e := ValidateDate(d.Date, now); e != nil {
			errs = append(errs, *e)
		}
		if e := ValidateTime(d.Time); e != nil {
			errs = append(errs, *e)
		}
	case 3:
		if e := ValidateName(d.Name); e != nil {
			errs = append(errs, *e)
		}
		if e := ValidatePhone(d.Phone); e != nil {
			errs = append(errs, *e)
		}
		if e := ValidateAddress(d.Address); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

// ValidateDraft checks every step's requirements, for final confirmation.
func ValidateDraft(d models.BookingDraft, now time.Time) []models.FieldError {
	var errs []models.FieldError
	for step := 1; step < FinalStep; step++ {
		errs = append(errs, ValidateStep(d, step, now)...)
	}
	return errs
}

// validateTouched re-checks only the fields present in an update so the
// caller can surface inline errors without blocking the edit itself.
func validateTouched(d models.BookingDraft, upd models.DraftUpdate, now time.Time) []models.FieldError {
	var errs []models.FieldError
	if upd.ServiceType != nil || upd.Size != nil || upd.CarCategory != nil || upd.Extras != nil {
		errs = append(errs, validateServiceSelection(d)...)
	}
	if upd.Date != nil {
		if e := ValidateDate(d.Date, now); e != nil {
			errs = append(errs, *e)
		}
	}
	if upd.Time != nil {
		if e := ValidateTime(d.Time); e != nil {
			errs = append(errs, *e)
		}
	}
	if upd.Name != nil {
		if e := ValidateName(d.Name); e != nil {
			errs = append(errs, *e)
		}
	}
	if upd.Phone != nil {
		if e := ValidatePhone(d.Phone); e != nil {
			errs = append(errs, *e)
		}
	}
	if upd.Address != nil {
		if e := ValidateAddress(d.Address); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}
