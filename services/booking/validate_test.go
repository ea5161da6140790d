package booking

import (
	"testing"
	"time"

	"eliezerclean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed Monday keeps the date rules deterministic.
var fixedNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

func TestValidateName(t *testing.T) {
	assert.NotNil(t, ValidateName(""))
	assert.NotNil(t, ValidateName("Al"))
	assert.Nil(t, ValidateName("Ana"))
}

func TestValidatePhone(t *testing.T) {
	assert.Nil(t, ValidatePhone("+40 755 322 752"))
	assert.Nil(t, ValidatePhone("0755123456"))
	assert.Nil(t, ValidatePhone("(0261) 555-123"))

	err := ValidatePhone("12345")
	require.NotNil(t, err)
	assert.Equal(t, "phone", err.Field)

	// Long enough but with forbidden characters.
	assert.NotNil(t, ValidatePhone("abc1234567"))
}

func TestValidateAddress(t *testing.T) {
	assert.NotNil(t, ValidateAddress("Str."))
	assert.Nil(t, ValidateAddress("Str. Exemplu 1"))
}

func TestValidateDate(t *testing.T) {
	assert.NotNil(t, ValidateDate("", fixedNow))
	assert.NotNil(t, ValidateDate("not-a-date", fixedNow))
	assert.NotNil(t, ValidateDate("2026-03-01", fixedNow), "yesterday is rejected")
	assert.Nil(t, ValidateDate("2026-03-02", fixedNow), "today is allowed")
	assert.Nil(t, ValidateDate("2026-03-03", fixedNow))

	err := ValidateDate("2026-03-08", fixedNow)
	require.NotNil(t, err, "Sundays are closed")
	assert.Equal(t, "date", err.Field)
}

func TestValidateTime(t *testing.T) {
	assert.Nil(t, ValidateTime("08:00"))
	assert.Nil(t, ValidateTime("23:59"))
	assert.NotNil(t, ValidateTime(""))
	assert.NotNil(t, ValidateTime("8:00"))
	assert.NotNil(t, ValidateTime("24:00"))
	assert.NotNil(t, ValidateTime("10:60"))
}

func TestValidateStepServiceSelection(t *testing.T) {
	d := models.BookingDraft{}
	errs := ValidateStep(d, 1, fixedNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "serviceType", errs[0].Field)

	d = models.BookingDraft{ServiceType: models.ServiceHome, Size: 80}
	assert.Empty(t, ValidateStep(d, 1, fixedNow))

	d.Size = 10
	errs = ValidateStep(d, 1, fixedNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "size", errs[0].Field)

	// Car detailing has no size bounds.
	d = models.BookingDraft{ServiceType: models.ServiceCar, Size: 0}
	assert.Empty(t, ValidateStep(d, 1, fixedNow))

	d.CarCategory = "truck"
	errs = ValidateStep(d, 1, fixedNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "carCategory", errs[0].Field)

	// Extras must belong to the selected service.
	d = models.BookingDraft{ServiceType: models.ServiceHome, Size: 80, Extras: []string{"polish"}}
	errs = ValidateStep(d, 1, fixedNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "extras", errs[0].Field)
}

func TestValidateDraftCollectsAllSteps(t *testing.T) {
	errs := ValidateDraft(models.BookingDraft{}, fixedNow)
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"serviceType", "date", "time", "name", "phone", "address"} {
		assert.True(t, fields[f], "expected an error for %s", f)
	}
}
