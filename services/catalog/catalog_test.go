package catalog

import (
	"testing"

	"eliezerclean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServices(t *testing.T) {
	services := Services()
	require.Len(t, services, 5)
	for _, s := range services {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Features)
	}
}

func TestServiceTypeInfo(t *testing.T) {
	home, ok := ServiceTypeInfo(models.ServiceHome)
	require.True(t, ok)
	require.NotNil(t, home.Sizes)
	assert.Equal(t, 20, home.Sizes.Min)
	assert.Equal(t, 200, home.Sizes.Max)

	office, ok := ServiceTypeInfo(models.ServiceOffice)
	require.True(t, ok)
	require.NotNil(t, office.Sizes)
	assert.Equal(t, 300, office.Sizes.Max)

	car, ok := ServiceTypeInfo(models.ServiceCar)
	require.True(t, ok)
	assert.Nil(t, car.Sizes, "car detailing has no size input")

	_, ok = ServiceTypeInfo("garden")
	assert.False(t, ok)
}

func TestFindByTitle(t *testing.T) {
	s, ok := FindByTitle("Servicii la Domiciliu")
	require.True(t, ok)
	assert.Equal(t, "home-services", s.ID)

	_, ok = FindByTitle("nu există")
	assert.False(t, ok)
}

func TestExtras(t *testing.T) {
	assert.True(t, ValidExtra(models.ServiceHome, "windows"))
	assert.True(t, ValidExtra(models.ServiceCar, "polish"))
	assert.False(t, ValidExtra(models.ServiceHome, "polish"))
	assert.False(t, ValidExtra(models.ServiceCar, "windows"))

	assert.Equal(t, "Curățare geamuri", ExtraLabel("windows"))
}

func TestCarCategories(t *testing.T) {
	assert.True(t, ValidCarCategory(models.CarSmall))
	assert.False(t, ValidCarCategory("truck"))
	assert.Equal(t, "Mașină mică", CarCategoryLabel(models.CarSmall))
}

func TestServiceTypeLabel(t *testing.T) {
	assert.Equal(t, "Curățenie Casă/Apartament", ServiceTypeLabel(models.ServiceHome))
	assert.Equal(t, "Detailing Auto", ServiceTypeLabel(models.ServiceCar))
	assert.Equal(t, "garden", ServiceTypeLabel("garden"), "unknown types fall back to the raw ID")
}
