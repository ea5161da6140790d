// Package catalog holds the static service offering data shown on the site
// and referenced by the booking wizard. It is read-only reference data.
package catalog

import "eliezerclean/models"

var services = []models.Service{
	{
		ID:          "auto-detailing",
		Title:       "Detailing Auto Premium",
		Description: "Servicii complete de curățare și întreținere pentru interiorul și exteriorul mașinii dumneavoastră",
		Features: []string{
			"Curățare interior profundă",
			"Aspirare și curățare tapițerie",
			"Dezinfectare și împrospătare",
			"Curățare și protecție bord și plastic",
		},
	},
	{
		ID:          "carpets-upholstery",
		Title:       "Curățare Covoare & Tapițerie",
		Description: "Servicii profesionale de curățare pentru toate tipurile de covoare și tapițerii",
		Features: []string{
			"Curățare profundă cu abur",
			"Îndepărtare pete dificile",
			"Dezinfectare și împrospătare",
			"Tratamente anti-acarieni",
		},
	},
	{
		ID:          "disinfection",
		Title:       "Igienizare & Dezinfectare",
		Description: "Servicii complete de igienizare și dezinfectare pentru spații comerciale și rezidențiale",
		Features: []string{
			"Dezinfectare profesională",
			"Eliminare bacterii și viruși",
			"Tratamente anti-mucegai",
			"Certificate de igienizare",
		},
	},
	{
		ID:          "furniture-surfaces",
		Title:       "Curățare Mobilier & Suprafețe",
		Description: "Îngrijire specializată pentru mobilierul și suprafețele delicate din casa dumneavoastră",
		Features: []string{
			"Curățare mobilier tapițat",
			"Tratamente pentru piele",
			"Curățare și protejare marmură",
			"Lustruire suprafețe delicate",
		},
	},
	{
		ID:          "home-services",
		Title:       "Servicii la Domiciliu",
		Description: "Tu te relaxezi, noi ne ocupăm de curățenie! Servicii complete de întreținere pentru casa ta",
		Features:    []string{"Programare flexibilă", "Personal calificat", "Produse premium", "Satisfacție garantată"},
	},
}

var serviceTypes = []models.ServiceTypeInfo{
	{
		ID:    models.ServiceHome,
		Label: "Curățenie Casă/Apartament",
		Extras: []models.Extra{
			{ID: "windows", Label: "Curățare geamuri"},
			{ID: "deep", Label: "Curățare profundă"},
		},
		Sizes: &models.SizeRng{Min: 20, Max: 200},
	},
	{
		ID:    models.ServiceCar,
		Label: "Detailing Auto",
		Extras: []models.Extra{
			{ID: "polish", Label: "Polish și ceruire"},
			{ID: "leather", Label: "Tratament piele"},
		},
	},
	{
		ID:    models.ServiceOffice,
		Label: "Curățenie Birou/Spațiu Comercial",
		Extras: []models.Extra{
			{ID: "windows", Label: "Curățare geamuri"},
			{ID: "deep", Label: "Curățare profundă"},
		},
		Sizes: &models.SizeRng{Min: 20, Max: 300},
	},
}

var carCategoryLabels = map[string]string{
	models.CarSmall:  "Mașină mică",
	models.CarMedium: "Mașină medie",
	models.CarLarge:  "Mașină mare",
}

// Services returns the full site catalog.
func Services() []models.Service {
	return services
}

// ServiceTypes returns the wizard's selectable service types.
func ServiceTypes() []models.ServiceTypeInfo {
	return serviceTypes
}

// FindByTitle looks a catalog entry up by its display title.
func FindByTitle(title string) (models.Service, bool) {
	for _, s := range services {
		if s.Title == title {
			return s, true
		}
	}
	return models.Service{}, false
}

// ServiceTypeInfo returns the wizard service type with the given ID.
func ServiceTypeInfo(id string) (models.ServiceTypeInfo, bool) {
	for _, st := range serviceTypes {
		if st.ID == id {
			return st, true
		}
	}
	return models.ServiceTypeInfo{}, false
}

// ServiceTypeLabel returns the display label for a wizard service type,
// falling back to the raw ID for unknown values.
func ServiceTypeLabel(id string) string {
	if st, ok := ServiceTypeInfo(id); ok {
		return st.Label
	}
	return id
}

// ValidServiceType reports whether id is a selectable wizard service type.
func ValidServiceType(id string) bool {
	_, ok := ServiceTypeInfo(id)
	return ok
}

// ValidExtra reports whether the extra applies to the given service type.
func ValidExtra(serviceType, extra string) bool {
	st, ok := ServiceTypeInfo(serviceType)
	if !ok {
		return false
	}
	for _, e := range st.Extras {
		if e.ID == extra {
			return true
		}
	}
	return false
}

// ExtraLabel returns the display label for an extra, falling back to the ID.
func ExtraLabel(id string) string {
	for _, st := range serviceTypes {
		for _, e := range st.Extras {
			if e.ID == id {
				return e.Label
			}
		}
	}
	return id
}

// ValidCarCategory reports whether c is a known car category.
func ValidCarCategory(c string) bool {
	_, ok := carCategoryLabels[c]
	return ok
}

// CarCategoryLabel returns the display label for a car category.
func CarCategoryLabel(c string) string {
	if l, ok := carCategoryLabels[c]; ok {
		return l
	}
	return c
}
