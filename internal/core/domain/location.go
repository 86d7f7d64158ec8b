package domain

import "strings"

// recognizedCities maps a city name to its state. The platform currently
// operates in Nigeria only.
var recognizedCities = []struct {
	City  string
	State string
}{
	{"Lagos", "Lagos"},
	{"Abuja", "FCT"},
	{"Port Harcourt", "Rivers"},
	{"Ibadan", "Oyo"},
	{"Kano", "Kano"},
	{"Benin City", "Edo"},
	{"Kaduna", "Kaduna"},
	{"Abeokuta", "Ogun"},
	{"Jos", "Plateau"},
	{"Ilorin", "Kwara"},
	{"Owerri", "Imo"},
	{"Enugu", "Enugu"},
	{"Calabar", "Cross River"},
	{"Uyo", "Akwa Ibom"},
	{"Akure", "Ondo"},
	{"Sokoto", "Sokoto"},
	{"Maiduguri", "Borno"},
	{"Yola", "Adamawa"},
	{"Bauchi", "Bauchi"},
	{"Makurdi", "Benue"},
}

// Country is fixed for every resolved location.
const Country = "Nigeria"

// ResolveLocation matches a free-text location against the recognized
// city table. It returns the city and state on a match, or
// ErrUnrecognizedLocation when no known city appears in the text.
func ResolveLocation(location string) (city, state string, err error) {
	for _, c := range recognizedCities {
		if strings.Contains(location, c.City) {
			return c.City, c.State, nil
		}
	}
	return "", "", ErrUnrecognizedLocation
}
