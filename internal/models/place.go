package models

// Component types recognised by the structured-record parser.
const (
	TypeStreetNumber = "street_number"
	TypeRoute        = "route"
	TypeLocality     = "locality"
	TypeAdminArea1   = "administrative_area_level_1"
	TypePostalCode   = "postal_code"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceComponent is one typed piece of a place-detail record.
type PlaceComponent struct {
	Types     []string `json:"types"`
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
}

// HasType reports whether the component carries the given type.
func (c PlaceComponent) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// PlaceDetail is a structured address record returned by the autocomplete
// collaborator for a single suggestion.
type PlaceDetail struct {
	PlaceID           string           `json:"place_id,omitempty"`
	FormattedAddress  string           `json:"formatted_address"`
	AddressComponents []PlaceComponent `json:"address_components"`
	Location          *LatLng          `json:"location,omitempty"`
}

// ComponentValue returns the value of the last component carrying type t,
// using the short form when short is set.
func (d PlaceDetail) ComponentValue(t string, short bool) (string, bool) {
	var (
		value string
		found bool
	)
	for _, c := range d.AddressComponents {
		if !c.HasType(t) {
			continue
		}
		found = true
		if short {
			value = c.ShortName
		} else {
			value = c.LongName
		}
	}
	return value, found
}

type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// AddressSuggestion is one autocomplete prediction.
type AddressSuggestion struct {
	Description          string               `json:"description"`
	PlaceID              string               `json:"place_id"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
	Types                []string             `json:"types"`
}

// KeyStatus describes whether the autocomplete provider accepts our key.
type KeyStatus struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
