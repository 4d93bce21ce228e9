// internal/models/address.go
package models

import (
	"encoding/json"
	"strings"
)

// AddressComponents holds the individually extracted parts of an address.
// Any field may be empty when it could not be resolved.
type AddressComponents struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// AddressFields is the input to the validation rule set.
type AddressFields struct {
	AddressComponents
	Line1 string
}

// CanonicalAddress is the normalized, validated address record produced by
// either parser. It is immutable: every parse yields a fresh value and the
// accessors never expose internal slices.
type CanonicalAddress struct {
	line1            string
	line2            string
	components       AddressComponents
	formattedAddress string
	validationErrors []string
}

// NewCanonicalAddress builds a record from already parsed parts. Validity is
// derived from the error list and cannot be set independently.
func NewCanonicalAddress(components AddressComponents, line1, line2, formatted string, validationErrors []string) CanonicalAddress {
	errs := make([]string, len(validationErrors))
	copy(errs, validationErrors)
	return CanonicalAddress{
		line1:            line1,
		line2:            line2,
		components:       components,
		formattedAddress: formatted,
		validationErrors: errs,
	}
}

// ComposeLine1 joins street number and name: "{number} {name}" trimmed.
func ComposeLine1(streetNumber, streetName string) string {
	return strings.TrimSpace(streetNumber + " " + streetName)
}

// ComposeLine2 joins the locality parts: "{city}, {state} {zip}" trimmed.
func ComposeLine2(city, state, zipCode string) string {
	return strings.TrimSpace(city + ", " + state + " " + zipCode)
}

func (a CanonicalAddress) Line1() string            { return a.line1 }
func (a CanonicalAddress) Line2() string            { return a.line2 }
func (a CanonicalAddress) FormattedAddress() string { return a.formattedAddress }
func (a CanonicalAddress) Components() AddressComponents {
	return a.components
}

// IsValid reports whether no validation errors were recorded.
func (a CanonicalAddress) IsValid() bool {
	return len(a.validationErrors) == 0
}

// ValidationErrors returns a copy of the ordered defect list.
func (a CanonicalAddress) ValidationErrors() []string {
	out := make([]string, len(a.validationErrors))
	copy(out, a.validationErrors)
	return out
}

// Typed accessors. The boolean is false when the component was not resolved.

func (a CanonicalAddress) StreetNumber() (string, bool) { return present(a.components.StreetNumber) }
func (a CanonicalAddress) StreetName() (string, bool)   { return present(a.components.StreetName) }
func (a CanonicalAddress) City() (string, bool)         { return present(a.components.City) }
func (a CanonicalAddress) State() (string, bool)        { return present(a.components.State) }
func (a CanonicalAddress) ZipCode() (string, bool)      { return present(a.components.ZipCode) }

func present(s string) (string, bool) {
	return s, s != ""
}

type canonicalAddressJSON struct {
	Address1         string   `json:"address1"`
	Address2         string   `json:"address2"`
	StreetNumber     string   `json:"street_number"`
	StreetName       string   `json:"street_name"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	ZipCode          string   `json:"zip_code"`
	FormattedAddress string   `json:"formatted_address"`
	IsValid          bool     `json:"is_valid"`
	ValidationErrors []string `json:"validation_errors"`
}

// MarshalJSON renders the record in the wire shape used by the web client.
func (a CanonicalAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(canonicalAddressJSON{
		Address1:         a.line1,
		Address2:         a.line2,
		StreetNumber:     a.components.StreetNumber,
		StreetName:       a.components.StreetName,
		City:             a.components.City,
		State:            a.components.State,
		ZipCode:          a.components.ZipCode,
		FormattedAddress: a.formattedAddress,
		IsValid:          a.IsValid(),
		ValidationErrors: a.ValidationErrors(),
	})
}
