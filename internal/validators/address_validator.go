package validators

import (
	"regexp"
	"unicode/utf8"

	"handoff-address/internal/models"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// minLine1Length is the shortest street line accepted in strict mode.
const minLine1Length = 3

// AddressRules selects the wording and the extra checks of one parsing path.
type AddressRules struct {
	// MissingSuffix completes the missing-field messages, e.g. "is missing".
	MissingSuffix string
	// CheckLine1Length enables the minimum street line length rule.
	CheckLine1Length bool
}

var (
	// StructuredRules apply to records decoded from the autocomplete provider.
	StructuredRules = AddressRules{MissingSuffix: "is missing", CheckLine1Length: true}
	// FreeTextRules apply to manually entered addresses.
	FreeTextRules = AddressRules{MissingSuffix: "is required"}
)

type addressValidator struct {
	rules AddressRules
}

func NewAddressValidator(rules AddressRules) AddressValidator {
	return &addressValidator{rules: rules}
}

// Validate applies the rules in a fixed order: presence of every field, then
// state format, ZIP format and street line length. Format rules only run in
// strict mode.
func (v *addressValidator) Validate(fields models.AddressFields, strict bool) []string {
	errs := make([]string, 0, 5)

	missing := []struct {
		value string
		label string
	}{
		{fields.StreetNumber, "Street number"},
		{fields.StreetName, "Street name"},
		{fields.City, "City"},
		{fields.State, "State"},
		{fields.ZipCode, "ZIP code"},
	}
	for _, m := range missing {
		if m.value == "" {
			errs = append(errs, m.label+" "+v.rules.MissingSuffix)
		}
	}

	if !strict {
		return errs
	}

	if fields.State != "" && utf8.RuneCountInString(fields.State) != 2 {
		errs = append(errs, "State must be 2-letter abbreviation")
	}
	if fields.ZipCode != "" && !zipCodePattern.MatchString(fields.ZipCode) {
		errs = append(errs, "ZIP code must be 5 digits or ZIP+4 format")
	}
	if v.rules.CheckLine1Length && utf8.RuneCountInString(fields.Line1) < minLine1Length {
		errs = append(errs, "Street address too short")
	}

	return errs
}
