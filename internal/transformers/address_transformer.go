package transformers

import (
	"regexp"
	"strings"

	"handoff-address/internal/models"
	"handoff-address/internal/validators"

	"golang.org/x/text/unicode/norm"
)

var (
	stateZipPattern     = regexp.MustCompile(`^([A-Z]{2})\s+(\d{5}(?:-\d{4})?)$`)
	streetPattern       = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	cityStateZipPattern = regexp.MustCompile(`^(.+?)\s+([A-Z]{2})\s+(\d{5}(?:-\d{4})?)$`)
)

type addressTransformer struct {
	structured validators.AddressValidator
	freeText   validators.AddressValidator
}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{
		structured: validators.NewAddressValidator(validators.StructuredRules),
		freeText:   validators.NewAddressValidator(validators.FreeTextRules),
	}
}

// NormalizeInput collapses whitespace runs to single spaces and trims the ends.
func (t *addressTransformer) NormalizeInput(input string) string {
	return strings.Join(strings.Fields(norm.NFC.String(input)), " ")
}

// ParseStructured maps a provider place record onto a CanonicalAddress. Each
// component is assigned to the first category it matches; later components
// of the same category overwrite earlier ones.
func (t *addressTransformer) ParseStructured(detail models.PlaceDetail, strict bool) models.CanonicalAddress {
	var c models.AddressComponents

	for _, component := range detail.AddressComponents {
		switch {
		case component.HasType(models.TypeStreetNumber):
			c.StreetNumber = component.LongName
		case component.HasType(models.TypeRoute):
			c.StreetName = component.LongName
		case component.HasType(models.TypeLocality):
			c.City = component.LongName
		case component.HasType(models.TypeAdminArea1):
			c.State = component.ShortName
		case component.HasType(models.TypePostalCode):
			c.ZipCode = component.LongName
		}
	}

	line1 := models.ComposeLine1(c.StreetNumber, c.StreetName)
	line2 := models.ComposeLine2(c.City, c.State, c.ZipCode)

	errs := t.structured.Validate(models.AddressFields{AddressComponents: c, Line1: line1}, strict)
	return models.NewCanonicalAddress(c, line1, line2, detail.FormattedAddress, errs)
}

// ParseFreeText decomposes a single typed line. The strategy is chosen by the
// number of comma separated parts; unparsed segments are kept verbatim in the
// address lines and reported in the error list.
func (t *addressTransformer) ParseFreeText(input string, strict bool) models.CanonicalAddress {
	normalized := t.NormalizeInput(input)

	parts := strings.Split(normalized, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	var (
		c            models.AddressComponents
		line1, line2 string
		errs         []string
	)

	switch {
	case len(parts) >= 3:
		// "123 Main St, New York, NY 10001"
		line1 = parts[0]
		c.City = parts[1]
		if m := stateZipPattern.FindStringSubmatch(parts[2]); m != nil {
			c.State, c.ZipCode = m[1], m[2]
		} else {
			errs = append(errs, `Could not parse state and ZIP code from "`+parts[2]+`"`)
		}
		errs = splitStreet(line1, &c, errs)
		line2 = models.ComposeLine2(c.City, c.State, c.ZipCode)

	case len(parts) == 2:
		// "123 Main St, New York NY 10001"
		line1 = parts[0]
		if m := cityStateZipPattern.FindStringSubmatch(parts[1]); m != nil {
			c.City, c.State, c.ZipCode = m[1], m[2], m[3]
			line2 = models.ComposeLine2(c.City, c.State, c.ZipCode)
		} else {
			errs = append(errs, `Could not parse city, state, and ZIP from "`+parts[1]+`"`)
			line2 = parts[1]
		}
		errs = splitStreet(line1, &c, errs)

	default:
		errs = append(errs, "Address format not recognized")
		line1 = normalized
	}

	errs = append(errs, t.freeText.Validate(models.AddressFields{AddressComponents: c, Line1: line1}, strict)...)
	return models.NewCanonicalAddress(c, line1, line2, normalized, errs)
}

func splitStreet(street string, c *models.AddressComponents, errs []string) []string {
	m := streetPattern.FindStringSubmatch(street)
	if m == nil {
		return append(errs, `Could not parse street number and name from "`+street+`"`)
	}
	c.StreetNumber, c.StreetName = m[1], m[2]
	return errs
}
