package validators

import (
	"handoff-address/internal/models"
)

type AddressValidator interface {
	// Validate returns the ordered list of defects found in fields. It never
	// fails; an empty result means the address is valid.
	Validate(fields models.AddressFields, strict bool) []string
}
