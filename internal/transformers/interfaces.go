package transformers

import (
	"handoff-address/internal/models"
)

type AddressTransformer interface {
	ParseStructured(detail models.PlaceDetail, strict bool) models.CanonicalAddress
	ParseFreeText(input string, strict bool) models.CanonicalAddress
	NormalizeInput(input string) string
}
