package valueobject

import "fmt"

// IdentificationType classifies the identity document of a client.
type IdentificationType struct {
	value string
}

const (
	identificationTypeDNI           = "DNI"
	identificationTypePassport      = "PASSPORT"
	identificationTypeRUC           = "RUC"
	identificationTypeForeignerCard = "FOREIGNER_CARD"
)

var (
	IdentificationTypeDNI           = IdentificationType{value: identificationTypeDNI}
	IdentificationTypePassport      = IdentificationType{value: identificationTypePassport}
	IdentificationTypeRUC           = IdentificationType{value: identificationTypeRUC}
	IdentificationTypeForeignerCard = IdentificationType{value: identificationTypeForeignerCard}
)

var validIdentificationTypes = map[string]IdentificationType{
	identificationTypeDNI:           IdentificationTypeDNI,
	identificationTypePassport:      IdentificationTypePassport,
	identificationTypeRUC:           IdentificationTypeRUC,
	identificationTypeForeignerCard: IdentificationTypeForeignerCard,
}

// NewIdentificationType creates an IdentificationType from a raw string.
func NewIdentificationType(s string) (IdentificationType, error) {
	v, ok := validIdentificationTypes[s]
	if !ok {
		return IdentificationType{}, fmt.Errorf("invalid identification type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the identification type.
func (t IdentificationType) String() string { return t.value }

// IsZero returns true when the identification type has not been initialised.
func (t IdentificationType) IsZero() bool { return t.value == "" }

// Equal returns true when both identification types match.
func (t IdentificationType) Equal(other IdentificationType) bool { return t.value == other.value }
