package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CreditType – immutable value object
// ---------------------------------------------------------------------------

// CreditType represents the product category of a requested credit.
type CreditType struct {
	value string
}

const (
	creditTypePersonal  = "PERSONAL"
	creditTypeMortgage  = "MORTGAGE"
	creditTypeAuto      = "AUTO"
	creditTypeEducation = "EDUCATION"
	creditTypeOther     = "OTHER"
)

var (
	CreditTypePersonal  = CreditType{value: creditTypePersonal}
	CreditTypeMortgage  = CreditType{value: creditTypeMortgage}
	CreditTypeAuto      = CreditType{value: creditTypeAuto}
	CreditTypeEducation = CreditType{value: creditTypeEducation}
	CreditTypeOther     = CreditType{value: creditTypeOther}
)

var validCreditTypes = map[string]CreditType{
	creditTypePersonal:  CreditTypePersonal,
	creditTypeMortgage:  CreditTypeMortgage,
	creditTypeAuto:      CreditTypeAuto,
	creditTypeEducation: CreditTypeEducation,
	creditTypeOther:     CreditTypeOther,
}

// NewCreditType creates a CreditType from a raw string.
func NewCreditType(s string) (CreditType, error) {
	v, ok := validCreditTypes[s]
	if !ok {
		return CreditType{}, fmt.Errorf("invalid credit type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the credit type.
func (t CreditType) String() string { return t.value }

// IsZero returns true when the credit type has not been initialised.
func (t CreditType) IsZero() bool { return t.value == "" }

// Equal returns true when both credit types match.
func (t CreditType) Equal(other CreditType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// DocumentType – immutable value object
// ---------------------------------------------------------------------------

// DocumentType classifies a supporting document attached to an analysis.
type DocumentType struct {
	value string
}

const (
	documentTypeIdentification      = "IDENTIFICATION"
	documentTypeIncomeProof         = "INCOME_PROOF"
	documentTypeBankReference       = "BANK_REFERENCE"
	documentTypeCommercialReference = "COMMERCIAL_REFERENCE"
	documentTypeOther               = "OTHER"
)

var (
	DocumentTypeIdentification      = DocumentType{value: documentTypeIdentification}
	DocumentTypeIncomeProof         = DocumentType{value: documentTypeIncomeProof}
	DocumentTypeBankReference       = DocumentType{value: documentTypeBankReference}
	DocumentTypeCommercialReference = DocumentType{value: documentTypeCommercialReference}
	DocumentTypeOther               = DocumentType{value: documentTypeOther}
)

var validDocumentTypes = map[string]DocumentType{
	documentTypeIdentification:      DocumentTypeIdentification,
	documentTypeIncomeProof:         DocumentTypeIncomeProof,
	documentTypeBankReference:       DocumentTypeBankReference,
	documentTypeCommercialReference: DocumentTypeCommercialReference,
	documentTypeOther:               DocumentTypeOther,
}

// NewDocumentType creates a DocumentType from a raw string.
func NewDocumentType(s string) (DocumentType, error) {
	v, ok := validDocumentTypes[s]
	if !ok {
		return DocumentType{}, fmt.Errorf("invalid document type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the document type.
func (t DocumentType) String() string { return t.value }

// IsZero returns true when the document type has not been initialised.
func (t DocumentType) IsZero() bool { return t.value == "" }

// Equal returns true when both document types match.
func (t DocumentType) Equal(other DocumentType) bool { return t.value == other.value }
