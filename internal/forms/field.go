// Package forms holds the pure validation, progress and normalization rules
// for the collection point and user forms. Nothing here performs I/O.
package forms

import (
	"github.com/recicla365/app-ecopontos/internal/models"
)

// Field identifies a form input
type Field string

// Collection point form fields
const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldCEP            Field = "cep"
	FieldStreet         Field = "street"
	FieldNumber         Field = "number"
	FieldComplement     Field = "complement"
	FieldNeighborhood   Field = "neighborhood"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldLatitude       Field = "latitude"
	FieldLongitude      Field = "longitude"
	FieldAcceptedWastes Field = "acceptedWastes"
)

// User form fields
const (
	FieldEmail           Field = "email"
	FieldCPF             Field = "cpf"
	FieldGender          Field = "gender"
	FieldBirthDate       Field = "birthDate"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Errors maps each violated field to its user-facing message. Empty means valid.
type Errors map[Field]string

// IsValid reports whether no rule was violated
func (e Errors) IsValid() bool {
	return len(e) == 0
}

// Value is a typed field value: text inputs use Text, the waste selection uses Wastes.
type Value struct {
	Text   string
	Wastes []models.WasteType
}

// TextValue wraps a text input value
func TextValue(s string) Value {
	return Value{Text: s}
}

// WastesValue wraps a waste type selection
func WastesValue(wastes ...models.WasteType) Value {
	return Value{Wastes: wastes}
}

type setter func(*models.CollectionPointForm, Value)

func textSetter(get func(*models.CollectionPointForm) *string) setter {
	return func(f *models.CollectionPointForm, v Value) {
		*get(f) = v.Text
	}
}

var collectionPointSetters = map[Field]setter{
	FieldName:         textSetter(func(f *models.CollectionPointForm) *string { return &f.Name }),
	FieldDescription:  textSetter(func(f *models.CollectionPointForm) *string { return &f.Description }),
	FieldCEP:          textSetter(func(f *models.CollectionPointForm) *string { return &f.CEP }),
	FieldStreet:       textSetter(func(f *models.CollectionPointForm) *string { return &f.Street }),
	FieldNumber:       textSetter(func(f *models.CollectionPointForm) *string { return &f.Number }),
	FieldComplement:   textSetter(func(f *models.CollectionPointForm) *string { return &f.Complement }),
	FieldNeighborhood: textSetter(func(f *models.CollectionPointForm) *string { return &f.Neighborhood }),
	FieldCity:         textSetter(func(f *models.CollectionPointForm) *string { return &f.City }),
	FieldState:        textSetter(func(f *models.CollectionPointForm) *string { return &f.State }),
	FieldLatitude:     textSetter(func(f *models.CollectionPointForm) *string { return &f.Latitude }),
	FieldLongitude:    textSetter(func(f *models.CollectionPointForm) *string { return &f.Longitude }),
	FieldAcceptedWastes: func(f *models.CollectionPointForm, v Value) {
		f.AcceptedWastes = append([]models.WasteType(nil), v.Wastes...)
	},
}

// ParseCollectionPointField resolves a field name as sent by clients
func ParseCollectionPointField(name string) (Field, bool) {
	f := Field(name)
	_, ok := collectionPointSetters[f]
	return f, ok
}

// WithField returns a copy of form with field overridden by value.
// Unknown fields leave the copy unchanged.
func WithField(form models.CollectionPointForm, field Field, value Value) models.CollectionPointForm {
	form.AcceptedWastes = append([]models.WasteType(nil), form.AcceptedWastes...)
	if set, ok := collectionPointSetters[field]; ok {
		set(&form, value)
	}
	return form
}
