package forms

import (
	"regexp"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

// MinPasswordLength is the minimum password size accepted at registration
const MinPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProfileForm is the editable user profile
type ProfileForm struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	CPF          string        `json:"cpf"`
	Gender       models.Gender `json:"gender"`
	BirthDate    string        `json:"birthDate"`
	CEP          string        `json:"cep"`
	Street       string        `json:"street"`
	Number       string        `json:"number"`
	Complement   string        `json:"complement"`
	Neighborhood string        `json:"neighborhood"`
	City         string        `json:"city"`
	State        string        `json:"state"`
}

// RegisterForm is the sign-up form: a profile plus password confirmation
type RegisterForm struct {
	ProfileForm
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ValidateProfile checks identity and address fields shared by sign-up and profile edit
func ValidateProfile(form ProfileForm) Errors {
	errs := Errors{}

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		errs[FieldName] = "Nome é obrigatório"
	case utils.RuneLen(name) < 2:
		errs[FieldName] = "Nome deve ter pelo menos 2 caracteres"
	}

	switch {
	case strings.TrimSpace(form.Email) == "":
		errs[FieldEmail] = "Email é obrigatório"
	case !emailRegex.MatchString(strings.TrimSpace(form.Email)):
		errs[FieldEmail] = "Email inválido"
	}

	switch {
	case strings.TrimSpace(form.CPF) == "":
		errs[FieldCPF] = "CPF é obrigatório"
	case !utils.ValidateCPF(form.CPF):
		errs[FieldCPF] = "CPF inválido"
	}

	if form.Gender != "" && !form.Gender.IsValid() {
		errs[FieldGender] = "Gênero inválido"
	}

	if strings.TrimSpace(form.BirthDate) == "" {
		errs[FieldBirthDate] = "Data de nascimento é obrigatória"
	}

	required := []struct {
		field Field
		value string
		msg   string
	}{
		{FieldCEP, form.CEP, "CEP é obrigatório"},
		{FieldStreet, form.Street, "Rua é obrigatória"},
		{FieldNumber, form.Number, "Número é obrigatório"},
		{FieldNeighborhood, form.Neighborhood, "Bairro é obrigatório"},
		{FieldCity, form.City, "Cidade é obrigatória"},
		{FieldState, form.State, "Estado é obrigatório"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.msg
		}
	}
	if _, missing := errs[FieldCEP]; !missing && !utils.IsValidCEP(form.CEP) {
		errs[FieldCEP] = "CEP deve ter 8 dígitos"
	}

	return errs
}

// ValidateRegistration checks the profile plus password rules
func ValidateRegistration(form RegisterForm) Errors {
	errs := ValidateProfile(form.ProfileForm)

	switch {
	case form.Password == "":
		errs[FieldPassword] = "Senha é obrigatória"
	case utils.RuneLen(form.Password) < MinPasswordLength:
		errs[FieldPassword] = "Senha deve ter pelo menos 8 caracteres"
	}

	switch {
	case form.ConfirmPassword == "":
		errs[FieldConfirmPassword] = "Confirmação de senha é obrigatória"
	case form.Password != form.ConfirmPassword:
		errs[FieldConfirmPassword] = "Senhas não coincidem"
	}

	return errs
}

// Address builds the normalized address value from the profile fields.
// The UF is derived from the state when possible and left empty otherwise.
func (f ProfileForm) Address() models.Address {
	uf, _ := utils.DeriveUF(f.State)
	return models.Address{
		CEP:          utils.FormatCEP(strings.TrimSpace(f.CEP)),
		Street:       strings.TrimSpace(f.Street),
		Number:       strings.TrimSpace(f.Number),
		Complement:   strings.TrimSpace(f.Complement),
		Neighborhood: strings.TrimSpace(f.Neighborhood),
		City:         strings.TrimSpace(f.City),
		State:        strings.TrimSpace(f.State),
		UF:           uf,
	}
}

// ToUserInput converts a validated sign-up form into the store payload
func (f RegisterForm) ToUserInput() models.UserInput {
	return models.UserInput{
		Name:      utils.SanitizeText(f.Name),
		Email:     strings.TrimSpace(f.Email),
		CPF:       utils.FormatCPF(strings.TrimSpace(f.CPF)),
		Gender:    f.Gender,
		BirthDate: strings.TrimSpace(f.BirthDate),
		Password:  f.Password,
		Address:   f.Address(),
	}
}

// ToUserUpdate converts a validated profile form into a full profile update
func (f ProfileForm) ToUserUpdate() models.UserUpdate {
	name := utils.SanitizeText(f.Name)
	email := strings.TrimSpace(f.Email)
	cpf := utils.FormatCPF(strings.TrimSpace(f.CPF))
	birth := strings.TrimSpace(f.BirthDate)
	address := f.Address()
	update := models.UserUpdate{
		Name:      &name,
		Email:     &email,
		CPF:       &cpf,
		BirthDate: &birth,
		Address:   &address,
	}
	if f.Gender != "" {
		gender := f.Gender
		update.Gender = &gender
	}
	return update
}
