package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the pt-BR labels shown in the UI
var FieldLabels = map[string]string{
	// Auth fields
	"Email":              "Email",
	"Password":           "Senha",
	"ConfirmPassword":    "Confirmação de Senha",
	"CurrentPassword":    "Senha Atual",
	"NewPassword":        "Nova Senha",
	"ConfirmNewPassword": "Confirmação da Nova Senha",
	"FullName":           "Nome Completo",

	// Profile fields
	"Phone":               "Telefone",
	"Location":            "Localização",
	"ProfessionalSummary": "Resumo Profissional",

	// Experience fields
	"Company":        "Empresa",
	"Position":       "Cargo",
	"StartDate":      "Data de Início",
	"EndDate":        "Data de Término",
	"Description":    "Descrição",
	"EmploymentType": "Tipo de Contratação",

	// Skill fields
	"Name":              "Nome",
	"Category":          "Categoria",
	"Level":             "Nível",
	"YearsOfExperience": "Anos de Experiência",

	// Education fields
	"Institution":  "Instituição",
	"Degree":       "Grau",
	"FieldOfStudy": "Área de Estudo",

	// Certification fields
	"IssuingOrganization": "Organização Emissora",
	"IssueDate":           "Data de Emissão",
	"ExpirationDate":      "Data de Expiração",
	"CredentialID":        "ID da Credencial",
	"CredentialURL":       "URL da Credencial",

	// Language fields
	"Proficiency": "Proficiência",

	// Social link fields
	"Platform": "Plataforma",
	"URL":      "URL",
	"Username": "Usuário",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Campo obrigatório", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Mínimo de %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Mínimo %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Máximo de %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Máximo %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Deve ser um dos valores: %s", label, strings.ReplaceAll(param, "' '", "', '"))

	case "email":
		return fmt.Sprintf("%s: Formato de email inválido", label)

	case "url", "link_url":
		return fmt.Sprintf("%s: Deve ser uma URL http(s) válida", label)

	case "valid_phone":
		return fmt.Sprintf("%s: Formato de telefone inválido", label)

	case "eqfield":
		return fmt.Sprintf("%s: Deve ser igual a %s", label, getFieldLabel(param))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validação falhou (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
