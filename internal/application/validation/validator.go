// Package validation ejecuta las etiquetas `validate:` de los DTOs y traduce
// los fallos a domain.ValidationError, campo por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-api/internal/domain"
)

// Validator es seguro para uso concurrente una vez construido.
type Validator struct {
	v *validator.Validate
}

// New registra las reglas propias: notblank, maxbytes y dgt0 (decimal.Decimal > 0).
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Los montos llegan a las reglas como texto exacto; nunca pasan por float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	rules := map[string]validator.Func{
		"notblank": validators.NotBlank,
		"maxbytes": maxBytes,
		"dgt0":     decimalPositive,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
		}
	}
	return &Validator{v: v}
}

// maxBytes limita la longitud en bytes (bcrypt corta en 72 bytes, no en 72 runas).
func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: parámetro de maxbytes inválido: %q", fl.Param()))
	}
	return len(fl.Field().String()) <= n
}

// decimalPositive exige un monto decimal estrictamente positivo.
func decimalPositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

// Struct valida s y devuelve *domain.ValidationError si alguna regla falla.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "dgt0":
		return "debe ser mayor que 0"
	case "maxbytes":
		return "debe ocupar como máximo " + fe.Param() + " bytes"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser al menos " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser como máximo " + fe.Param()
	case "len":
		return "debe tener exactamente " + fe.Param() + " caracteres"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "postcode_iso3166_alpha2":
		return "código postal inválido"
	default:
		return "no cumple la regla " + fe.Tag()
	}
}
