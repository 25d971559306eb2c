// Package validation rejects malformed catalogs and responses before they
// reach the scoring engine, which assumes its input is well formed.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

// Validator checks input against a rating scale.
type Validator struct {
	validate *validator.Validate
	scale    engine.Scale
}

// New returns a Validator for the given scale.
func New(scale engine.Scale) (*Validator, error) {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		scale:    scale,
	}

	if err := v.validate.RegisterValidation("rating", v.rating); err != nil {
		return nil, fmt.Errorf("registering rating validation: %w", err)
	}

	v.validate.RegisterStructValidation(knownSkills, catalog.Catalog{})

	return v, nil
}

func (v *Validator) rating(fl validator.FieldLevel) bool {
	return v.scale.Contains(int(fl.Field().Int()))
}

// knownSkills requires every major's skills to be declared when the catalog
// lists its skills.
func knownSkills(sl validator.StructLevel) {
	c := sl.Current().Interface().(catalog.Catalog)
	if len(c.Skills) == 0 {
		return
	}

	declared := make([]engine.SkillRef, 0, len(c.Skills))
	for _, s := range c.Skills {
		declared = append(declared, engine.SkillRef(s.ID))
	}
	known := engine.NewSkillSet(declared)

	for i, m := range c.Majors {
		for j, ref := range m.RequiredSkills {
			if !known.Has(ref) {
				sl.ReportError(ref, fmt.Sprintf("Majors[%d].RequiredSkills[%d]", i, j), "RequiredSkills", "known_skill", string(ref))
			}
		}
	}
}

// Catalog validates a loaded catalog.
func (v *Validator) Catalog(c *catalog.Catalog) error {
	if c == nil {
		return errors.New("catalog is required")
	}

	return v.check("catalog", c)
}

// Responses validates a loaded responses file.
func (v *Validator) Responses(r *catalog.Responses) error {
	if r == nil {
		return errors.New("responses are required")
	}

	return v.check("responses", r)
}

func (v *Validator) check(name string, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", name, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe, v.scale))
	}

	return fmt.Errorf("invalid %s: %s", name, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError, scale engine.Scale) string {
	switch fe.Tag() {
	case "rating":
		return fmt.Sprintf("%s: rating %v outside %d..%d", fe.Namespace(), fe.Value(), scale.Min, scale.Max)
	case "unique":
		return fmt.Sprintf("%s: duplicate %s", fe.Namespace(), fe.Param())
	case "known_skill":
		return fmt.Sprintf("%s: unknown skill %q", fe.Namespace(), fe.Param())
	case "required":
		return fmt.Sprintf("%s: required", fe.Namespace())
	default:
		return fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag())
	}
}
