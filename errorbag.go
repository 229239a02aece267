package schema

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// Violation is a single reported failure, or an aggregating node whose
// SubErrors holds the contributing ErrorBags of a nested subschema
// evaluation (allOf/anyOf/oneOf/not, and the object/array container
// passes).
//
// Message is the already-interpolated English text, Code is the catalog
// key used to re-render it in another locale via Localize.
type Violation struct {
	Keyword   string         `json:"keyword"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Location  string         `json:"location"`
	Params    map[string]any `json:"params,omitempty"`
	SubErrors ErrorBag       `json:"subErrors,omitempty"`
}

// NewViolation builds a Violation, interpolating {name}-style
// placeholders in message against params.
func NewViolation(keyword, code, location, message string, params map[string]any) *Violation {
	return &Violation{
		Keyword:  keyword,
		Code:     code,
		Message:  interpolate(message, params),
		Location: location,
		Params:   params,
	}
}

func (v *Violation) Error() string { return v.Message }

// Localize renders the violation's message in the locale selected by
// localizer, falling back to the already-interpolated English message if
// localizer is nil.
func (v *Violation) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return v.Message
	}
	return localizer.Get(v.Code, i18n.Vars(v.Params))
}

func interpolate(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", toDisplayString(value))
	}
	return template
}

func toDisplayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// ErrorBag is the location-keyed, optionally nested collection of
// violations returned by Validate. An empty bag means "valid".
type ErrorBag map[string][]*Violation

// Add appends violation under location, creating the slice on first use.
func (b ErrorBag) Add(location string, v *Violation) {
	b[location] = append(b[location], v)
}

// Merge copies every entry of other into b.
func (b ErrorBag) Merge(other ErrorBag) {
	for loc, vs := range other {
		b[loc] = append(b[loc], vs...)
	}
}

// IsValid reports whether the bag carries no violations at all, including
// within nested SubErrors.
func (b ErrorBag) IsValid() bool {
	return len(b) == 0
}

// NewErrorBag returns an empty ErrorBag.
func NewErrorBag() ErrorBag { return ErrorBag{} }
