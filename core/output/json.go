package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes the result as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates the JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes result. Decimal fields follow
// decimal.MarshalJSONWithoutQuotes, which the binaries switch on.
func (f *JSONFormatter) Render(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
