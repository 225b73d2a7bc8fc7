package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OptionalString distingue entre "campo ausente", "null explícito" y "valor".
// Se usa en updates parciales donde null significa limpiar el campo
// (ej. el código de barras de un producto).
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marca el campo como presente; Value queda nil si llegó null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
