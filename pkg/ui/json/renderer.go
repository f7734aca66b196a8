// Package json writes reports and errors as indented JSON documents.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/markbind/pkg/errors"
)

// Renderer encodes one JSON document per call.
type Renderer struct {
	enc *json.Encoder
}

// New creates a JSON renderer writing to output.
func New(output io.Writer) *Renderer {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &Renderer{enc: enc}
}

// RenderResult encodes result as-is.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError encodes err with its markbind error code and details.
func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage encodes msg as {"message": msg}.
func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(map[string]string{"message": msg})
}
