package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"news-explorer/internal/domain/entity"
)

// MsgInvalidBody is returned when a request body is not a single JSON object.
const MsgInvalidBody = "Invalid request body"

// Normalizer is implemented by request DTOs that clean up their fields
// before validation.
type Normalizer interface {
	Normalize()
}

// Bind decodes the JSON request body into dst and validates it.
// Unknown fields are ignored; ownership and identifiers never come from the body.
// A Normalizer is normalized before the schema is checked, so the checked
// value is the stored one.
func (v *Validator) Bind(r *http.Request, dst any) error {
	if r.Body == nil {
		return entity.BadRequest(MsgInvalidBody)
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return entity.BadRequest("Request body too large").Wrap(err)
		}
		if errors.Is(err, io.EOF) {
			return entity.BadRequest(MsgInvalidBody).Wrap(err)
		}
		return entity.BadRequest(MsgInvalidBody).Wrap(fmt.Errorf("decode body: %w", err))
	}
	if dec.More() {
		return entity.BadRequest(MsgInvalidBody)
	}

	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return v.Struct(dst)
}

// PathID validates a resource identifier taken from the URL path.
func (v *Validator) PathID(id string) error {
	return v.Var("id", id, "required,len=24,"+TagObjectID, Messages{
		"id.required":       `The "id" must be 24 hexadecimal characters`,
		"id.len":            `The "id" must be 24 hexadecimal characters`,
		"id." + TagObjectID: `The "id" must contain only hexadecimal characters`,
	})
}
