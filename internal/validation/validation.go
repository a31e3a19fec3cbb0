// Package validation checks save payloads against the collage schema before
// any normalization or persistence happens.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dimitrije/collage-api/pkg/dto"
	"github.com/go-playground/validator/v10"
)

// Error describes the first schema violation found in a payload.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeSave parses body into a save request and validates it. The returned
// error is always an *Error.
func DecodeSave(body []byte) (*dto.SaveCollageRequest, error) {
	var req dto.SaveCollageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fromDecodeError(body, err)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, fromValidationError(err)
	}
	return &req, nil
}

func fromDecodeError(body []byte, err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &Error{Message: `"value" must be an object`}
		}
		field := fieldAtOffset(body, typeErr.Offset)
		if field == "" {
			field = typeErr.Field
		}
		return &Error{
			Field:   field,
			Message: fmt.Sprintf("%q must be %s", field, describeKind(typeErr.Type)),
		}
	}
	return &Error{Message: "invalid request payload JSON format"}
}

func fromValidationError(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Message: err.Error()}
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%q is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("%q is not allowed to be empty", field)
		} else {
			msg = fmt.Sprintf("%q must contain at least %s items", field, fe.Param())
		}
	case "len":
		msg = fmt.Sprintf("%q must contain %s items", field, fe.Param())
	default:
		msg = fmt.Sprintf("%q failed on %s", field, fe.Tag())
	}
	return &Error{Field: field, Message: msg}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "valid"
	}
}

type frame struct {
	array   bool
	index   int
	key     string
	wantKey bool
}

// fieldAtOffset returns the path of the first value in body that ends at or
// after offset, in the same items[0].width form the validator reports.
// encoding/json only reports dotted paths without indices for type errors.
func fieldAtOffset(body []byte, offset int64) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	var stack []*frame
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			if n := len(stack); n > 0 && !stack[n-1].array {
				stack[n-1].wantKey = true
			}
			continue
		}

		var top *frame
		if n := len(stack); n > 0 {
			top = stack[n-1]
		}
		if top != nil && !top.array && top.wantKey {
			top.key, _ = tok.(string)
			top.wantKey = false
			continue
		}
		if top != nil && top.array {
			top.index++
		}

		if dec.InputOffset() >= offset {
			return renderPath(stack)
		}

		if d, ok := tok.(json.Delim); ok {
			stack = append(stack, &frame{array: d == '[', index: -1, wantKey: d == '{'})
			continue
		}
		if top != nil && !top.array {
			top.wantKey = true
		}
	}
}

func renderPath(stack []*frame) string {
	var b strings.Builder
	for _, f := range stack {
		if f.array {
			fmt.Fprintf(&b, "[%d]", f.index)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.key)
	}
	return b.String()
}
