package http

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"expenses/internal/editor"
)

// deletePath is the owner's delete endpoint for one expense.
func deletePath(id int64) string {
	return fmt.Sprintf("/expenses/%d", id)
}

// sanitizeInput removes control characters except tab and newlines. Leading
// and trailing whitespace is kept; trimming is the editor's job.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// renderToBytes runs a renderer method into memory so failures can still
// become a clean error response.
func renderToBytes(render func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func invalidFields(errs editor.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for _, f := range editor.Fields {
		if errs.Has(f) {
			out = append(out, string(f))
		}
	}
	return out
}
