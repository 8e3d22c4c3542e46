package normalize

import "fmt"

// MalformedRecordError marks a record that is structurally unusable for its
// declared kind. The fallback layer drops the single offending record and
// keeps the rest of the result set.
type MalformedRecordError struct {
	Kind    Kind
	Message string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: %s", e.Kind, e.Message)
}
