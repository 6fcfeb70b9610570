package mapper

import "fmt"

// SchemaError reports a payload that does not match the feed schema: a
// required field is absent, a date fails to parse, or a section references
// a media record that does not exist. The policy is to surface the error
// rather than silently drop data.
type SchemaError struct {
	ArticleID string
	Field     string
	Reason    string
}

func (e *SchemaError) Error() string {
	if e.ArticleID == "" {
		return fmt.Sprintf("schema error: field %q %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("schema error in article %s: field %q %s", e.ArticleID, e.Field, e.Reason)
}
