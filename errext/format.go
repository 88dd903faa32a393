package errext

import (
	"errors"
)

// Format formats the given error as a message and a map of log fields.
// A [HasLocation] error contributes file, line and column fields and a
// [HasHint] error contributes a hint field.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]interface{})
	var lerr HasLocation
	if errors.As(err, &lerr) {
		filename, line, column := lerr.Location()
		if filename != "" {
			fields["file"] = filename
		}
		fields["line"] = line
		fields["column"] = column
	}

	var herr HasHint
	if errors.As(err, &herr) {
		fields["hint"] = herr.Hint()
	}

	return err.Error(), fields
}
