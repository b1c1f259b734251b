// Package aur resolves package details from the AUR RPC interface.
package aur

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ralt/pkgseek/internal/models"
)

// fieldMapping translates AUR RPC keys to canonical details fields, in output order.
var fieldMapping = []struct {
	aurKey string
	field  string
}{
	{"Name", models.FieldName},
	{"Version", models.FieldVersion},
	{"Description", models.FieldDescription},
	{"URL", models.FieldURL},
	{"License", models.FieldLicenses},
	{"Depends", models.FieldDependsOn},
	{"OptDepends", models.FieldOptionalDeps},
	{"MakeDepends", models.FieldMakeDeps},
	{"Conflicts", models.FieldConflictsWith},
	{"Provides", models.FieldProvides},
	{"Replaces", models.FieldReplaces},
	{"Keywords", models.FieldKeywords},
	{"Submitter", models.FieldSubmitter},
	{"Maintainer", models.FieldMaintainer},
	{"Popularity", models.FieldPopularity},
	{"NumVotes", models.FieldVotes},
	{"FirstSubmitted", models.FieldFirstSubmitted},
	{"LastModified", models.FieldLastModified},
}

// Normalize extracts package details from an RPC info response. The package object
// may be the first element of a "results" array or the "results" value itself.
// Only keys present in the response produce fields.
func Normalize(raw []byte) (*models.Details, bool) {
	var resp map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return nil, false
	}

	var obj map[string]any
	switch results := resp["results"].(type) {
	case []any:
		if len(results) == 0 {
			return nil, false
		}
		first, ok := results[0].(map[string]any)
		if !ok {
			return nil, false
		}
		obj = first
	case map[string]any:
		obj = results
	default:
		return nil, false
	}

	d := models.NewDetails()
	for _, m := range fieldMapping {
		if v, ok := obj[m.aurKey]; ok {
			d.Set(m.field, normalizeValue(v))
		}
	}
	return d, true
}

// normalizeValue renders a JSON value: strings verbatim, arrays comma-joined,
// null as "None" and everything else as its JSON text.
func normalizeValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			if s, ok := elem.(string); ok {
				parts[i] = s
			} else {
				parts[i] = jsonText(elem)
			}
		}
		return strings.Join(parts, ", ")
	case nil:
		return "None"
	default:
		return jsonText(val)
	}
}

func jsonText(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
