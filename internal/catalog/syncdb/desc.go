package syncdb

import (
	"bufio"
	"bytes"
	"strings"
)

// Desc field keys read from sync database descriptors.
const (
	KeyName       = "NAME"
	KeyVersion    = "VERSION"
	KeyDesc       = "DESC"
	KeyArch       = "ARCH"
	KeyURL        = "URL"
	KeyLicense    = "LICENSE"
	KeyGroups     = "GROUPS"
	KeyProvides   = "PROVIDES"
	KeyDepends    = "DEPENDS"
	KeyOptDepends = "OPTDEPENDS"
	KeyConflicts  = "CONFLICTS"
	KeyReplaces   = "REPLACES"
	KeyCSize      = "CSIZE"
	KeyISize      = "ISIZE"
	KeyPackager   = "PACKAGER"
	KeyBuildDate  = "BUILDDATE"
	KeyFilename   = "FILENAME"
)

// Desc is a decoded descriptor entry. Multi-line values are joined by newlines.
type Desc map[string]string

// Get returns a field value and whether the field was present.
func (d Desc) Get(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

// Lines splits a multi-line value into its entries.
func (d Desc) Lines(key string) []string {
	v, ok := d[key]
	if !ok || v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}

// ParseDesc decodes a descriptor body.
//
// A line of the form %FIELD% starts a field; every following non-blank line up to
// the next marker belongs to it. Fields may appear in any order and the body does
// not need a trailing blank line. A repeated marker appends to the earlier value.
// Lines before the first marker are ignored.
func ParseDesc(data []byte) Desc {
	values := make(map[string][]string)
	var order []string
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if field, ok := fieldMarker(line); ok {
			current = field
			if _, seen := values[current]; !seen {
				values[current] = nil
				order = append(order, current)
			}
			continue
		}

		if line == "" || current == "" {
			continue
		}

		values[current] = append(values[current], line)
	}

	desc := make(Desc, len(order))
	for _, k := range order {
		desc[k] = strings.TrimSpace(strings.Join(values[k], "\n"))
	}
	return desc
}

// fieldMarker reports whether line is a %FIELD% marker and returns the field name.
func fieldMarker(line string) (string, bool) {
	if len(line) < 3 || line[0] != '%' || line[len(line)-1] != '%' {
		return "", false
	}
	field := line[1 : len(line)-1]
	if strings.ContainsAny(field, "% \t") {
		return "", false
	}
	return field, true
}
