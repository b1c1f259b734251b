package models

// Canonical details field names shared by every provider.
const (
	FieldRepository     = "Repository"
	FieldName           = "Name"
	FieldVersion        = "Version"
	FieldDescription    = "Description"
	FieldArchitecture   = "Architecture"
	FieldURL            = "URL"
	FieldLicenses       = "Licenses"
	FieldGroups         = "Groups"
	FieldProvides       = "Provides"
	FieldDependsOn      = "Depends On"
	FieldOptionalDeps   = "Optional Deps"
	FieldMakeDeps       = "Make Deps"
	FieldConflictsWith  = "Conflicts With"
	FieldReplaces       = "Replaces"
	FieldDownloadSize   = "Download Size"
	FieldInstalledSize  = "Installed Size"
	FieldPackager       = "Packager"
	FieldBuildDate      = "Build Date"
	FieldFilename       = "Filename"
	FieldKeywords       = "Keywords"
	FieldSubmitter      = "Submitter"
	FieldMaintainer     = "Maintainer"
	FieldPopularity     = "Popularity"
	FieldVotes          = "Votes"
	FieldFirstSubmitted = "First Submitted"
	FieldLastModified   = "Last Modified"
)

// Field is a single details entry.
type Field struct {
	Key   string
	Value string
}

// Details is an insertion-ordered map of canonical field names to values.
// The zero value is not usable; call NewDetails.
type Details struct {
	fields []Field
	index  map[string]int
}

// NewDetails returns an empty Details.
func NewDetails() *Details {
	return &Details{index: make(map[string]int)}
}

// Set stores value under key. An existing key keeps its position.
func (d *Details) Set(key, value string) {
	if i, ok := d.index[key]; ok {
		d.fields[i].Value = value
		return
	}
	d.index[key] = len(d.fields)
	d.fields = append(d.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (d *Details) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.fields[i].Value, true
}

// Has reports whether key is present.
func (d *Details) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Len returns the number of fields.
func (d *Details) Len() int {
	return len(d.fields)
}

// Keys returns the field names in insertion order.
func (d *Details) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the entries in insertion order.
func (d *Details) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Map returns the entries as a plain map, losing order.
func (d *Details) Map() map[string]string {
	out := make(map[string]string, len(d.fields))
	for _, f := range d.fields {
		out[f.Key] = f.Value
	}
	return out
}

// Clone returns a deep copy.
func (d *Details) Clone() *Details {
	c := &Details{
		fields: make([]Field, len(d.fields)),
		index:  make(map[string]int, len(d.index)),
	}
	copy(c.fields, d.fields)
	for k, v := range d.index {
		c.index[k] = v
	}
	return c
}
