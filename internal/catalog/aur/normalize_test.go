package aur

import (
	"testing"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/stretchr/testify/require"
)

const infoResponse = `{
  "resultcount": 1,
  "results": [{
    "Name": "yay",
    "Version": "12.3.5-1",
    "Description": "Yet another yogurt",
    "URL": "https://github.com/Jguer/yay",
    "License": ["GPL-3.0-or-later"],
    "Depends": ["pacman>6.1", "git", "sudo"],
    "MakeDepends": ["go"],
    "Keywords": [],
    "Maintainer": null,
    "Popularity": 12.345678,
    "NumVotes": 2021,
    "FirstSubmitted": 1475688004,
    "LastModified": 1717000000,
    "OutOfDate": null,
    "ID": 1442926
  }],
  "type": "multiinfo",
  "version": 5
}`

func TestNormalizeArrayResults(t *testing.T) {
	d, ok := Normalize([]byte(infoResponse))
	require.True(t, ok)

	expected := map[string]string{
		models.FieldName:           "yay",
		models.FieldVersion:        "12.3.5-1",
		models.FieldDescription:    "Yet another yogurt",
		models.FieldURL:            "https://github.com/Jguer/yay",
		models.FieldLicenses:       "GPL-3.0-or-later",
		models.FieldDependsOn:      "pacman>6.1, git, sudo",
		models.FieldMakeDeps:       "go",
		models.FieldKeywords:       "",
		models.FieldMaintainer:     "None",
		models.FieldPopularity:     "12.345678",
		models.FieldVotes:          "2021",
		models.FieldFirstSubmitted: "1475688004",
		models.FieldLastModified:   "1717000000",
	}
	require.Equal(t, expected, d.Map())

	// Absent source keys produce no entry.
	require.False(t, d.Has(models.FieldOptionalDeps))
	require.False(t, d.Has(models.FieldSubmitter))
	require.Equal(t, models.FieldName, d.Keys()[0])
}

func TestNormalizeObjectResults(t *testing.T) {
	d, ok := Normalize([]byte(`{"results": {"Name": "paru", "NumVotes": 7}}`))
	require.True(t, ok)

	name, _ := d.Get(models.FieldName)
	require.Equal(t, "paru", name)
	votes, _ := d.Get(models.FieldVotes)
	require.Equal(t, "7", votes)
	require.Equal(t, 2, d.Len())
}

func TestNormalizeValueKinds(t *testing.T) {
	d, ok := Normalize([]byte(`{"results": {
		"Name": null,
		"Depends": [1, true, null, "x"],
		"Provides": {"a": 1},
		"Replaces": false
	}}`))
	require.True(t, ok)

	name, _ := d.Get(models.FieldName)
	require.Equal(t, "None", name)
	deps, _ := d.Get(models.FieldDependsOn)
	require.Equal(t, "1, true, null, x", deps)
	provides, _ := d.Get(models.FieldProvides)
	require.Equal(t, `{"a":1}`, provides)
	replaces, _ := d.Get(models.FieldReplaces)
	require.Equal(t, "false", replaces)
}

func TestNormalizeNotFound(t *testing.T) {
	for _, body := range []string{
		`{"resultcount": 0, "results": []}`,
		`{"results": ["yay"]}`,
		`{"results": "yay"}`,
		`{"error": "Incorrect request type specified."}`,
		`not json`,
	} {
		_, ok := Normalize([]byte(body))
		require.False(t, ok, body)
	}
}
