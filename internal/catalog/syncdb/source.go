package syncdb

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ralt/pkgseek/internal/fuzzy"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/verify"
	"github.com/sirupsen/logrus"
)

// SourceName identifies the sync database source in source selections.
const SourceName = "syncdb"

// packageSuffix marks the start of the extension of a package filename.
const packageSuffix = ".pkg.tar"

// Source searches and looks up packages in a fixed, prioritized list of sync databases.
type Source struct {
	containers []Container
	reader     reader
}

// Option configures a Source
type Option func(*Source)

// WithVerifier requires every database to carry a valid detached signature.
func WithVerifier(v verify.Verifier) Option {
	return func(s *Source) {
		s.reader.verifier = v
	}
}

// NewSource creates a Source over containers, listed in lookup priority order.
func NewSource(containers []Container, opts ...Option) *Source {
	s := &Source{containers: containers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the source name
func (s *Source) Name() string {
	return SourceName
}

// Search scores every package of every database against query. Entries lacking a
// name, version or description are skipped.
func (s *Source) Search(ctx context.Context, query string) []models.Package {
	var res []models.Package

	s.reader.walkAll(ctx, s.containers, func(c Container, data []byte) bool {
		desc := ParseDesc(data)

		name, okName := desc.Get(KeyName)
		version, okVersion := desc.Get(KeyVersion)
		description, okDesc := desc.Get(KeyDesc)
		if !okName || !okVersion || !okDesc {
			return true
		}

		pkg := models.Package{
			Provider:    models.NewProvider(models.FamilyPacman, c.Repo).String(),
			Name:        name,
			Version:     version,
			Description: description,
			Score:       fuzzy.Match(query, name),
		}
		if pkg.Keep() {
			res = append(res, pkg)
		}
		return true
	})

	models.SortByScore(res)
	logrus.Debugf("Sync databases matched %d packages for %q", len(res), query)
	return res
}

// Details returns the details of the first package, in database priority order,
// whose name or package filename matches identity.
func (s *Source) Details(ctx context.Context, identity string) (*models.Details, bool) {
	name := models.StripRepo(identity)
	if name == "" {
		return nil, false
	}

	var found *models.Details
	s.reader.walkAll(ctx, s.containers, func(c Container, data []byte) bool {
		desc := ParseDesc(data)
		if !matchesIdentity(desc, name) {
			return true
		}
		found = buildDetails(c.Repo, desc)
		return false
	})

	if found == nil {
		logrus.Debugf("No sync database entry for %s", name)
		return nil, false
	}
	return found, true
}

func matchesIdentity(desc Desc, name string) bool {
	if n, _ := desc.Get(KeyName); n == name {
		return true
	}

	filename, ok := desc.Get(KeyFilename)
	if !ok || filename == "" {
		return false
	}
	stem := filenameStem(filename)
	return stem == name || strings.HasPrefix(stem, name+"-")
}

// filenameStem removes the package extension: "zsh-5.9-5-x86_64.pkg.tar.zst" ->
// "zsh-5.9-5-x86_64".
func filenameStem(filename string) string {
	if i := strings.Index(filename, packageSuffix); i >= 0 {
		return filename[:i]
	}
	return filename
}

// buildDetails maps a descriptor to the canonical details vocabulary. Missing
// fields are kept as empty strings, except the build date.
func buildDetails(repo string, desc Desc) *models.Details {
	d := models.NewDetails()
	d.Set(models.FieldRepository, repo)
	d.Set(models.FieldName, desc[KeyName])
	d.Set(models.FieldVersion, desc[KeyVersion])
	d.Set(models.FieldDescription, desc[KeyDesc])
	d.Set(models.FieldArchitecture, desc[KeyArch])
	d.Set(models.FieldURL, desc[KeyURL])
	d.Set(models.FieldLicenses, joinList(desc, KeyLicense))
	d.Set(models.FieldGroups, joinList(desc, KeyGroups))
	d.Set(models.FieldProvides, joinList(desc, KeyProvides))
	d.Set(models.FieldDependsOn, joinList(desc, KeyDepends))
	d.Set(models.FieldOptionalDeps, joinList(desc, KeyOptDepends))
	d.Set(models.FieldConflictsWith, joinList(desc, KeyConflicts))
	d.Set(models.FieldReplaces, joinList(desc, KeyReplaces))
	d.Set(models.FieldDownloadSize, formatSize(desc[KeyCSize]))
	d.Set(models.FieldInstalledSize, formatSize(desc[KeyISize]))
	d.Set(models.FieldPackager, desc[KeyPackager])
	if buildDate, ok := desc.Get(KeyBuildDate); ok {
		d.Set(models.FieldBuildDate, formatBuildDate(buildDate))
	}
	d.Set(models.FieldFilename, desc[KeyFilename])
	return d
}

func joinList(desc Desc, key string) string {
	return strings.Join(desc.Lines(key), ", ")
}

// formatSize renders a byte count in IEC units; non-numeric values are kept as-is.
func formatSize(raw string) string {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return raw
	}
	return humanize.IBytes(n)
}

// formatBuildDate renders a unix timestamp; non-numeric values are kept as-is.
func formatBuildDate(raw string) string {
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return time.Unix(secs, 0).UTC().Format(time.RFC1123Z)
}
