// Package syncdb reads pacman sync databases: tar archives of per-package
// descriptor entries, compressed with gzip, zstd or xz.
package syncdb

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/utils"
	"github.com/ralt/pkgseek/internal/verify"
	"github.com/sirupsen/logrus"
)

// DescFile is the name of descriptor entries inside a sync database.
const DescFile = "desc"

// Container is one sync database file.
type Container struct {
	Path string
	// Repo is the short repository name, e.g. "extra".
	Repo string
}

// NewContainer builds a Container, deriving the repository name from the filename.
func NewContainer(path string) Container {
	return Container{Path: path, Repo: RepoName(path)}
}

// ContainersFor returns the containers <dir>/<repo>.db in the given priority order.
func ContainersFor(dir string, repos []string) []Container {
	containers := make([]Container, 0, len(repos))
	for _, repo := range repos {
		containers = append(containers, Container{
			Path: filepath.Join(dir, repo+".db"),
			Repo: repo,
		})
	}
	return containers
}

// RepoName derives the repository name from a database filename
// ("/var/lib/pacman/sync/extra.db" -> "extra").
func RepoName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// entryFunc receives the body of one descriptor entry. Returning false stops the walk.
type entryFunc func(name string, data []byte) bool

// reader walks the descriptor entries of containers.
type reader struct {
	verifier verify.Verifier
}

// open returns a decompressed stream over the container. When a verifier is set the
// whole file is read and checked against <path>.sig first.
func (r *reader) open(c Container) (io.Reader, func(), error) {
	if r.verifier == nil {
		f, err := os.Open(c.Path)
		if err != nil {
			return nil, nil, err
		}
		dr, closeDecoder, err := utils.NewDecompressingReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return dr, func() { closeDecoder(); f.Close() }, nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, nil, err
	}
	sig, err := os.ReadFile(c.Path + ".sig")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read signature: %w", err)
	}
	if err := r.verifier.Verify(data, sig); err != nil {
		return nil, nil, err
	}
	return utils.NewDecompressingReader(bytes.NewReader(data))
}

// walk calls fn for every descriptor entry of c. A container that cannot be opened
// is reported as an error; a corrupt archive stops the walk but keeps the entries
// already delivered.
func (r *reader) walk(c Container, fn entryFunc) error {
	stream, closeStream, err := r.open(c)
	if err != nil {
		return &models.LookupError{Type: models.ErrSourceUnavailable, Package: c.Repo, Err: err}
	}
	defer closeStream()

	tr := tar.NewReader(stream)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &models.LookupError{
				Type:    models.ErrMalformedRecord,
				Package: c.Repo,
				Err:     fmt.Errorf("failed to read archive: %w", err),
			}
		}

		if !header.FileInfo().Mode().IsRegular() || !isDescEntry(header.Name) {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			logrus.Debugf("Skipping unreadable entry %s in %s: %v", header.Name, c.Repo, err)
			continue
		}

		if !fn(header.Name, data) {
			return nil
		}
	}
}

// walkAll walks containers in order, skipping the ones that fail.
func (r *reader) walkAll(ctx context.Context, containers []Container, fn func(c Container, data []byte) bool) {
	for _, c := range containers {
		if ctx.Err() != nil {
			return
		}

		stop := false
		err := r.walk(c, func(_ string, data []byte) bool {
			if !fn(c, data) {
				stop = true
				return false
			}
			return true
		})
		if err != nil {
			logrus.Warnf("Error reading sync database %s: %v", c.Path, err)
		}
		if stop {
			return
		}
	}
}

func isDescEntry(name string) bool {
	return name == DescFile || strings.HasSuffix(name, "/"+DescFile)
}
