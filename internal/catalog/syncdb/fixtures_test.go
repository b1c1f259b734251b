package syncdb

import (
	"archive/tar"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ralt/pkgseek/internal/utils"
	"github.com/stretchr/testify/require"
)

// fixturePkg describes one package entry written into a test database.
type fixturePkg struct {
	Name      string
	Version   string
	Desc      string
	Filename  string
	Arch      string
	Depends   []string
	CSize     string
	BuildDate string
	// Raw overrides the generated descriptor body.
	Raw string
}

// descBody renders the descriptor the way repo-add lays it out.
func (p fixturePkg) descBody() []byte {
	if p.Raw != "" {
		return []byte(p.Raw)
	}

	var buf bytes.Buffer
	writeField := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&buf, "%%%s%%\n%s\n\n", name, value)
		}
	}

	writeField("FILENAME", p.Filename)
	writeField("NAME", p.Name)
	writeField("VERSION", p.Version)
	writeField("DESC", p.Desc)
	writeField("CSIZE", p.CSize)
	writeField("ARCH", p.Arch)
	writeField("BUILDDATE", p.BuildDate)

	if len(p.Depends) > 0 {
		buf.WriteString("%DEPENDS%\n")
		for _, dep := range p.Depends {
			fmt.Fprintf(&buf, "%s\n", dep)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// buildTar creates the uncompressed database archive.
func buildTar(t *testing.T, pkgs []fixturePkg) []byte {
	t.Helper()

	var tarBuf bytes.Buffer
	tw := tar.NewWriter(&tarBuf)

	for i, pkg := range pkgs {
		dirName := fmt.Sprintf("%s-%s/", pkg.Name, pkg.Version)
		if pkg.Name == "" {
			dirName = fmt.Sprintf("entry-%d/", i)
		}
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dirName,
			Mode:     0755,
			Typeflag: tar.TypeDir,
		}))

		body := pkg.descBody()
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dirName + "desc",
			Mode:     0644,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(body)
		require.NoError(t, err)

		// Sync databases may carry other per-package files that must be ignored.
		files := []byte("%FILES%\nusr/bin/" + pkg.Name + "\n")
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dirName + "files",
			Mode:     0644,
			Size:     int64(len(files)),
			Typeflag: tar.TypeReg,
		}))
		_, err = tw.Write(files)
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	return tarBuf.Bytes()
}

// writeDB writes a gzip-compressed database named <repo>.db into dir.
func writeDB(t *testing.T, dir, repo string, pkgs []fixturePkg) Container {
	t.Helper()
	data, err := utils.GzipCompress(buildTar(t, pkgs))
	require.NoError(t, err)
	return writeRaw(t, dir, repo, data)
}

func writeRaw(t *testing.T, dir, repo string, data []byte) Container {
	t.Helper()
	path := filepath.Join(dir, repo+".db")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return NewContainer(path)
}
