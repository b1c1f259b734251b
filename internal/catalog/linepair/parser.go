// Package linepair parses the two-lines-per-package output of `pacman -Ss`
// and `yay -Ss`.
package linepair

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/ralt/pkgseek/internal/fuzzy"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/sirupsen/logrus"
)

// Parse reads header/description line pairs from text and returns the packages whose
// bare name matches query, best first.
//
// A header is "repo/name version [extra...]". Headers with fewer than two tokens are
// skipped together with their description line; parsing never resynchronizes.
func Parse(text []byte, provider, query string) []models.Package {
	lines := splitLines(text)

	var res []models.Package
	for i := 0; i+1 < len(lines); i += 2 {
		parts := strings.Fields(lines[i])
		if len(parts) < 2 {
			logrus.Debugf("Skipping malformed %s search header: %q", provider, lines[i])
			continue
		}

		name := parts[0]
		pkg := models.Package{
			Provider:    provider,
			Name:        name,
			Version:     parts[1],
			Description: strings.TrimSpace(lines[i+1]),
			Score:       fuzzy.Match(query, models.StripRepo(name)),
		}
		if pkg.Keep() {
			res = append(res, pkg)
		}
	}

	models.SortByScore(res)
	return res
}

func splitLines(text []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
