package aggregator

import (
	"context"
	"strings"

	"github.com/ralt/pkgseek/internal/catalog/linepair"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/runner"
	"github.com/sirupsen/logrus"
)

// Source names used in source selections.
const (
	SourcePacman = "pacman"
	SourceAUR    = "aur"
)

// Source is one searchable package catalog. Search never fails: an unavailable
// source returns no packages.
type Source interface {
	Name() string
	Search(ctx context.Context, query string) []models.Package
}

// CommandSource searches by running `<binary> -Ss <query>` and parsing the
// line-pair output.
type CommandSource struct {
	name     string
	provider string
	binary   string
	runner   runner.Runner
}

// NewCommandSource creates a source that labels its results with provider.
func NewCommandSource(name, provider, binary string, r runner.Runner) *CommandSource {
	return &CommandSource{
		name:     name,
		provider: provider,
		binary:   binary,
		runner:   r,
	}
}

// NewPacmanSource searches the system repositories through `pacman -Ss`.
func NewPacmanSource(binary string, r runner.Runner) *CommandSource {
	return NewCommandSource(SourcePacman, models.FamilyPacman.String(), binary, r)
}

// NewAURSource searches the AUR through `yay -Ss`.
func NewAURSource(binary string, r runner.Runner) *CommandSource {
	return NewCommandSource(SourceAUR, models.FamilyAUR.String(), binary, r)
}

// Name returns the source name
func (s *CommandSource) Name() string {
	return s.name
}

// Search runs the search command for query
func (s *CommandSource) Search(ctx context.Context, query string) []models.Package {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	out, err := s.runner.Output(ctx, s.binary, "-Ss", query)
	if err != nil {
		logrus.Debugf("%s search failed: %v", s.name, err)
		return nil
	}

	return linepair.Parse(out, s.provider, query)
}
