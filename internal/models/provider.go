package models

import "strings"

// Family identifies a package source family.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyPacman
	FamilyAUR
)

// String returns the string representation of Family
func (f Family) String() string {
	switch f {
	case FamilyPacman:
		return "pacman"
	case FamilyAUR:
		return "aur"
	default:
		return "unknown"
	}
}

// Provider is a parsed provider tag: a family plus an optional sub-repository.
type Provider struct {
	Family Family
	Repo   string

	raw string
}

// ParseProvider parses tags such as "pacman/extra", "pacman" or "aur".
// Only the segment before the first '/' selects the family.
func ParseProvider(tag string) Provider {
	family, repo, _ := strings.Cut(tag, "/")
	p := Provider{Repo: repo, raw: tag}
	switch family {
	case "pacman":
		p.Family = FamilyPacman
	case "aur":
		p.Family = FamilyAUR
	}
	return p
}

// NewProvider builds a provider tag for family and repo.
func NewProvider(family Family, repo string) Provider {
	return Provider{Family: family, Repo: repo}
}

// String renders the provider back into tag form.
func (p Provider) String() string {
	if p.Family == FamilyUnknown {
		return p.raw
	}
	if p.Repo == "" {
		return p.Family.String()
	}
	return p.Family.String() + "/" + p.Repo
}
