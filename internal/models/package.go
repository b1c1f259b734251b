package models

import (
	"cmp"
	"slices"
	"strings"
)

// ScoreThreshold is the minimum score a search result must exceed to be kept.
const ScoreThreshold = 0.01

// Package is a search result normalized from one of the package sources.
type Package struct {
	// Provider is the source tag, e.g. "pacman/extra" or "aur".
	Provider string
	// Name as reported by the source, possibly repo-qualified ("extra/firefox").
	Name        string
	Version     string
	Description string
	Score       float64
}

// Keep reports whether the package scored high enough to be returned.
func (p Package) Keep() bool {
	return p.Score > ScoreThreshold
}

// StripRepo returns the bare package name of a possibly repo-qualified identity.
func StripRepo(identity string) string {
	if i := strings.LastIndexByte(identity, '/'); i >= 0 {
		return identity[i+1:]
	}
	return identity
}

// SortByScore orders packages by descending score. Order among equal scores is
// unspecified.
func SortByScore(pkgs []Package) {
	slices.SortFunc(pkgs, func(a, b Package) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
