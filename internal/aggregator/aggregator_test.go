package aggregator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	name  string
	pkgs  []models.Package
	calls atomic.Int32
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Search(ctx context.Context, query string) []models.Package {
	s.calls.Add(1)
	return s.pkgs
}

// fakeRunner returns canned output per binary.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	args    [][]string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.args = append(f.args, append([]string{name}, args...))
	out, ok := f.outputs[name]
	if !ok {
		return nil, errors.New("exec: not found")
	}
	return []byte(out), nil
}

func TestSearchMergesAndRanks(t *testing.T) {
	a := &staticSource{name: "a", pkgs: []models.Package{
		{Provider: "pacman/core", Name: "low", Score: 0.5},
		{Provider: "pacman/core", Name: "high", Score: 3},
	}}
	b := &staticSource{name: "b", pkgs: []models.Package{
		{Provider: "aur", Name: "mid", Score: 1.5},
	}}

	got := New(a, b).Search(context.Background(), "x", nil)
	require.Len(t, got, 3)
	require.Equal(t, "high", got[0].Name)
	require.Equal(t, "mid", got[1].Name)
	require.Equal(t, "low", got[2].Name)
}

func TestSearchSkipsDisabledSources(t *testing.T) {
	a := &staticSource{name: "a", pkgs: []models.Package{{Name: "one", Score: 1}}}
	b := &staticSource{name: "b", pkgs: []models.Package{{Name: "two", Score: 2}}}

	got := New(a, b).Search(context.Background(), "x", ParseSourceSet([]string{"a"}))
	require.Len(t, got, 1)
	require.Equal(t, "one", got[0].Name)
	require.Equal(t, int32(0), b.calls.Load())
}

func TestSearchCommandSources(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"pacman": "extra/firefox 120.0-1\n    Fast web browser\n",
		"yay":    "aur/firefox-nightly 122.0a1-1\n    Nightly build\n",
	}}

	agg := New(NewPacmanSource("pacman", r), NewAURSource("yay", r))
	got := agg.Search(context.Background(), "firefox", ParseSourceSet(nil))

	require.Len(t, got, 2)
	require.Equal(t, "extra/firefox", got[0].Name)
	require.Equal(t, "pacman", got[0].Provider)
	require.Equal(t, "aur/firefox-nightly", got[1].Name)
	require.Equal(t, "aur", got[1].Provider)
}

func TestCommandSourceFailureIsEmpty(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{}}

	require.Empty(t, NewAURSource("yay", r).Search(context.Background(), "firefox"))
	require.Len(t, r.args, 1)
	require.Equal(t, []string{"yay", "-Ss", "firefox"}, r.args[0])
}

func TestCommandSourceBlankQuery(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"pacman": ""}}

	require.Empty(t, NewPacmanSource("pacman", r).Search(context.Background(), "   "))
	require.Empty(t, r.args)
}

func TestParseSourceSet(t *testing.T) {
	set := ParseSourceSet([]string{"syncdb, aur", "pacman", ""})
	require.Equal(t, []string{"aur", "pacman", "syncdb"}, set.Names())
	require.True(t, set.Enabled("aur"))
	require.False(t, set.Enabled("other"))

	require.True(t, ParseSourceSet(nil).Enabled("anything"))
}

func TestValidate(t *testing.T) {
	agg := New(&staticSource{name: "syncdb"}, &staticSource{name: "aur"})

	require.NoError(t, agg.Validate(ParseSourceSet([]string{"aur"})))

	err := agg.Validate(ParseSourceSet([]string{"apt"}))
	require.Error(t, err)
	var lookupErr *models.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, models.ErrInvalidConfig, lookupErr.Type)
}
