package roster

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterEligible(t *testing.T) {
	roster := New([]Entry{{"A", 1}, {"B", 2}, {"C", 1}, {"D", 1}})
	assert.Equal(t, 5, roster.Slots())
	assert.Len(t, roster.Eligible(), 4)

	a := roster.Players()[0]
	require.Equal(t, "A", a.Name)
	roster.Assign(a)

	assert.Equal(t, 0, a.Remaining)
	assert.Equal(t, 1, a.Played())

	pool := roster.Eligible()
	require.Len(t, pool, 3)
	assert.Equal(t, "B", pool[0].Name)
	assert.Equal(t, "C", pool[1].Name)
	assert.Equal(t, "D", pool[2].Name)

	assert.Panics(t, func() { roster.Assign(a) })
}

func TestRosterSlots(t *testing.T) {
	assert.Equal(t, 4, New([]Entry{{"A", 1}, {"B", 2}, {"C", 0}, {"D", -3}, {"E", 1}}).Slots())
	assert.Equal(t, math.MaxInt, New([]Entry{{"A", math.MaxInt}, {"B", 2}}).Slots())
	assert.Zero(t, New(nil).Slots())
}

func TestRosterIsFresh(t *testing.T) {
	input := []Entry{{"A", 2}, {"B", 2}, {"C", 2}, {"D", 2}}

	first := New(input)
	for _, player := range first.Players() {
		first.Assign(player)
	}

	second := New(input)
	for _, player := range second.Players() {
		assert.Equal(t, player.Quota, player.Remaining)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "roster.yaml")

	file := File{
		Rounds:   2,
		Players:  []Entry{{"Alice", 2}, {"Bob", 2}, {"Carol", 2}, {"Dan", 2}},
		Partners: "team",
	}
	require.NoError(t, file.Dump(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, file, loaded)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load roster")
}
