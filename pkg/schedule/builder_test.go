package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/history"
	"github.com/esg-sustainability/badminton-doubles-matchup/pkg/roster"
)

// inOrder is a Shuffler which leaves the pool as it is.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

func pool(names ...string) []*roster.Player {
	players := make([]*roster.Player, len(names))
	for i, name := range names {
		players[i] = &roster.Player{Name: name, Quota: 1, Remaining: 1}
	}
	return players
}

func names(group [4]*roster.Player) []string {
	list := make([]string, len(group))
	for i, player := range group {
		list[i] = player.Name
	}
	return list
}

func TestParseSearch(t *testing.T) {
	search, err := ParseSearch("")
	require.NoError(t, err)
	assert.Equal(t, Windows, search)

	search, err = ParseSearch("first-four")
	require.NoError(t, err)
	assert.Equal(t, FirstFour, search)
	assert.Equal(t, "first-four", search.String())

	_, err = ParseSearch("exhaustive")
	assert.Error(t, err)
}

func TestSelectGroupNoHistory(t *testing.T) {
	builder := Builder{Search: Windows, Shuffler: inOrder{}}

	group, fallback := builder.SelectGroup(pool("A", "B", "C", "D", "E"), history.New(history.WholeGroup))
	assert.False(t, fallback)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(group))
}

func TestSelectGroupSlidingWindow(t *testing.T) {
	hist := history.New(history.TeamOnly)
	hist.Record([2]string{"A", "B"}, [2]string{"X", "Y"})

	players := pool("A", "B", "C", "D", "E", "F")

	windows := Builder{Search: Windows, Shuffler: inOrder{}}
	group, fallback := windows.SelectGroup(players, hist)
	assert.False(t, fallback)
	assert.Equal(t, []string{"B", "C", "D", "E"}, names(group))

	firstFour := Builder{Search: FirstFour, Shuffler: inOrder{}}
	group, fallback = firstFour.SelectGroup(players, hist)
	assert.True(t, fallback)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(group))

	assert.Equal(t, []string{"A", "B", "C", "D"}, names([4]*roster.Player(players[:4])), "pool must not be reordered")
}

func TestSelectGroupFallback(t *testing.T) {
	hist := history.New(history.WholeGroup)
	hist.Record([2]string{"A", "B"}, [2]string{"C", "D"})

	builder := Builder{Search: Windows, Shuffler: inOrder{}}
	group, fallback := builder.SelectGroup(pool("A", "B", "C", "D"), hist)
	assert.True(t, fallback)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(group))
}

func TestSelectGroupSmallPool(t *testing.T) {
	builder := Builder{Search: Windows, Shuffler: inOrder{}}
	assert.Panics(t, func() {
		builder.SelectGroup(pool("A", "B", "C"), history.New(history.WholeGroup))
	})
}

// TestSelectGroupWindowsDominates checks, over many random partner
// histories, that scanning every window only falls back when no window of
// the shuffled pool is free of repeats, and never falls back where
// looking at the first four alone would not.
func TestSelectGroupWindowsDominates(t *testing.T) {
	all := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	windowsFallbacks, firstFourFallbacks := 0, 0

	for seed := int64(0); seed < 500; seed++ {
		setup := rand.New(rand.NewSource(seed))
		hist := history.New(history.TeamOnly)
		for i := 0; i < 5; i++ {
			perm := setup.Perm(len(all))
			hist.Record([2]string{all[perm[0]], all[perm[1]]}, [2]string{all[perm[2]], all[perm[3]]})
		}

		players := pool(all...)

		windows := Builder{Search: Windows, Shuffler: rand.New(rand.NewSource(seed))}
		group, windowsFallback := windows.SelectGroup(players, hist)

		firstFour := Builder{Search: FirstFour, Shuffler: rand.New(rand.NewSource(seed))}
		_, firstFourFallback := firstFour.SelectGroup(players, hist)

		if windowsFallback {
			windowsFallbacks++
			assert.True(t, firstFourFallback, "seed %d", seed)

			// Replay the shuffle and make sure no window could have passed.
			shuffled := append([]string(nil), all...)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			for start := 0; start+4 <= len(shuffled); start++ {
				assert.False(t, hist.CanFormGroup(shuffled[start:start+4]), "seed %d window %d", seed, start)
			}
			assert.Equal(t, shuffled[:4], names(group), "seed %d", seed)
		} else {
			assert.True(t, hist.CanFormGroup(names(group)), "seed %d", seed)
		}

		if firstFourFallback {
			firstFourFallbacks++
		}
	}

	assert.Less(t, windowsFallbacks, firstFourFallbacks)
}
