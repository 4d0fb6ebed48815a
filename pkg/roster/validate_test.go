package roster

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(quotas map[string]int, order ...string) []Entry {
	list := make([]Entry, 0, len(order))
	for _, name := range order {
		list = append(list, Entry{Name: name, Quota: quotas[name]})
	}
	return list
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		rounds  int
		reason  error
	}{
		{
			name:    "empty roster",
			entries: nil,
			rounds:  3,
			reason:  ErrInsufficientPlayers,
		},
		{
			name:    "three players",
			entries: []Entry{{"A", 4}, {"B", 4}, {"C", 4}},
			rounds:  3,
			reason:  ErrInsufficientPlayers,
		},
		{
			name:    "blank names are not counted",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"   ", 1}},
			rounds:  1,
			reason:  ErrInsufficientPlayers,
		},
		{
			name:    "insufficient players wins over duplicates",
			entries: []Entry{{"A", 0}, {"A", 0}},
			rounds:  1,
			reason:  ErrInsufficientPlayers,
		},
		{
			name:    "duplicate after trimming",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {" A ", 1}},
			rounds:  1,
			reason:  ErrDuplicateName,
		},
		{
			name:    "duplicate wins over zero quota",
			entries: []Entry{{"A", 0}, {"B", 1}, {"C", 1}, {"B", 1}},
			rounds:  1,
			reason:  ErrDuplicateName,
		},
		{
			name:    "zero quota",
			entries: []Entry{{"A", 2}, {"B", 2}, {"C", 0}, {"D", 4}},
			rounds:  2,
			reason:  ErrZeroQuota,
		},
		{
			name:    "negative quota",
			entries: []Entry{{"A", 2}, {"B", 2}, {"C", -1}, {"D", 5}},
			rounds:  2,
			reason:  ErrNegativeQuota,
		},
		{
			name:    "zero quota wins over slot mismatch",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 0}},
			rounds:  1,
			reason:  ErrZeroQuota,
		},
		{
			name:    "too few games",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  2,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "zero rounds",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  0,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "negative rounds",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  -1,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "rounds times four overflows",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  math.MaxInt/PlayersPerRound + 1,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "games not a multiple of four",
			entries: []Entry{{"A", 2}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  1,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "sum of games overflows",
			entries: []Entry{{"A", math.MaxInt}, {"B", math.MaxInt}, {"C", 1}, {"D", 1}},
			rounds:  1,
			reason:  ErrSlotMismatch,
		},
		{
			name:    "single round",
			entries: []Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}},
			rounds:  1,
		},
		{
			name:    "uneven quotas",
			entries: []Entry{{"A", 3}, {"B", 1}, {"C", 2}, {"D", 2}, {"E", 4}},
			rounds:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, err := Validate(tt.entries, tt.rounds)
			if tt.reason == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.rounds, accepted.Rounds)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)
			assert.Empty(t, accepted.Entries)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

func TestValidateTrimsNames(t *testing.T) {
	input := []Entry{{" Alice", 1}, {"Bob ", 1}, {"", 3}, {"Carol", 1}, {"\tDan\n", 1}}

	accepted, err := Validate(input, 1)
	require.NoError(t, err)

	assert.Equal(t, []Entry{{"Alice", 1}, {"Bob", 1}, {"Carol", 1}, {"Dan", 1}}, accepted.Entries)
	assert.Equal(t, " Alice", input[0].Name, "input must not be modified")
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := Validate(entries(map[string]int{"A": 1, "B": 1, "C": 1, "D": 2}, "A", "B", "C", "D"), 1)
	require.Error(t, err)
	assert.Equal(t,
		"assigned games do not match total available slots: total assigned games (5) must equal total slots (4)",
		err.Error())

	_, err = Validate([]Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"B", 1}}, 1)
	require.Error(t, err)
	assert.Equal(t, `duplicate player name: "B"`, err.Error())

	_, err = Validate([]Entry{{"A", 1}, {"B", 1}, {"C", 1}, {"D", 1}}, -2)
	require.Error(t, err)
	assert.Equal(t,
		"assigned games do not match total available slots: total assigned games (4) cannot fill -2 rounds",
		err.Error())
}
