package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusUpcoming.IsTerminal())
	assert.False(t, StatusActive.IsTerminal())
}

func TestStatusIsEditable(t *testing.T) {
	assert.True(t, StatusUpcoming.IsEditable())
	assert.True(t, StatusPending.IsEditable())
	assert.False(t, StatusActive.IsEditable())
	assert.False(t, StatusCompleted.IsEditable())
	assert.False(t, StatusCancelled.IsEditable())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusUpcoming, StatusActive, true},
		{StatusUpcoming, StatusCancelled, true},
		{StatusPending, StatusActive, true},
		{StatusPending, StatusCancelled, true},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},

		// Completion requires the session to have been active.
		{StatusUpcoming, StatusCompleted, false},
		{StatusPending, StatusCompleted, false},

		// Terminal states never move.
		{StatusCompleted, StatusActive, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusUpcoming, false},
		{StatusCancelled, StatusCompleted, false},

		// No going backwards.
		{StatusActive, StatusUpcoming, false},
		{StatusUpcoming, StatusPending, false},

		// Same status is always a no-op.
		{StatusActive, StatusActive, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
