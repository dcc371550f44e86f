package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmorgan/noughts/internal/model"
	"github.com/jdmorgan/noughts/internal/storage/memory"
)

func TestSaveAndGetMatch(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	m := &model.Match{
		ID:          "match-1",
		State:       model.MatchStateWaiting,
		Player1ID:   "p1",
		Player1Name: "Alice",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveMatch(ctx, m))

	got, err := s.GetMatch(ctx, "match-1")
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestGetMatchNotFound(t *testing.T) {
	s := memory.New()

	_, err := s.GetMatch(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestSaveMatchOverwrites(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	m := &model.Match{ID: "match-1", State: model.MatchStateWaiting, Player1ID: "p1"}
	require.NoError(t, s.SaveMatch(ctx, m))

	m.State = model.MatchStateInProgress
	m.Player2ID = "p2"
	require.NoError(t, s.SaveMatch(ctx, m))

	got, err := s.GetMatch(ctx, "match-1")
	require.NoError(t, err)
	assert.Equal(t, model.MatchStateInProgress, got.State)
	assert.Equal(t, model.PlayerID("p2"), got.Player2ID)
}

func TestGetMatchReturnsCopy(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	require.NoError(t, s.SaveMatch(ctx, &model.Match{ID: "match-1", State: model.MatchStateWaiting}))

	got, err := s.GetMatch(ctx, "match-1")
	require.NoError(t, err)
	got.State = model.MatchStateFinished

	again, err := s.GetMatch(ctx, "match-1")
	require.NoError(t, err)
	assert.Equal(t, model.MatchStateWaiting, again.State)
}
