package chatService

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTurn_NoOnFreshSession(t *testing.T) {
	svc := newTestService(&fakeData{})

	answer, err := svc.HandleTurn(context.Background(), "u3", "no")
	require.NoError(t, err)
	assert.Equal(t, msgResetAck, answer)
}

func TestHandleTurn_YesWithoutPendingIntent(t *testing.T) {
	svc := newTestService(&fakeData{})

	answer, err := svc.HandleTurn(context.Background(), "u1", "yes")
	require.NoError(t, err)
	assert.Equal(t, msgAskFirst, answer)
}

func TestHandleTurn_CityRequired(t *testing.T) {
	svc := newTestService(&fakeData{})

	answer, err := svc.HandleTurn(context.Background(), "u1", "show me some locations")
	require.NoError(t, err)
	assert.Equal(t, msgNoCity, answer)
}

func TestHandleTurn_UnknownIntent(t *testing.T) {
	svc := newTestService(&fakeData{})

	answer, err := svc.HandleTurn(context.Background(), "u1", "sing me a song in calamba")
	require.NoError(t, err)
	assert.Equal(t, msgUnknown, answer)
}

func TestHandleTurn_ContinuationWordsAreWholeTokens(t *testing.T) {
	svc := newTestService(&fakeData{attractions: calambaAttractions(6)})
	ctx := context.Background()

	// "nothing" contains "no" and "yesterday" contains "yes"; neither
	// is a continuation turn.
	answer, err := svc.HandleTurn(ctx, "u1", "i know nothing about calamba locations")
	require.NoError(t, err)
	assert.Contains(t, answer, "Here are some locations and attractions in calamba:")

	answer, err = svc.HandleTurn(ctx, "u1", "yesterday i heard about calamba attractions")
	require.NoError(t, err)
	assert.Contains(t, answer, "Here are some locations and attractions in calamba:")
}

func TestHandleTurn_NoTokenWithPunctuation(t *testing.T) {
	svc := newTestService(&fakeData{})

	answer, err := svc.HandleTurn(context.Background(), "u1", "No, thank you!")
	require.NoError(t, err)
	assert.Equal(t, msgResetAck, answer)
}

func TestHandleTurn_NoResetsPagination(t *testing.T) {
	svc := newTestService(&fakeData{attractions: calambaAttractions(6)})
	ctx := context.Background()

	first, err := svc.HandleTurn(ctx, "u1", "show me locations in calamba")
	require.NoError(t, err)
	assert.Len(t, bulletLines(first), 5)

	reset, err := svc.HandleTurn(ctx, "u1", "no")
	require.NoError(t, err)
	assert.Equal(t, msgResetAck, reset)

	// A yes after the reset must not resume the old intent.
	answer, err := svc.HandleTurn(ctx, "u1", "yes")
	require.NoError(t, err)
	assert.Equal(t, msgAskFirst, answer)

	// And a fresh query starts from the beginning again.
	again, err := svc.HandleTurn(ctx, "u1", "show me locations in calamba")
	require.NoError(t, err)
	assert.Len(t, bulletLines(again), 5)
	assert.Contains(t, again, "Would you like to see more?")
}

func TestHandleTurn_NoWinsOverYes(t *testing.T) {
	svc := newTestService(&fakeData{attractions: calambaAttractions(6)})
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, "u1", "show me locations in calamba")
	require.NoError(t, err)

	answer, err := svc.HandleTurn(ctx, "u1", "yes and no")
	require.NoError(t, err)
	assert.Equal(t, msgResetAck, answer)
}

func TestHandleTurn_SessionsAreIndependentPerUser(t *testing.T) {
	svc := newTestService(&fakeData{attractions: calambaAttractions(6)})
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, "u1", "show me locations in calamba")
	require.NoError(t, err)

	// u2 never asked anything, so a yes is rejected even though u1
	// has a pending intent.
	answer, err := svc.HandleTurn(ctx, "u2", "yes")
	require.NoError(t, err)
	assert.Equal(t, msgAskFirst, answer)
}
