package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockReplaysReplies(t *testing.T) {
	mock := &Mock{Replies: []string{"first", "second"}}

	for i, want := range []string{"first", "second", "second"} {
		got, err := mock.Generate(context.Background(), textPrompt("s", "u"))
		require.NoError(t, err, "call %d", i)
		assert.Equal(t, want, got, "call %d", i)
	}

	assert.Equal(t, 3, mock.Calls)
	require.Len(t, mock.Prompts, 3)
	assert.Equal(t, "s", mock.Prompts[0].System)
}

func TestMockError(t *testing.T) {
	boom := errors.New("boom")
	mock := &Mock{Err: boom}

	_, err := mock.Generate(context.Background(), textPrompt("", "u"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, mock.Calls)
}
