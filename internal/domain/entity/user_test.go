package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.Nil(t, u.LastVerdict)
}

func TestUser_RecordVerdict(t *testing.T) {
	u := NewUser(1, 10)
	u.RecordVerdict(NewVerdict(0.9, DefaultThreshold))
	u.RecordVerdict(NewVerdict(0.1, DefaultThreshold))

	require.Equal(t, 2, u.Checked)
	require.Equal(t, 1, u.Fakes)
	require.NotNil(t, u.LastVerdict)
	require.Equal(t, LabelReal, u.LastVerdict.Label)
}
