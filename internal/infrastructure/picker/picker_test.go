package picker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"deepfake-detect/internal/domain/entity"
)

func TestStatic_PickImage(t *testing.T) {
	ctx := context.Background()

	path, err := Static("  photo.jpg ").PickImage(ctx)
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", path)

	_, err = Static("").PickImage(ctx)
	require.ErrorIs(t, err, entity.ErrNoImageSelected)

	_, err = Static("   ").PickImage(ctx)
	require.ErrorIs(t, err, entity.ErrNoImageSelected)
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Static("photo.jpg").PickImage(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
