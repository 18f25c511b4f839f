//go:build !windows

package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"deepfake-detect/internal/domain/entity"
)

// PickImage показывает диалог через zenity (GTK, macOS или kdialog).
func (d *Dialog) PickImage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := zenity.SelectFile(
		zenity.Title(Title),
		zenity.Context(ctx),
		zenity.FileFilters{
			{Name: FilterName, Patterns: Patterns},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", entity.ErrNoImageSelected
	}
	if err != nil {
		return "", fmt.Errorf("open file dialog: %w", err)
	}

	return selected(path)
}
