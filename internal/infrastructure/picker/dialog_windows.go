//go:build windows

package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"deepfake-detect/internal/domain/entity"
)

// PickImage показывает стандартный диалог Windows.
func (d *Dialog) PickImage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := cfdutil.ShowOpenFileDialog(cfd.DialogConfig{
		Title: Title,
		Role:  "DeepfakeDetectSelectImage",
		FileFilters: []cfd.FileFilter{
			{
				DisplayName: fmt.Sprintf("%s (%s)", FilterName, strings.Join(Patterns, ", ")),
				Pattern:     strings.Join(Patterns, ";"),
			},
		},
		SelectedFileFilterIndex: 0,
	})
	if errors.Is(err, cfd.ErrorCancelled) {
		return "", entity.ErrNoImageSelected
	}
	if err != nil {
		return "", fmt.Errorf("open file dialog: %w", err)
	}

	return selected(path)
}
