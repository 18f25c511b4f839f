package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	app "deepfake-detect/internal/application"
	"deepfake-detect/internal/domain/port"
	"deepfake-detect/internal/infrastructure/model"
	"deepfake-detect/internal/infrastructure/picker"
	"deepfake-detect/internal/infrastructure/vision"
)

func newCheckCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Pick an image and print whether it is real or fake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&c.imagePath, "image", "", "image to check; skips the file dialog")
	return cmd
}

func (c *cli) runCheck(ctx context.Context) error {
	var filePicker port.FilePicker = picker.NewDialog()
	if c.imagePath != "" {
		filePicker = picker.Static(c.imagePath)
	}

	runner := &app.Runner{
		Loader:       model.NewLoader(c.modelOptions(), c.log),
		Picker:       filePicker,
		Preprocessor: vision.NewPreprocessor(c.cfg.ImageSize),
		Threshold:    c.cfg.Threshold,
		Out:          os.Stdout,
		Log:          c.log,
	}

	_, err := runner.Run(ctx)
	return err
}
