package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"deepfake-detect/config"
	"deepfake-detect/internal/infrastructure/model"
	"deepfake-detect/internal/logger"
)

// cli общее состояние команд после PersistentPreRunE.
type cli struct {
	cfg *config.Config
	log *logrus.Logger

	modelPath string
	threshold float32
	imagePath string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "deepfake-detect",
		Short:         "Classify an image as real or fake with a pre-trained model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.modelPath, "model", "", "path to the ONNX model (overrides MODEL_PATH)")
	flags.Float32Var(&c.threshold, "threshold", 0, "prediction threshold (overrides THRESHOLD)")
	root.Flags().StringVar(&c.imagePath, "image", "", "image to check; skips the file dialog")

	root.AddCommand(newCheckCmd(c), newBotCmd(c))
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("model") {
		cfg.ModelPath = c.modelPath
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = c.threshold
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.log = log
	return nil
}

func (c *cli) modelOptions() model.Options {
	return model.Options{
		ModelPath:   c.cfg.ModelPath,
		LibraryPath: c.cfg.OnnxLibPath,
		InputName:   c.cfg.ModelInputName,
		OutputName:  c.cfg.ModelOutputName,
		ImageSize:   c.cfg.ImageSize,
	}
}
