package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/boxframe/config"
	"github.com/lixenwraith/boxframe/logging"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "boxframe",
		Short:         "Draw layered borders around the terminal",
		Long:          "Render nested, per-layer styled border frames around the terminal window.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: boxframe.{yaml,toml,json} in ~/.config/boxframe or .)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json, json-pretty")
	pf.String("log-file", "", "log file path; logs are discarded when empty")

	root.AddCommand(newDrawCommand(), newPlanCommand())
	return root
}

// addBorderFlags registers the flags that override config file values
func addBorderFlags(fs *pflag.FlagSet) {
	fs.IntP("padding", "p", 1, "blank cells between the window edge and the outer layer")
	fs.IntP("width", "w", 1, "number of nested layers")
	fs.StringP("type", "t", "solid", "glyph set: solid, dotted, dashed, double")
	fs.StringSliceP("color", "c", nil, "per-layer colors, outermost first (#RRGGBB)")
	fs.StringSlice("gradient", nil, "two colors blended across all layers")
	fs.String("char", "", "draw the border with this single glyph")
	fs.Bool("hide", false, "render nothing")
	fs.String("title", "", "title on the outer top edge")
	fs.String("align", "left", "title alignment: left, center, right")
	fs.Bool("fill", false, "paint the window background before the border")
	fs.Bool("debug", false, "highlight padding cells")
}

// session is the loaded configuration and logger shared by subcommands
type session struct {
	loader *config.Loader
	file   *config.File
	log    *logrus.Logger
	closer io.Closer
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	loader, err := config.NewLoader(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	file, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(logging.Options{
		Level:  file.Log.Level,
		Format: file.Log.Format,
		File:   file.Log.File,
	})
	if err != nil {
		return nil, err
	}
	logger.WithField("config", loader.Path()).Debug("Configuration loaded.")

	return &session{loader: loader, file: file, log: logger, closer: closer}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}
