package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"photowatermark/internal/cliconfig"
	"photowatermark/pkg/log"
	"photowatermark/pkg/watermark"
)

var exampleUsage = strings.TrimSpace(`
  watermark ~/Pictures/holiday
  watermark ~/Pictures/holiday/IMG_0001.jpg --font-size 36 --font-color "#FFFFFF" --position top_left
  watermark ./scans --config ./watermark.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:   "watermark <image-or-directory>",
		Short: "Stamp the capture date onto photos",
		Long: strings.TrimSpace(`
Stamps the EXIF capture date (YYYY-MM-DD) of each photo onto the image, or
"Watermark" when the photo has no capture date. Directories are processed
non-recursively. Results are written to <dir>_watermark next to the source
directory; originals are never modified.

Positions: ` + positionList()),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			logger := cliconfig.NewLogger(os.Stderr, cfg.LogLevel)

			wc, err := cfg.Watermark()
			if err != nil {
				return err
			}
			logger.Debug("configuration",
				log.String("input", wc.InputPath),
				log.Int("font_size", wc.FontSize),
				log.String("font_color", wc.FontColor),
				log.String("position", wc.Anchor.String()),
				log.String("font", wc.FontPath))

			p, err := watermark.NewProcessor(wc, watermark.WithLogger(logger))
			if err != nil {
				return err
			}
			res, err := p.Run()
			if err != nil {
				return err
			}
			if len(res.Failures) > 0 {
				logger.Warn("some files could not be processed",
					log.Int("failed", len(res.Failures)),
					log.Int("attempted", res.Attempted))
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.photowatermark/config.toml)")
	root.Flags().IntVarP(&cfg.FontSize, "font-size", "s", cfg.FontSize, "watermark font size")
	root.Flags().StringVarP(&cfg.FontColor, "font-color", "c", cfg.FontColor, "watermark color as #RRGGBB")
	root.Flags().StringVarP(&cfg.Position, "position", "p", cfg.Position, "watermark position")
	root.Flags().StringVar(&cfg.FontPath, "font", cfg.FontPath, "font path (.ttf/.otf), defaults to Go Bold")
	root.Flags().IntVar(&cfg.JPEGQuality, "quality", cfg.JPEGQuality, "JPEG output quality (1-100)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, watermark.ErrInvalidConfig) || errors.Is(err, watermark.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, root.UsageString())
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func positionList() string {
	names := make([]string, 0, len(watermark.Anchors()))
	for _, a := range watermark.Anchors() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
