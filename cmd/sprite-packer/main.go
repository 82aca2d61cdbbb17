package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	spritepacker "github.com/menta2k/sprite-packer"
	"github.com/menta2k/sprite-packer/internal/config"
	"github.com/menta2k/sprite-packer/internal/utils"
	"github.com/menta2k/sprite-packer/pkg/packer"
	"github.com/menta2k/sprite-packer/pkg/source"
	"github.com/menta2k/sprite-packer/pkg/writer"
)

func main() {
	var in, out, ext, configPath string
	var maxWidth, maxHeight int
	var width, height int
	var quality, workers int
	var lossless, frames, skipOversize, verbose bool

	flag.StringVar(&in, "in", "", "input directory containing images (png/webp/jpg/gif/bmp/tiff)")
	flag.StringVar(&out, "out", "sheets", "output directory for sheet files")
	flag.IntVar(&maxWidth, "max-width", 2048, "maximum sheet width in pixels")
	flag.IntVar(&maxHeight, "max-height", 2048, "maximum sheet height in pixels")
	flag.IntVar(&width, "width", 0, "resize every image to this width (0 = keep)")
	flag.IntVar(&height, "height", 0, "resize every image to this height (0 = keep)")
	flag.StringVar(&ext, "ext", "png", "output format for sheets: png|webp|jpg")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")
	flag.BoolVar(&frames, "frames", false, "write frames.json next to the sheets")
	flag.BoolVar(&skipOversize, "skip-oversize", false, "skip images exceeding sheet bounds instead of failing")
	flag.IntVar(&workers, "workers", 1, "concurrent image decoders")
	flag.StringVar(&configPath, "config", "", "JSON config file (flags override its values)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	// Without -config, fall back to the user-level config file when present.
	if configPath == "" && utils.FileExists(config.GetConfigPath()) {
		configPath = config.GetConfigPath()
	}

	cfg := config.Default()
	if configPath != "" {
		if !utils.FileExists(configPath) {
			logger.Fatal("config file does not exist", "path", configPath)
		}
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			logger.Fatal("failed to load config", "path", configPath, "err", err)
		}
		cfg = loaded
	}

	// Flags passed explicitly on the command line win over the config file.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["in"] || cfg.Source.InputDir == "" {
		cfg.Source.InputDir = in
	}
	if set["workers"] {
		cfg.Source.Workers = workers
	}
	if set["max-width"] {
		cfg.Packer.MaxWidth = maxWidth
	}
	if set["max-height"] {
		cfg.Packer.MaxHeight = maxHeight
	}
	if set["width"] {
		cfg.Packer.TargetWidth = width
	}
	if set["height"] {
		cfg.Packer.TargetHeight = height
	}
	if set["skip-oversize"] {
		cfg.Packer.OversizePolicy = "skip"
	}
	if set["out"] || cfg.Output.OutputDir == "" {
		cfg.Output.OutputDir = out
	}
	if set["ext"] {
		cfg.Output.Format = ext
	}
	if set["quality"] {
		cfg.Output.Quality = quality
	}
	if set["lossless"] {
		cfg.Output.Lossless = lossless
	}
	if set["frames"] {
		cfg.Output.WriteFrames = frames
	}

	if cfg.Source.InputDir == "" {
		logger.Fatalf("usage: %s -in images_dir [-out sheets_dir] [-max-width N] [-max-height N] [-width N] [-height N] [-ext png|webp|jpg]",
			filepath.Base(os.Args[0]))
	}
	if !utils.DirExists(cfg.Source.InputDir) {
		logger.Fatal("input directory does not exist", "dir", cfg.Source.InputDir)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	sp := spritepacker.NewWithConfig(
		source.Config{
			Dir:     cfg.Source.InputDir,
			Workers: cfg.Source.Workers,
		},
		packer.Config{
			MaxWidth:     cfg.Packer.MaxWidth,
			MaxHeight:    cfg.Packer.MaxHeight,
			TargetWidth:  cfg.Packer.TargetWidth,
			TargetHeight: cfg.Packer.TargetHeight,
			Oversize:     cfg.Packer.Policy(),
		},
		writer.Config{
			OutputDir:   cfg.Output.OutputDir,
			Format:      cfg.Output.Format,
			Quality:     cfg.Output.Quality,
			Lossless:    cfg.Output.Lossless,
			WriteFrames: cfg.Output.WriteFrames,
		},
	)

	logger.Debug("packing",
		"in", cfg.Source.InputDir,
		"max", fmt.Sprintf("%dx%d", cfg.Packer.MaxWidth, cfg.Packer.MaxHeight),
		"policy", cfg.Packer.OversizePolicy)

	result, paths, err := sp.GenerateAndWrite()
	if err != nil {
		logger.Fatal("packing failed", "err", err)
	}

	for _, s := range result.Skipped {
		logger.Warn("skipped oversized image",
			"index", s.Index,
			"size", fmt.Sprintf("%dx%d", s.Width, s.Height))
	}
	for _, p := range paths {
		logger.Info("wrote", "path", p)
	}

	total := 0
	for _, sheet := range result.Sheets {
		total += len(sheet.Frames)
	}
	logger.Info("done", "sheets", len(result.Sheets), "frames", total, "skipped", len(result.Skipped))
}
