// Package main provides the CLI entry point for yuvnv12.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/yuvnv12/pkg/adapters/filesink"
	"github.com/user/yuvnv12/pkg/adapters/ggrenderer"
	"github.com/user/yuvnv12/pkg/adapters/imagecodec"
	"github.com/user/yuvnv12/pkg/adapters/logger"
	"github.com/user/yuvnv12/pkg/adapters/nullsink"
	"github.com/user/yuvnv12/pkg/adapters/osfilesystem"
	"github.com/user/yuvnv12/pkg/config"
	"github.com/user/yuvnv12/pkg/nv12"
	"github.com/user/yuvnv12/pkg/orchestrator"
	"github.com/user/yuvnv12/pkg/pipeline"
	"github.com/user/yuvnv12/pkg/ports"
	"github.com/user/yuvnv12/pkg/stages/convert"
	"github.com/user/yuvnv12/pkg/stages/probe"
	"github.com/user/yuvnv12/pkg/stages/restore"
	"github.com/user/yuvnv12/pkg/summarizer"
)

var version = "dev"

// errUsage marks errors caused by missing or malformed arguments.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(stderr, l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newApp(stdout, stderr).RunContext(ctx, args); err != nil {
		fmt.Fprintln(stderr, describeError(err))
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "yuvnv12",
		Usage:     l10n.T("Convert images to and from raw NV12 frames"),
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Load settings from a YAML file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   l10n.T("Suppress all log output"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   l10n.T("Goroutines used for conversion (-1 = all CPUs)"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Save decoded planes for debugging"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Usage: l10n.T("Directory for debug output"),
			},
			&cli.StringFlag{
				Name:  "summary-format",
				Usage: l10n.T("Summary output format (text, yaml)"),
			},
		},
		Commands: []*cli.Command{
			convertCommand(),
			readCommand(),
			infoCommand(),
			versionCommand(),
		},
		// Errors are reported by run.
		ExitErrHandler: func(c *cli.Context, err error) {},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     l10n.T("Convert a JPEG or PNG image to an NV12 file"),
		ArgsUsage: "INPUT OUTPUT",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "info", Usage: l10n.T("Show output file information after conversion")},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: l10n.T("Show detailed information")},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: %s", errUsage, l10n.T("convert requires INPUT and OUTPUT"))
			}

			e, err := newEnv(c)
			if err != nil {
				return err
			}

			cfg := e.cfg.ToOrchestratorConfig()
			cfg.Mode = orchestrator.ModeConvert
			cfg.InputPath = c.Args().Get(0)
			cfg.OutputPath = c.Args().Get(1)

			result, err := e.orch.Run(c.Context, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, l10n.F("Converted %s to NV12 (%s)", cfg.InputPath, result.Dimensions))
			if c.Bool("info") {
				return e.writeSummary(c, buildSummary(result))
			}
			return nil
		},
	}
}

func readCommand() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     l10n.T("Decode an NV12 file to an image"),
		ArgsUsage: "INPUT WIDTH HEIGHT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Save the decoded image to this path (JPG/PNG)")},
			&cli.StringFlag{Name: "planes", Usage: l10n.T("Save a Y/U/V plane overview to this path")},
			&cli.BoolFlag{Name: "info", Aliases: []string{"i"}, Usage: l10n.T("Show file information only (no conversion)")},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: l10n.T("Show detailed information")},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: %s", errUsage, l10n.T("read requires INPUT"))
			}

			e, err := newEnv(c)
			if err != nil {
				return err
			}

			cfg := e.cfg.ToOrchestratorConfig()
			cfg.InputPath = c.Args().Get(0)

			if c.Bool("info") {
				if c.NArg() == 3 {
					if cfg.Width, cfg.Height, err = parseDimensions(c.Args().Get(1), c.Args().Get(2)); err != nil {
						return err
					}
				}
				return e.inspect(c, cfg)
			}

			if c.NArg() != 3 {
				return fmt.Errorf("%w: %s", errUsage, l10n.T("Width and height are required for conversion. Use --info to see suggested dimensions."))
			}
			if cfg.Width, cfg.Height, err = parseDimensions(c.Args().Get(1), c.Args().Get(2)); err != nil {
				return err
			}

			cfg.Mode = orchestrator.ModeRestore
			cfg.OutputPath = c.String("output")
			cfg.PlanesPath = c.String("planes")

			result, err := e.orch.Run(c.Context, cfg)
			if err != nil {
				return err
			}

			return e.writeSummary(c, buildSummary(result))
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     l10n.T("Show what a file contains and suggest NV12 dimensions"),
		ArgsUsage: "INPUT",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Usage: l10n.T("Expected frame width")},
			&cli.IntFlag{Name: "height", Usage: l10n.T("Expected frame height")},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: %s", errUsage, l10n.T("info requires INPUT"))
			}

			e, err := newEnv(c)
			if err != nil {
				return err
			}

			cfg := e.cfg.ToOrchestratorConfig()
			cfg.InputPath = c.Args().Get(0)
			cfg.Width = c.Int("width")
			cfg.Height = c.Int("height")
			return e.inspect(c, cfg)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("yuvnv12 version %s", version))
			return nil
		},
	}
}

// env holds the adapters and settings shared by the commands.
type env struct {
	cfg  config.Config
	orch *orchestrator.Orchestrator
}

func newEnv(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override the config file
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("summary-format") {
		cfg.SummaryFormat = c.String("summary-format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errUsage, err.Error())
	}

	level, _ := ports.ParseLogLevel(cfg.LogLevel)
	var log ports.Logger
	switch {
	case c.Bool("quiet"):
		log = logger.NewNoop()
	case c.App.Writer == os.Stdout:
		log = logger.NewConsole(level)
	default:
		log = logger.NewWriter(level, c.App.Writer, c.App.ErrWriter)
	}

	fs := osfilesystem.New()
	codec := imagecodec.New(fs)

	var sink ports.DebugSink
	if cfg.Debug {
		sink = filesink.New(cfg.DebugDir, fs, codec)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		convert.NewStage(fs, codec, log, cfg.Workers),
		restore.NewStage(fs, codec, ggrenderer.New(), sink, log, cfg.Workers),
		probe.NewStage(fs, log),
		log,
	)

	return &env{cfg: cfg, orch: orch}, nil
}

func (e *env) inspect(c *cli.Context, cfg orchestrator.Config) error {
	cfg.Mode = orchestrator.ModeInspect
	result, err := e.orch.Run(c.Context, cfg)
	if err != nil {
		return err
	}
	return e.writeSummary(c, buildSummary(result))
}

func (e *env) writeSummary(c *cli.Context, s *summarizer.Summary) error {
	var f summarizer.Formatter = summarizer.NewTextFormatter(summarizer.WithTranslator(l10n.T))
	if e.cfg.SummaryFormat == "yaml" {
		f = summarizer.NewYAMLFormatter()
	}
	return summarizer.NewWriter(f).WriteTo(c.App.Writer, s)
}

// buildSummary converts an orchestrator result for display.
func buildSummary(r orchestrator.RunResult) *summarizer.Summary {
	var b *summarizer.Builder
	switch r.Mode {
	case orchestrator.ModeInspect:
		b = summarizer.NewBuilder(summarizer.OperationInspect).
			WithInput(r.InputPath, r.InputSize)
		if r.Report != nil {
			b.WithInspection(*r.Report, r.HasCandidate)
		}
	case orchestrator.ModeRestore:
		b = summarizer.NewBuilder(summarizer.OperationRestore).
			WithInput(r.InputPath, r.InputSize).
			WithFrame(r.Dimensions)
		if r.OutputPath != "" {
			b.WithOutput(r.OutputPath, r.OutputSize)
		}
	default:
		b = summarizer.NewBuilder(summarizer.OperationConvert).
			WithInput(r.InputPath, r.InputSize).
			WithOutput(r.OutputPath, r.OutputSize).
			WithFrame(r.Dimensions)
		if r.UnusualExtension {
			b.WithWarning(l10n.F("Input file extension is '%s'. Supported formats: .jpg, .jpeg, .png",
				strings.ToLower(filepath.Ext(r.InputPath))))
		}
	}
	return b.Build()
}

func parseDimensions(ws, hs string) (int, int, error) {
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errUsage, l10n.F("invalid width %q", ws))
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", errUsage, l10n.F("invalid height %q", hs))
	}
	return w, h, nil
}

// describeError turns err into a message with a hint on how to fix it.
func describeError(err error) string {
	var dimErr *nv12.DimensionError
	var sizeErr *nv12.SizeMismatchError

	switch {
	case errors.As(err, &dimErr):
		return l10n.F("Error: %s", err.Error()) + "\n" +
			l10n.F("Suggestion: Resize your image to have even width and height (e.g. %dx%d).",
				evenFloor(dimErr.Width), evenFloor(dimErr.Height))
	case errors.As(err, &sizeErr) && sizeErr.Layout == nv12.LayoutNV12:
		return l10n.F("Error: %s", err.Error()) + "\n" +
			l10n.T("Verify the width and height, or use 'info' to see suggested dimensions.")
	case errors.Is(err, pipeline.ErrImageInput):
		return l10n.F("Error: %s", err.Error()) + "\n" +
			l10n.T("Use 'convert' to turn an image file into NV12.")
	case errors.Is(err, ports.ErrUnsupportedFormat):
		return l10n.F("Error: %s", err.Error()) + "\n" +
			l10n.T("Supported formats: .jpg, .jpeg, .png")
	case errors.Is(err, errUsage):
		return l10n.F("Error: %s", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
	default:
		return l10n.F("Error: %s", err.Error())
	}
}

// evenFloor returns the nearest even value not above n, and at least 2.
func evenFloor(n int) int {
	if n < 2 {
		return 2
	}
	return n &^ 1
}
