package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/rhotate/asset"
	"github.com/lixenwraith/rhotate/audio"
	"github.com/lixenwraith/rhotate/config"
	"github.com/lixenwraith/rhotate/engine"
	"github.com/lixenwraith/rhotate/render"
	"github.com/lixenwraith/rhotate/terminal"
	"github.com/lixenwraith/rhotate/vmath"
)

const (
	msgBadTerminal = "I don't like this terminal!"
	msgInterrupted = "Interrupted by user!"
)

// options are the command line settings layered over the config file
type options struct {
	configPath string
	backend    string
	chime      bool
	debug      bool
	duration   time.Duration
	flags      *pflag.FlagSet
}

func newFlagSet() (*pflag.FlagSet, *options) {
	o := &options{}
	fs := pflag.NewFlagSet("rhotate", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "Config file path (default: ./rhotate.yaml or ~/.config/rhotate/rhotate.yaml)")
	fs.StringVarP(&o.backend, "backend", "b", "", "Display backend: console (Linux console) or tcell (any terminal)")
	fs.BoolVar(&o.chime, "chime", false, "Chime once per full turn")
	fs.BoolVarP(&o.debug, "debug", "d", false, "Write a debug log under the log dir")
	fs.DurationVar(&o.duration, "duration", 0, "Stop after this long (0 runs until a key is pressed)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rhotate [flags] [step]\n\nstep: angle units per frame, 1-10 (default 1)\n\n")
		fs.PrintDefaults()
	}
	o.flags = fs
	return fs, o
}

// negativeStep matches a step argument that pflag would otherwise take for a shorthand flag
var negativeStep = regexp.MustCompile(`^-[0-9]`)

// parseArgs parses args, keeping a negative step such as -4 positional
func parseArgs(fs *pflag.FlagSet, args []string) error {
	return fs.Parse(separateStep(fs, args))
}

// separateStep inserts "--" before the first negative number that is not a flag value
func separateStep(fs *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case negativeStep.MatchString(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case takesValue(fs, arg):
			i++
		}
	}
	return args
}

// takesValue reports whether arg is a flag whose value is the next argument
func takesValue(fs *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		if strings.Contains(arg, "=") {
			return false
		}
		f = fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

// apply layers flags and the positional step over cfg
func (o *options) apply(cfg *config.Config) error {
	if o.flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if o.flags.Changed("chime") {
		cfg.Chime = o.chime
	}
	if o.flags.Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if o.flags.Changed("duration") {
		cfg.Duration = o.duration
	}
	if o.flags.NArg() >= 1 {
		cfg.Step = config.ParseStep(o.flags.Arg(0))
	}
	return cfg.Validate()
}

// newDisplay builds the display for the configured backend along with its palette size
func newDisplay(backend string) (engine.Display, int) {
	if backend == config.BackendTcell {
		return terminal.NewScreen(asset.GlyphPalette, nil), len(asset.GlyphPalette)
	}
	return terminal.NewSession(terminal.NewBackend(), asset.ConsolePalette), len(asset.ConsolePalette)
}

func isEnvironmentError(err error) bool {
	return errors.Is(err, terminal.ErrNotInteractive) ||
		errors.Is(err, terminal.ErrUnsupportedTerm) ||
		errors.Is(err, terminal.ErrSizeUnavailable)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nrhotate crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 1
		}
	}()

	fs, opts := newFlagSet()
	if err := parseArgs(fs, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rhotate: %v\n", err)
		return 1
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rhotate: %v\n", err)
		return 1
	}

	logFile, logger := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Debug().
		Int("step", cfg.Step).
		Str("backend", cfg.Backend).
		Bool("chime", cfg.Chime).
		Dur("frame_unit", cfg.FrameUnit).
		Dur("duration", cfg.Duration).
		Msg("config resolved")

	bitmap, err := asset.DefaultBitmap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rhotate: %v\n", err)
		return 1
	}

	display, paletteSize := newDisplay(cfg.Backend)
	rotator := render.NewRotator(vmath.NewSineTable(), render.NewSampler(bitmap), paletteSize)
	state := engine.NewSessionState(cfg.Step)

	driverOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithFrameUnit(cfg.FrameUnit),
		engine.WithSignalHandler(func(sig os.Signal) {
			logger.Warn().Str("signal", sig.String()).Msg("terminated by signal")
			fmt.Fprintln(os.Stderr, msgInterrupted)
			if logFile != nil {
				logFile.Close()
			}
			os.Exit(1)
		}),
	}
	if cfg.Chime {
		if chime := startChime(logger); chime != nil {
			defer chime.Close()
			driverOpts = append(driverOpts, engine.WithRevolutionHook(chime.Ring))
		}
	}

	ctx := context.Background()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	driver := engine.NewDriver(display, rotator, state, driverOpts...)
	err = driver.Run(ctx)

	stats := driver.Stats()
	logger.Info().
		Uint64("frames", stats.Frames).
		Uint64("revolutions", stats.Revolutions).
		Err(err).
		Msg("animation finished")

	return exitCode(err)
}

// exitCode reports err and maps it to the process status
// Running out the configured duration is a normal stop
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, context.DeadlineExceeded):
		return 0
	case errors.Is(err, engine.ErrAborted):
		fmt.Fprintln(os.Stderr, msgInterrupted)
	case isEnvironmentError(err):
		fmt.Fprintln(os.Stderr, msgBadTerminal)
	default:
		fmt.Fprintf(os.Stderr, "rhotate: %v\n", err)
	}
	return 1
}

// startChime opens the speaker; failure is logged and the animation runs silent
func startChime(logger zerolog.Logger) *audio.Chime {
	chime := audio.NewChime(audio.DefaultChimeConfig())
	if err := chime.Init(); err != nil {
		logger.Warn().Err(err).Msg("chime unavailable, continuing without audio")
		return nil
	}
	return chime
}
