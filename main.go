package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"gridpath/pkg/engine/input"
	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/terminal"
	"gridpath/pkg/game/config"
	"gridpath/pkg/game/devtools"
	"gridpath/pkg/game/gameplay"
	"gridpath/pkg/game/generator"
	"gridpath/pkg/game/messages"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/renderer/tui"
	"gridpath/pkg/game/state"
	"gridpath/pkg/game/telemetry"
)

type flags struct {
	configPath  string
	rows, cols  int
	seed        int64
	ratio       float64
	generator   string
	batch       bool
	png         string
	dump        string
	metricsAddr string
	lang        string
	delay       time.Duration
	noColor     bool
	devMap      string
	verbose     bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	flag.IntVar(&f.rows, "rows", 0, "grid rows")
	flag.IntVar(&f.cols, "cols", 0, "grid columns")
	flag.Int64Var(&f.seed, "seed", 0, "generator seed (0 picks one from the clock)")
	flag.Float64Var(&f.ratio, "ratio", 0, "share of blocked cells for the noise generator")
	flag.StringVar(&f.generator, "generator", "", fmt.Sprintf("grid generator %v", generator.Names()))
	flag.BoolVar(&f.batch, "batch", false, "generate, solve once and exit (status 0 if a path was found)")
	flag.StringVar(&f.png, "png", "", "write a PNG of the grid after each solve")
	flag.StringVar(&f.dump, "dump", "", "write a text dump of the grid after each solve")
	flag.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flag.StringVar(&f.lang, "lang", "", fmt.Sprintf("message language %v", messages.Languages()))
	flag.DurationVar(&f.delay, "delay", 0, "pause after each search event to animate the search")
	flag.BoolVar(&f.noColor, "no-color", false, "draw glyphs instead of colors")
	flag.StringVar(&f.devMap, "devmap", "", fmt.Sprintf("load a developer map %v", devtools.DevMapNames()))
	flag.BoolVar(&f.verbose, "v", false, "log search details to stderr")
	flag.Parse()
	return f
}

// loadConfig reads the config file if given and applies any flags set on the command line
func loadConfig(f flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "rows":
			cfg.Grid.Rows = f.rows
		case "cols":
			cfg.Grid.Cols = f.cols
		case "seed":
			cfg.Grid.Seed = f.seed
		case "ratio":
			cfg.Grid.BlockedRatio = f.ratio
		case "generator":
			cfg.Grid.Generator = f.generator
		case "png":
			cfg.Export.PNG = f.png
		case "dump":
			cfg.Export.Dump = f.dump
		case "metrics-addr":
			cfg.Metrics.Addr = f.metricsAddr
		case "lang":
			cfg.Locale.Lang = f.lang
		case "delay":
			cfg.Render.DelayMS = int(f.delay / time.Millisecond)
		case "no-color":
			cfg.Render.NoColor = f.noColor
		}
	})

	if cfg.Grid.Seed == 0 {
		cfg.Grid.Seed = time.Now().UnixNano()
	}

	return cfg, cfg.Validate()
}

func main() {
	f := parseFlags()

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(f)
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	catalog, err := messages.Load(cfg.Locale.Lang)
	if err != nil {
		log.Fatalf("Cannot load messages: %v", err)
	}
	messages.SetCurrent(catalog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Metrics.Addr != "" {
		if err := telemetry.Serve(ctx, cfg.Metrics.Addr); err != nil {
			log.Fatalf("Cannot start metrics server: %v", err)
		}
	}

	s, gen, err := gameplay.BuildSession(cfg)
	if err != nil {
		log.Fatalf("Cannot build session: %v", err)
	}
	if f.devMap != "" {
		if err := devtools.SwitchToDevMap(s, f.devMap); err != nil {
			log.Fatalf("Cannot load dev map: %v", err)
		}
	}

	if f.batch || !terminal.IsInteractive() {
		os.Exit(runBatch(ctx, s, cfg))
	}

	var opts []tui.Option
	if cfg.Render.NoColor {
		opts = append(opts, tui.WithoutColor())
	}
	if cfg.Render.DelayMS > 0 {
		opts = append(opts, tui.WithDelay(time.Duration(cfg.Render.DelayMS)*time.Millisecond))
	}
	renderer.SetRenderer(tui.New(opts...))
	renderer.Init()

	terminal.HideCursor(os.Stdout)
	defer terminal.ShowCursor(os.Stdout)

	reader := input.NewStdinReader()
	for {
		if !mainLoop(ctx, s, gen, cfg, reader) {
			return
		}
	}
}

// mainLoop draws one frame and handles one command. It returns false on quit.
func mainLoop(ctx context.Context, s *state.Session, gen generator.GridGenerator, cfg *config.Config, reader *input.Reader) bool {
	renderer.RenderFrame(s)

	cmd, err := reader.Next()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	switch cmd {
	case input.CommandSolve:
		gameplay.Solve(ctx, s, renderer.Observer{})
		export(s, cfg)
	case input.CommandReset:
		gameplay.Reset(s, gen)
	case input.CommandHelp:
		s.AddMessage(renderer.FormatText("GT{HELP}"))
	case input.CommandQuit:
		renderer.Clear()
		return false
	default:
		s.AddMessage(messages.Get(messages.UnknownCommand))
	}

	return ctx.Err() == nil
}

// runBatch solves once, prints the result as plain text and returns the exit status
func runBatch(ctx context.Context, s *state.Session, cfg *config.Config) int {
	out := gameplay.Solve(ctx, s)
	export(s, cfg)

	fmt.Print(renderer.TextGrid(s))
	for _, msg := range s.Messages {
		fmt.Println(msg)
	}

	slog.Debug("batch finished",
		slog.String("session", s.ID.String()),
		slog.String("status", out.Status.String()),
		slog.Int("steps", out.Steps()),
	)

	if out.Status == search.Succeeded {
		return 0
	}
	return 1
}

// export writes the configured PNG and text dump of the session
func export(s *state.Session, cfg *config.Config) {
	if cfg.Export.PNG != "" {
		path, err := devtools.SaveScreenshotPNG(s, cfg.Export.PNG, cfg.Export.Scale)
		if err != nil {
			log.Printf("Cannot save screenshot: %v", err)
		} else {
			s.AddMessage(messages.Get(messages.Exported, path))
		}
	}
	if cfg.Export.Dump != "" {
		path, err := devtools.DumpMapToFile(s, cfg.Export.Dump)
		if err != nil {
			log.Printf("Cannot dump map: %v", err)
		} else {
			s.AddMessage(messages.Get(messages.Exported, path))
		}
	}
}
