package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/plasma/app"
	"github.com/lixenwraith/plasma/constant"
	"github.com/lixenwraith/plasma/core"
	"github.com/lixenwraith/plasma/engine"
	"github.com/lixenwraith/plasma/render"
	"github.com/lixenwraith/plasma/terminal"
)

var (
	colorModeFlag = flag.String("color", constant.DefaultColorMode, "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write diagnostics to "+constant.LogDir+"/"+constant.LogFileName)
	levelFlag     = flag.String("level", constant.DefaultLogLevel, "Log level: debug, info, warn, error")
	seedFlag      = flag.Uint64("seed", 0, "Palette generator seed, 0 derives one from the clock")
	scaleFlag     = flag.Int("scale", constant.DefaultDensity, "Buffer pixels per terminal pixel along each axis")
	mouseFlag     = flag.Bool("mouse", true, "Report pointer motion; motion starts the animation")
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	colorMode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	level, err := core.ParseLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	scale := *scaleFlag
	if scale < 1 || scale > constant.MaxDensity {
		fmt.Fprintf(os.Stderr, "scale must be between 1 and %d\n", constant.MaxDensity)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "plasma needs an interactive terminal")
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := core.NewStdLogger(nil, level)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eng := engine.NewEngine(logger, engine.NewMonotonicClock(), render.NewFiller(seed))

	host := terminal.NewApp(screen, terminal.NewWindow(screen, colorMode, scale), logger)
	host.SetMouse(*mouseFlag)
	host.SetHandler(engine.NewEventRouter(eng))

	if err := host.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer host.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	runDone := make(chan struct{})
	watchSignals(sigCh, runDone, host.Interrupt)

	logger.Logf(core.LevelInfo, "starting: color=%s scale=%d seed=%d", colorMode, scale, seed)
	app.Run(host, eng, logger)
	close(runDone)

	stats := eng.Stats()
	logger.Logf(core.LevelInfo, "exiting: %d frames, %d dropped, last average %v", stats.Frames, stats.Dropped, stats.Average)
}
