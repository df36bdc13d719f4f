package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/audio"
	"github.com/helioviz/orrery/config"
	"github.com/helioviz/orrery/input"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/render/renderers"
	"github.com/helioviz/orrery/sim"
)

var configFlag = flag.String("config", "", "Path to TOML config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise it lands on the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nORRERY CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault.Background(render.Background))
	screen.Clear()

	scene := sim.NewScene()
	scene.Speed = cfg.Speed
	scene.ShowOrbits = cfg.ShowOrbits

	var audioEngine *audio.Engine
	if cfg.Audio {
		audioEngine, err = audio.New()
		if err != nil {
			// Silent engine, program runs without cues
			fmt.Fprintf(os.Stderr, "Audio init failed: %v (continuing without audio)\n", err)
		}
		defer audioEngine.Close()
	}

	width, height := screen.Size()

	orchestrator := render.NewOrchestrator(screen, width, height)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewStarfieldRenderer(scene, cfg.StarCount), render.PriorityBackdrop},
		{renderers.NewOrbitsRenderer(scene), render.PriorityOrbits},
		{renderers.NewBodiesRenderer(scene), render.PriorityEntities},
		{renderers.NewGravityRenderer(scene), render.PriorityEffects},
		{renderers.NewInfoPanelRenderer(scene), render.PriorityUI},
		{renderers.NewStatusBarRenderer(scene, audioEngine), render.PriorityUI},
		{renderers.NewTooltipRenderer(scene), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	inputHandler := input.NewHandler(scene, audioEngine, width, height)

	tickInterval := time.Duration(cfg.TickMillis) * time.Millisecond
	dt := float64(cfg.TickMillis) / 1000.0

	frameTicker := time.NewTicker(tickInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	quitChan := make(chan struct{})
	go screen.ChannelEvents(eventChan, quitChan)
	defer close(quitChan)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				width, height = resize.Size()
				inputHandler.SetSize(width, height)
				orchestrator.Resize(width, height)
				continue
			}
			if !inputHandler.HandleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			scene.Tick(dt)
			orchestrator.RenderFrame(render.NewContext(scene, width, height))
		}
	}
}
