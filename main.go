// terraglow renders the "AI for Earth" landing experience in the terminal:
// marketing chrome around a rotating particle globe, degrading to a static
// composition wherever real-time rendering is unavailable.
package main

import (
	"io"
	"log"
	"os"

	"terraglow/config"
	"terraglow/page"
	"terraglow/status"
	"terraglow/term"
)

func main() {
	cfg, err := config.Load("terraglow.toml")
	if err != nil {
		// Bad config never blocks the page
		log.Printf("config: %v", err)
	}

	// Route logging away from the raster once the screen is live
	if cfg.LogFile != "" {
		if f, ferr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	mode := cfg.ColorMode
	if mode == "" {
		mode = term.DetectColorMode().String()
	}
	if mode == "256" {
		// tcell honors this before screen creation
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := term.Acquire()
	if err != nil {
		// No rendering context at all: print the static rendition and leave
		// with a clean exit
		log.Printf("degrading to plain output: %v", err)
		page.RenderPlain(os.Stdout)
		return
	}

	defer func() {
		screen.Fini()
		term.Restore()
		if r := recover(); r != nil {
			log.Printf("panic: %v", r)
			os.Exit(1)
		}
	}()

	p := page.New(screen, cfg, status.NewRegistry())
	if err := p.Run(); err != nil {
		log.Printf("page: %v", err)
	}
}
