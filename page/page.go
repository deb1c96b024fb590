// Package page composes the landing screen: marketing chrome around a live
// globe viewport, with the capability detector deciding between real-time
// rendering and the static fallback.
package page

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"terraglow/audio"
	"terraglow/config"
	"terraglow/constant"
	"terraglow/render"
	"terraglow/scene"
	"terraglow/status"
)

// Page owns one mounted instance of the landing screen. Scene geometry,
// fallback composition and the atmosphere uniform belong exclusively to
// this instance; everything is rebuilt on a fresh mount
type Page struct {
	screen tcell.Screen
	buf    *render.Buffer
	cfg    config.Config
	reg    *status.Registry

	detector *Detector
	cam      *render.Camera
	scn      *scene.Scene
	fall     *Fallback

	ambient *audio.Ambient
	start   time.Time

	sceneCh chan *scene.Scene
	inputCh chan tcell.Event

	wireAngle float64
	lastFrame time.Time
}

// New wires a page over an acquired screen
func New(screen tcell.Screen, cfg config.Config, reg *status.Registry) *Page {
	w, h := screen.Size()
	return &Page{
		screen:  screen,
		buf:     render.NewBuffer(w, h),
		cfg:     cfg,
		reg:     reg,
		cam:     render.NewCamera(),
		sceneCh: make(chan *scene.Scene, 1),
		inputCh: make(chan tcell.Event, constant.InputQueueSize),
	}
}

// Run mounts the page and blocks until quit. The scene build runs off the
// loop; the deadline, the build completion and input all funnel into one
// select so state is only ever touched from this goroutine
func (p *Page) Run() error {
	p.start = time.Now()
	p.lastFrame = p.start

	// Mode transitions land as values read each frame; the detector only
	// needs to arbitrate, not to interrupt the loop
	p.detector = NewDetector(p.cfg.FallbackDeadline(), nil)
	defer p.detector.Stop()

	go p.buildScene()
	go p.readInput()

	if p.cfg.Audio {
		start := p.start
		amb, err := audio.Start(func() float64 {
			return scene.PulseFactorAt(time.Since(start).Seconds())
		})
		if err == nil {
			p.ambient = amb
		}
		// Audio failure is cosmetic; the page runs silent
	}
	defer p.ambient.Stop()

	ticker := time.NewTicker(p.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case s := <-p.sceneCh:
			if s != nil && p.detector.SceneReady() {
				p.scn = s
				p.reg.Arcs.Store(int64(len(s.Arcs)))
			}
			// A build landing after the fallback settled is discarded

		case ev := <-p.inputCh:
			if !p.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			p.frame()
		}
	}
}

// buildScene is the asynchronous scene load. Failure reports to the
// detector and the page degrades silently
func (p *Page) buildScene() {
	defer func() {
		if r := recover(); r != nil {
			p.detector.Fail()
		}
	}()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	p.sceneCh <- scene.Build(rng)
}

func (p *Page) readInput() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.inputCh <- ev:
		default:
		}
	}
}

func (p *Page) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := p.screen.Size()
		p.buf.Resize(w, h)
		p.screen.Sync()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyLeft:
			p.cam.Nudge(-constant.CameraNudge, 0)
		case ev.Key() == tcell.KeyRight:
			p.cam.Nudge(constant.CameraNudge, 0)
		case ev.Key() == tcell.KeyUp:
			p.cam.Nudge(0, constant.CameraNudge)
		case ev.Key() == tcell.KeyDown:
			p.cam.Nudge(0, -constant.CameraNudge)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
			p.cam.Zoom(-constant.CameraZoomStep)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == '-' || ev.Rune() == '_'):
			p.cam.Zoom(constant.CameraZoomStep)
		}
	}
	return true
}

// frame renders one tick of whatever mode the detector has settled on
func (p *Page) frame() {
	now := time.Now()
	dt := now.Sub(p.lastFrame).Seconds()
	p.lastFrame = now
	elapsed := now.Sub(p.start).Seconds()

	mode := p.detector.Mode()
	p.reg.ModeCode.Store(int32(mode))
	p.reg.Frames.Add(1)
	if dt > 0 {
		smoothed := p.reg.FPS.Load()*0.9 + (1.0/dt)*0.1
		p.reg.FPS.Store(smoothed)
	}

	w, h := p.buf.Size()
	p.buf.Clear()
	vp := drawChrome(p.buf, w, h, elapsed, p.reg, mode)

	switch mode {
	case ModeProbing:
		p.wireAngle += 0.01
		render.DrawWireframe(p.buf, vp, p.wireAngle)

	case ModeLive:
		if p.scn != nil {
			p.scn.Advance(elapsed)
			p.cam.Update()
			render.DrawScene(p.buf, p.scn, p.cam, vp)
		}

	case ModeFallback:
		if p.fall == nil {
			// Entered fallback: drop any live geometry, build the static set
			p.scn = nil
			p.fall = NewFallback(rand.New(rand.NewSource(time.Now().UnixNano())))
		}
		p.fall.Draw(p.buf, vp)
	}

	p.screen.Clear()
	p.buf.Flush(p.screen)
}
