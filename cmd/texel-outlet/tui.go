// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/tui.go
// Summary: Interactive terminal session driving outlets with key bindings.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/framegrace/texeloutlet/config"
	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/script"
	"github.com/framegrace/texeloutlet/texel"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const welcomeText = `package main

// Type here. Ctrl-O opens an outlet, Ctrl-R relocates it,
// Ctrl-T toggles it and Ctrl-F moves focus. Ctrl-Q quits.
`

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Drive outlets interactively",
	Long: `Open a scratch editor and an outlet in a terminal workspace. Keys are read
from the keybindings section of texel-outlet.json and reloaded when it changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui needs an interactive terminal")
		}
		file, err := openLog(logPath)
		if err != nil {
			return err
		}
		defer file.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		driver := texel.NewTcellScreenDriver(screen)
		if err := driver.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer driver.Fini()

		sys := config.System()
		s, err := newSession(ctx, driver, outletOptions(), loadKeymap(sys), renderOptions(sys))
		if err != nil {
			return err
		}

		watcher, err := config.Watch(ctx, func() {
			driver.PostEvent(tcell.NewEventInterrupt(reloadRequest{}))
		})
		if err != nil {
			log.Printf("TUI: config watching disabled: %v", err)
		} else {
			defer watcher.Close()
		}
		go func() {
			<-ctx.Done()
			driver.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
		}()
		return s.loop(ctx)
	},
}

type (
	reloadRequest struct{}
	quitRequest   struct{}
)

// session is one interactive workspace. All fields are owned by the loop
// goroutine.
type session struct {
	runner   *script.Runner
	ws       *texel.Workspace
	driver   texel.ScreenDriver
	renderer *texel.Renderer
	keys     keymap
	outlets  []string
	created  int
	editors  int
}

func newSession(ctx context.Context, driver texel.ScreenDriver, opts outlet.Options, keys keymap, ropts texel.RenderOptions) (*session, error) {
	ws := newWorkspace()
	s := &session{
		runner:   script.NewRunner(ws, opts),
		ws:       ws,
		driver:   driver,
		renderer: texel.NewRenderer(ws, driver, ropts),
		keys:     keys,
	}
	if err := s.runner.Step(ctx, script.Step{Op: script.OpEditor, Name: "scratch.go", Text: welcomeText}); err != nil {
		return nil, err
	}
	if err := s.newOutlet(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) loop(ctx context.Context) error {
	s.driver.HideCursor()
	s.renderer.Draw()
	for {
		switch ev := s.driver.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.renderer.Draw()
		case *tcell.EventInterrupt:
			switch ev.Data().(type) {
			case quitRequest:
				return nil
			case reloadRequest:
				s.reload()
				s.renderer.Draw()
			}
		case *tcell.EventKey:
			quit, err := s.handleKey(ctx, ev)
			if err != nil {
				log.Printf("TUI: %v", err)
			}
			if quit {
				return nil
			}
			s.renderer.Draw()
		}
	}
}

func (s *session) reload() {
	sys := config.System()
	s.keys = loadKeymap(sys)
	s.renderer.SetOptions(renderOptions(sys))
	s.runner.SetBase(outletOptions())
	log.Printf("TUI: reloaded config")
}

// handleKey runs the bound action, or types into the focused item. It
// reports whether the session should end.
func (s *session) handleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	if action, ok := s.keys.lookup(ev); ok {
		return action == actionQuit, s.perform(ctx, action)
	}
	switch ev.Key() {
	case tcell.KeyRune:
		return false, s.typeText(string(ev.Rune()))
	case tcell.KeyEnter:
		return false, s.typeText("\n")
	case tcell.KeyTab:
		return false, s.typeText("\t")
	}
	return false, nil
}

func (s *session) perform(ctx context.Context, action string) error {
	switch action {
	case actionQuit:
		return nil
	case actionNewOutlet:
		return s.newOutlet(ctx)
	case actionSplitEditor:
		s.editors++
		name := fmt.Sprintf("editor-%d.txt", s.editors)
		return s.runner.Step(ctx, script.Step{Op: script.OpEditor, Name: name, Split: string(outlet.SplitRight)})
	case actionClose:
		name, ok := s.runner.NameOf(s.ws.ActiveItem())
		if !ok {
			return nil
		}
		return s.runner.Step(ctx, script.Step{Op: script.OpClose, Target: name})
	}

	target, ok := s.currentOutlet()
	if !ok {
		return nil
	}
	switch action {
	case actionRelocate:
		return s.runner.Step(ctx, script.Step{Op: script.OpRelocate, Target: target})
	case actionToggle:
		return s.runner.Step(ctx, script.Step{Op: script.OpToggle, Target: target})
	case actionToggleFocus:
		return s.runner.Step(ctx, script.Step{Op: script.OpToggleFocus, Target: target})
	case actionShow:
		return s.runner.Step(ctx, script.Step{Op: script.OpShow, Target: target})
	case actionHide:
		return s.runner.Step(ctx, script.Step{Op: script.OpHide, Target: target})
	case actionLink:
		editor, ok := s.runner.NameOf(s.centerItem())
		if !ok {
			return nil
		}
		return s.runner.Step(ctx, script.Step{Op: script.OpLink, Target: target, Editor: editor})
	}
	return fmt.Errorf("unknown action %q", action)
}

func (s *session) newOutlet(ctx context.Context) error {
	s.created++
	name := "output"
	if s.created > 1 {
		name = fmt.Sprintf("output-%d", s.created)
	}
	if err := s.runner.Step(ctx, script.Step{Op: script.OpOutlet, Name: name}); err != nil {
		return err
	}
	s.outlets = append(s.outlets, name)
	return nil
}

// currentOutlet is the focused outlet, else the newest one still open.
func (s *session) currentOutlet() (string, bool) {
	if name, ok := s.runner.NameOf(s.ws.ActiveItem()); ok {
		if _, isOutlet := s.runner.Outlet(name); isOutlet {
			return name, true
		}
	}
	for i := len(s.outlets) - 1; i >= 0; i-- {
		if _, ok := s.runner.Outlet(s.outlets[i]); ok {
			return s.outlets[i], true
		}
	}
	return "", false
}

func (s *session) centerItem() outlet.Item {
	if pane := s.ws.CenterActivePane(); pane != nil {
		return pane.ActiveItem()
	}
	return nil
}

func (s *session) typeText(text string) error {
	name, ok := s.runner.NameOf(s.ws.ActiveItem())
	if !ok {
		return nil
	}
	return s.runner.Step(context.Background(), script.Step{Op: script.OpEdit, Target: name, Text: text})
}
