// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/run.go
// Summary: Replays a YAML scenario and prints the resulting layout.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/framegrace/texeloutlet/config"
	"github.com/framegrace/texeloutlet/script"
	"github.com/framegrace/texeloutlet/texel"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var renderSize string

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario file",
	Long: `Replay the steps of a YAML scenario against a fresh workspace, then print
the layout. Expect steps make the command fail when they do not hold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logPath != "" {
			file, err := openLog(logPath)
			if err != nil {
				return err
			}
			defer file.Close()
		}

		sc, err := script.Load(args[0])
		if err != nil {
			return err
		}
		runner := script.NewRunner(newWorkspace(), outletOptions())
		if err := runner.Run(cmd.Context(), sc); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, runner.Workspace().Dump())
		if renderSize == "" {
			return nil
		}
		w, h, err := parseSize(renderSize)
		if err != nil {
			return err
		}
		text, err := renderText(runner.Workspace(), renderOptions(config.System()), w, h)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		_, err = io.WriteString(out, text)
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&renderSize, "render", "", "also draw the final layout at WIDTHxHEIGHT, e.g. 80x24")
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

// renderText draws ws on an off-screen terminal and returns its rows with
// trailing blanks trimmed.
func renderText(ws *texel.Workspace, opts texel.RenderOptions, w, h int) (string, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return "", fmt.Errorf("init screen: %w", err)
	}
	defer sim.Fini()
	sim.SetSize(w, h)

	driver := texel.NewTcellScreenDriver(sim)
	texel.NewRenderer(ws, driver, opts).Draw()

	var sb strings.Builder
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; {
			ch, _, _, width := driver.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			row.WriteRune(ch)
			if width < 1 {
				width = 1
			}
			x += width
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
