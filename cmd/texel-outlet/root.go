// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/root.go
// Summary: Root cobra command and shared setup.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/texeloutlet/config"
	"github.com/framegrace/texeloutlet/outlet"
	"github.com/framegrace/texeloutlet/texel"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logPath string
)

var rootCmd = &cobra.Command{
	Use:     "texel-outlet",
	Version: "dev",
	Short:   "Dockable outlet panels over a pane workspace",
	Long: `texel-outlet places outlet panels in a workspace with a center pane
area and left, right and bottom docks.

Use "run" to replay a YAML scenario and "tui" to drive outlets interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		warnConfigError(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace workspace layout changes")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "append logs to this file")
	rootCmd.AddCommand(runCmd, tuiCmd, configCmd)
}

func setVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func execute() error {
	return rootCmd.Execute()
}

// newWorkspace creates a workspace traced when --verbose or the config's
// verbose key is set.
func newWorkspace() *texel.Workspace {
	ws := texel.NewWorkspace()
	ws.SetVerbose(verbose || config.System().GetBool("", "verbose", false))
	return ws
}

func outletOptions() outlet.Options {
	return outlet.OptionsFromConfig(config.App(config.OutletApp))
}

func renderOptions(cfg config.Config) texel.RenderOptions {
	def := texel.DefaultRenderOptions()
	return texel.RenderOptions{
		Style:      cfg.GetString("render", "style", def.Style),
		DockWidth:  cfg.GetInt("render", "dock_width", def.DockWidth),
		DockHeight: cfg.GetInt("render", "dock_height", def.DockHeight),
	}
}

// openLog redirects the standard logger to path, or to the default log file
// under the config dir when path is empty.
func openLog(path string) (*os.File, error) {
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "logs", "texel-outlet.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}

// warnConfigError reports a system config that failed to load. Defaults are
// used in its place and the file is left untouched.
func warnConfigError(w io.Writer) {
	if err := config.Err(); err != nil {
		fmt.Fprintf(w, "Warning: config: %v (using defaults)\n", err)
	}
}
