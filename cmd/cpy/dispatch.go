package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cpy/internal/bridge"
	"go.klb.dev/cpy/internal/clip"
)

type action int

const (
	actionPaste action = iota
	actionCopyStdin
	actionCopyFile
	actionUsage
)

func (a action) String() string {
	switch a {
	case actionPaste:
		return "paste"
	case actionCopyStdin:
		return "copy-stdin"
	case actionCopyFile:
		return "copy-file"
	default:
		return "usage"
	}
}

// selectAction picks what a run does from its positional arguments and
// whether stdin is a terminal.
func selectAction(args []string, stdinTTY bool) action {
	switch len(args) {
	case 0:
		if stdinTTY {
			return actionPaste
		}
		return actionCopyStdin
	case 1:
		if args[0] == "--help" || args[0] == "-h" {
			return actionUsage
		}
		return actionCopyFile
	default:
		return actionUsage
	}
}

// dispatch runs the selected action. Usage is printed before any settings
// are read, so help works even with a broken config.
func dispatch(cmd *cobra.Command, e env, args []string) error {
	act := selectAction(args, e.stdinTTY)
	if act == actionUsage {
		printUsage(cmd.OutOrStdout())
		return nil
	}

	v := viper.New()
	if err := loadConfig(v); err != nil {
		return err
	}
	setupLogging(v, e.stderr)
	slog.Debug("cpy starting", "version", Version, "config", v.ConfigFileUsed())

	backend := e.newBackend(clip.Options{
		Program:   v.GetString("xclip"),
		Selection: v.GetString("selection"),
	})
	slog.Debug("dispatch", "action", act, "backend", backend.Name())

	b := bridge.New(backend)
	ctx := cmd.Context()
	switch act {
	case actionPaste:
		return b.Paste(ctx, cmd.OutOrStdout())
	case actionCopyStdin:
		return b.CopyStream(ctx, cmd.InOrStdin())
	default:
		return b.CopyFile(ctx, args[0])
	}
}

var usageExamples = []struct{ command, explanation string }{
	{"cpy <filename>", "Copy file to clipboard"},
	{"<command> | cpy", "Copy the output of command to clipboard"},
	{"cpy", "Output clipboard contents to stdout"},
	{"cpy > output.txt", "Output clipboard contents to file"},
}

func printUsage(w io.Writer) {
	width := 0
	for _, ex := range usageExamples {
		width = max(width, len(ex.command))
	}

	var sb strings.Builder
	sb.WriteString("Usage:\n")
	for _, ex := range usageExamples {
		fmt.Fprintf(&sb, "\t%-*s # %s\n", width, ex.command, ex.explanation)
	}

	sb.WriteString("\nEnvironment (or the same key in cpy.toml):\n")
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, s := range settings {
		fmt.Fprintf(tw, "  %s\t%s\n", envName(s.key), s.help)
	}
	_ = tw.Flush()

	_, _ = io.WriteString(w, sb.String())
}
