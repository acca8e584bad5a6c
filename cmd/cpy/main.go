// cpy: copy to and paste from the X clipboard.
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/cpy/internal/clip"
	"go.klb.dev/cpy/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

// env is everything a run touches outside the process.
type env struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	stdinTTY   bool
	newBackend func(clip.Options) clip.Backend
}

func main() {
	os.Exit(run(os.Args[1:], env{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		stdinTTY: logging.IsTTY(os.Stdin),
		newBackend: func(opts clip.Options) clip.Backend {
			return clip.NewXClip(opts)
		},
	}))
}

// run executes one invocation and returns the process exit status. Any
// error is reported by cobra as a single "Error: ..." line on stderr.
func run(args []string, e env) int {
	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetIn(e.stdin)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "cpy [file]",
		Short: "Copy to and paste from the X clipboard",
		Long: `cpy copies stdin or a file to the X clipboard, or prints the clipboard
when stdin is a terminal. Clipboard access goes through xclip.

Every argument is positional, so any file name works. Settings come from
cpy.toml and CPY_* environment variables; run "cpy --help" for the list.`,
		// Arguments are file names, never flags. selectAction handles -h/--help.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, e, args)
		},
	}
}

// resolveLogging sets up the global slog logger once settings are loaded.
func resolveLogging(w io.Writer, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	logging.Setup(w, format, level)
}
