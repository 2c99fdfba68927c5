package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dhamidi/sectsv/codebase"
	"github.com/dhamidi/sectsv/config"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [file|dir]...",
		Short: "Report the first structural fault of each file",
		Long: `Check parses every given file, and every matching file below every given
directory, and prints path:line: message for each file that fails.
It exits with an error if any file fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			out := cmd.OutOrStdout()

			var bases []*codebase.Codebase
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}
				if info.IsDir() {
					c := codebase.New(arg, cfg.Extensions...)
					if err := c.ScanAll(); err != nil {
						return fmt.Errorf("scan %s: %w", arg, err)
					}
					bases = append(bases, c)
					continue
				}
				c := codebase.New(arg, cfg.Extensions...)
				if err := c.ScanFile(arg); err != nil {
					return fmt.Errorf("read %s: %w", arg, err)
				}
				bases = append(bases, c)
			}

			checked, failed := 0, 0
			for _, c := range bases {
				for _, f := range c.Files() {
					checked++
					if f.ParseErr != nil {
						failed++
						report(out, f)
					}
				}
			}
			log.Infof("checked %d files, %d failed", checked, failed)

			if watch {
				return watchAll(cmd.Context(), out, bases)
			}
			if failed > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d of %d files failed", failed, checked)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-check directories on change")

	return cmd
}

func report(w io.Writer, f *codebase.FileInfo) {
	if perr := f.Fault(); perr != nil {
		fmt.Fprintf(w, "%s:%d: %s\n", f.Path, perr.Line, perr.Message)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", f.Path, f.ParseErr)
}

func watchAll(ctx context.Context, w io.Writer, bases []*codebase.Codebase) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errc := make(chan error, len(bases))
	started := 0
	for _, c := range bases {
		if info, err := os.Stat(c.RootDir()); err != nil || !info.IsDir() {
			continue
		}
		watcher, err := codebase.NewFileWatcher(c)
		if err != nil {
			return err
		}
		started++
		go func() {
			errc <- watcher.Run(ctx, func(f *codebase.FileInfo, removed bool) {
				switch {
				case removed:
					fmt.Fprintf(w, "%s: removed\n", f.Path)
				case f.ParseErr != nil:
					report(w, f)
				default:
					fmt.Fprintf(w, "%s: ok\n", f.Path)
				}
			})
		}()
	}
	if started == 0 {
		return fmt.Errorf("nothing to watch: --watch needs a directory")
	}

	var firstErr error
	for i := 0; i < started; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
