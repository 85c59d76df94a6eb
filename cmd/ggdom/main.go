// Command ggdom applies edit-stream scenarios to a retained tree and
// reports what every frame changed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/gogpu/ggdom"
	"github.com/gogpu/ggdom/layout"
)

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		ggdom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else if cmd.Bool("verbose") {
		ggdom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	return ctx, nil
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func scenarioArg(cmd *cli.Command) (*Scenario, error) {
	if cmd.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one SCENARIO argument, got %d", cmd.NArg())
	}
	return loadScenario(cmd.Args().First())
}

func applyAction(_ context.Context, cmd *cli.Command) (err error) {
	sc, err := scenarioArg(cmd)
	if err != nil {
		return err
	}
	doc, frames, err := runScenario(output(cmd), sc, runOptions{
		validate: !cmd.Bool("no-validate"),
		strict:   cmd.Bool("strict"),
	})
	if doc != nil {
		defer func() {
			err = multierr.Append(err, doc.Close())
		}()
	}
	if err != nil {
		return err
	}

	if fname := cmd.String("png"); fname != "" {
		var dirty *layout.Area
		for i := len(frames) - 1; i >= 0; i-- {
			if frames[i].HasDirty {
				dirty = &frames[i].DirtyRect
				break
			}
		}
		if err := savePNG(fname, renderDocument(doc, dirty)); err != nil {
			return err
		}
		ggdom.Logger().Info("image written", "file", fname)
	}
	return nil
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	sc, err := scenarioArg(cmd)
	if err != nil {
		return err
	}
	if err := validateScenario(sc); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(output(cmd), e)
		}
		return fmt.Errorf("%d problem(s) found", len(multierr.Errors(err)))
	}
	fmt.Fprintf(output(cmd), "%d frame(s) OK\n", len(sc.Frames))
	return nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "ggdom",
		Usage:           "applies edit-stream scenarios to a retained element tree",
		HideHelpCommand: true,
		Before:          setupLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every mutation to stderr"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log frame summaries to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "apply",
				Usage:     "Applies every frame of a scenario and prints what changed",
				ArgsUsage: "SCENARIO",
				Action:    applyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "png", Usage: "paint the final layout and the last dirty rectangle to `FILE`"},
					&cli.BoolFlag{Name: "strict", Usage: "fail when a registered node has no layout"},
					&cli.BoolFlag{Name: "no-validate", Usage: "skip static validation of the edit streams"},
				},
			},
			{
				Name:      "validate",
				Usage:     "Checks the edit streams of a scenario without applying them",
				ArgsUsage: "SCENARIO",
				Action:    validateAction,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ggdom: %v\n", err)
		os.Exit(1)
	}
}
