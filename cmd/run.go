package cmd

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/portalworld/experiment"
	"github.com/samuelfneumann/portalworld/experiment/checkpointer"
	"github.com/samuelfneumann/portalworld/experiment/tracker"
	"github.com/samuelfneumann/portalworld/utils/progressbar"
)

func RunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an online experiment and save returns and episode lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt)
			defer cancel()

			return run(ctx, cmd)
		},
	}
	addRunFlags(cmd)

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command) error {
	if err := os.MkdirAll(savePath, 0o755); err != nil {
		return fmt.Errorf("run: could not create save path: %w", err)
	}
	if err := record(savePath); err != nil {
		return err
	}

	returns := tracker.NewReturn(path.Join(savePath, "returns.bin"))
	lengths := tracker.NewEpisodeLength(path.Join(savePath, "lengths.bin"))
	exp, err := config.CreateExp(returns, lengths)
	if err != nil {
		return err
	}
	if checkpointEvery > 0 {
		if err := addCheckpointer(exp); err != nil {
			return err
		}
	}
	exp.SetProgressBar(progressbar.New(cmd.ErrOrStderr(), 40,
		int(config.MaxSteps), 100))

	if err := exp.Run(ctx); err != nil {
		return err
	}
	if err := exp.Save(); err != nil {
		return err
	}

	summarize(returns.Data(), lengths.Data())
	return nil
}

// addCheckpointer checkpoints the environment of exp every
// checkpointEvery steps
func addCheckpointer(exp *experiment.Online) error {
	object, ok := exp.Environment.(gob.GobEncoder)
	if !ok {
		return fmt.Errorf("run: cannot checkpoint environment %T",
			exp.Environment)
	}

	cp, err := checkpointer.NewNStep(checkpointEvery, object,
		checkpointer.FilenameEnumerator(path.Join(savePath, "checkpoint"),
			".bin"))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	exp.RegisterCheckpointer(cp)
	return nil
}

// record saves the configuration of the run to config.json and the
// environment configuration alone to env.json, which --env-config reads
func record(dir string) error {
	if err := config.Save(path.Join(dir, "config.json")); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err := config.EnvConf.Save(path.Join(dir, "env.json")); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return nil
}

func summarize(returns, lengths []float64) {
	if len(returns) == 0 {
		log.Println("no episodes completed")
		return
	}

	mean, std := stat.MeanStdDev(returns, nil)
	log.Printf("episodes: %d  return: %.3f ± %.3f (best %v)  length: %.1f",
		len(returns), mean, std, floats.Max(returns), stat.Mean(lengths, nil))
}
