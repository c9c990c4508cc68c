package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/portalworld/environment/envconfig"
	"github.com/samuelfneumann/portalworld/experiment"
)

var (
	config        experiment.Config = experiment.DefaultConfig()
	savePath      string
	seed          uint64
	envConfigPath string

	dimension            int
	discount             float64
	cutoff               uint
	maxPlacementAttempts int
	teleportBeforeMove   bool
	coordinates          bool

	steps           uint
	policy          string
	epsilon         float64
	checkpointEvery int
)

func AddFlags(cmd *cobra.Command) {
	config := experiment.DefaultConfig()
	cmd.PersistentFlags().IntVar(&dimension, "dimension", config.EnvConf.Dimension, "Side length of the grid")
	cmd.PersistentFlags().Float64Var(&discount, "discount", config.EnvConf.Discount, "Discount returned on every step")
	cmd.PersistentFlags().UintVar(&cutoff, "cutoff", config.EnvConf.EpisodeCutoff, "Steps after which an episode times out, 0 for none")
	cmd.PersistentFlags().IntVar(&maxPlacementAttempts, "max-placement-attempts", config.EnvConf.MaxPlacementAttempts, "Maximum resamples when placing food and portals, 0 for no limit")
	cmd.PersistentFlags().BoolVar(&teleportBeforeMove, "teleport-before-move", config.EnvConf.TeleportBeforeMove, "Take portals before moving")
	cmd.PersistentFlags().BoolVar(&coordinates, "coordinates", config.EnvConf.Coordinates, "Observe coordinates instead of the occupancy grid")
	cmd.PersistentFlags().StringVar(&envConfigPath, "env-config", "", "Environment config file, such as the env.json of an earlier run, overriding the environment flags")
}

func addRunFlags(cmd *cobra.Command) {
	config := experiment.DefaultConfig()
	cmd.Flags().StringVar(&savePath, "save-path", "results", "Path to save results")
	cmd.Flags().Uint64Var(&seed, "seed", config.Seed, "Random seed")
	cmd.Flags().UintVar(&steps, "steps", config.MaxSteps, "Number of environment steps")
	cmd.Flags().StringVar(&policy, "policy", string(config.Policy), "Policy to act with, random or seeker")
	cmd.Flags().Float64Var(&epsilon, "epsilon", config.Epsilon, "Probability of a random action for the seeker")
	cmd.Flags().IntVar(&checkpointEvery, "checkpoint-every", 0, "Steps between environment checkpoints, 0 for none")
}

func UpdateFlags() error {
	config.Seed = seed
	config.EnvConf.Dimension = dimension
	config.EnvConf.Discount = discount
	config.EnvConf.EpisodeCutoff = cutoff
	config.EnvConf.MaxPlacementAttempts = maxPlacementAttempts
	config.EnvConf.TeleportBeforeMove = teleportBeforeMove
	config.EnvConf.Coordinates = coordinates

	config.MaxSteps = steps
	config.Policy = experiment.PolicyName(policy)
	config.Epsilon = epsilon

	if envConfigPath == "" {
		return nil
	}
	env, err := envconfig.Load(envConfigPath)
	if err != nil {
		return fmt.Errorf("updateFlags: %w", err)
	}
	config.EnvConf = env
	return nil
}
