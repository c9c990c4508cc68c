package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	env "github.com/samuelfneumann/portalworld/environment"
)

func SpecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Print the action and observation specs of the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := config.EnvConf.Create(0)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(map[string]specJSON{
				"action":      newSpecJSON(e.ActionSpec()),
				"observation": newSpecJSON(e.ObservationSpec()),
				"reward":      newSpecJSON(e.RewardSpec()),
				"discount":    newSpecJSON(e.DiscountSpec()),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("spec: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	return cmd
}

// specJSON is the JSON representation of an env.Spec. Bounds are
// strings since JSON has no infinity.
type specJSON struct {
	Shape       int
	Cardinality env.Cardinality
	Lower       string
	Upper       string
}

// newSpecJSON summarizes s. Every spec of the environment has equal
// bounds across features, so only the first feature's bounds are kept.
func newSpecJSON(s env.Spec) specJSON {
	return specJSON{
		Shape:       s.Shape.Len(),
		Cardinality: s.Cardinality,
		Lower:       fmt.Sprint(s.LowerBound.AtVec(0)),
		Upper:       fmt.Sprint(s.UpperBound.AtVec(0)),
	}
}
