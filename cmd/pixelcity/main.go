package main

import (
	"os"
	"strings"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/scene"
	"github.com/spf13/cobra"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
)

// options are the flags shared by every host
type options struct {
	variant string
	seed    int64
}

// resolve parses the variant and builds the random source. A zero seed
// means seed from the clock.
func (o *options) resolve() (scene.Variant, core.Rand, error) {
	v, err := scene.ParseVariant(o.variant)
	if err != nil {
		return v, nil, err
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return v, core.NewRand(seed), nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "pixelcity",
		Short: "Animated pixel-art city with autonomous robots",
	}
	root.PersistentFlags().StringVar(&opts.variant, "variant", "canal", "scene variant: "+strings.Join(scene.Variants(), "|"))
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = from the clock)")

	root.AddCommand(windowCmd(opts))
	root.AddCommand(termCmd(opts))
	return root
}

func windowCmd(opts *options) *cobra.Command {
	var hud bool
	var width, height int
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the scene in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			v, rng, err := opts.resolve()
			if err != nil {
				return err
			}
			return runWindow(v, rng, width, height, hud)
		},
	}
	cmd.Flags().BoolVar(&hud, "hud", false, "show frame stats")
	cmd.Flags().IntVar(&width, "width", WindowWidth, "initial window width")
	cmd.Flags().IntVar(&height, "height", WindowHeight, "initial window height")
	return cmd
}

func termCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the scene in the terminal using half-block pixels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, rng, err := opts.resolve()
			if err != nil {
				return err
			}
			return runTerm(cmd.Context(), v, rng)
		},
	}
}
