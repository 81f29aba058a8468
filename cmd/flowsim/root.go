package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/miraki/flowsim/adjlist"
	"github.com/miraki/flowsim/core"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd = &cobra.Command{
		Use:           "flowsim",
		Short:         "max-flow and attack simulation on capacity networks",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	graphFile  = rootCmd.PersistentFlags().String("graph", "", "adjacency-list file to load")
	source     = rootCmd.PersistentFlags().String("source", "N1", "source vertex ID")
	sink       = rootCmd.PersistentFlags().String("sink", "N1036", "sink vertex ID")
	nodePrefix = rootCmd.PersistentFlags().String("node-prefix", "N", "relabel numeric node ids with this prefix (empty keeps raw ids)")
	maxNodes   = rootCmd.PersistentFlags().Int("max-nodes", adjlist.DefaultMaxNodes, "drop node ids at or above this value")
	loglevel   = rootCmd.PersistentFlags().String("loglevel", "info", "console log level")
	useDinic   = rootCmd.PersistentFlags().Bool("dinic", false, "use Dinic instead of Edmonds-Karp")
)

// bindFlags overlays viper-provided values (env or config file) onto
// any flag the user did not set explicitly.
func bindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			_ = f.Value.Set(viper.GetString(f.Name))
		}
	})
	for _, sub := range cmd.Commands() {
		bindFlags(sub)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix("FLOWSIM")
	viper.AutomaticEnv()

	viper.SetConfigName("flowsim")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("configuration loaded")
	}

	bindFlags(cmd)
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(rootCmd)
	})
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(*loglevel)
		if err != nil {
			return fmt.Errorf("invalid loglevel %q: %w", *loglevel, err)
		}
		logger = logger.Level(level)
		return nil
	}
}

// loadGraph parses the configured graph file.
func loadGraph() (*core.Graph, error) {
	if *graphFile == "" {
		return nil, fmt.Errorf("--graph is required")
	}
	opts := []adjlist.Option{adjlist.WithMaxNodes(*maxNodes)}
	if *nodePrefix != "" {
		opts = append(opts, adjlist.WithNodePrefix(*nodePrefix))
	}
	g, err := adjlist.ParseFile(*graphFile, opts...)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("file", *graphFile).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int64("total_capacity", g.TotalCapacity()).
		Msg("graph loaded")

	return g, nil
}
