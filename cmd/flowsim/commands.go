package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miraki/flowsim/attack"
	"github.com/miraki/flowsim/bfs"
	"github.com/miraki/flowsim/core"
	"github.com/miraki/flowsim/flow"
)

var (
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show graph size and total capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}
			fmt.Printf("vertices:       %d\n", g.VertexCount())
			fmt.Printf("edges:          %d\n", g.EdgeCount())
			fmt.Printf("total capacity: %d\n", g.TotalCapacity())
			return nil
		},
	}

	maxflowCmd = &cobra.Command{
		Use:   "maxflow",
		Short: "Compute the maximum flow from source to sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}
			opts := flow.DefaultOptions()
			opts.Ctx = cmd.Context()
			opts.OnAugment = func(sent int64) {
				logger.Debug().Int64("sent", sent).Msg("augmentation")
			}
			res, err := maxFlowFunc()(g, *source, *sink, opts)
			if err != nil {
				return err
			}
			fmt.Printf("max flow %s -> %s: %d\n", *source, *sink, res.Value)
			return nil
		},
	}

	pathFrom string
	pathTo   string
	pathCmd  = &cobra.Command{
		Use:   "path",
		Short: "Find an unweighted shortest path between two vertices",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}
			from, to := pathFrom, pathTo
			if from == "" {
				from = *source
			}
			if to == "" {
				to = *sink
			}
			path, err := bfs.ShortestPath(g, from, to)
			if err != nil {
				return err
			}
			if path == nil {
				fmt.Printf("no path %s -> %s\n", from, to)
				return nil
			}
			fmt.Println(strings.Join(path, " -> "))
			return nil
		},
	}

	budget      int64
	budgetedCmd = &cobra.Command{
		Use:   "budgeted",
		Short: "Run a budgeted attack against the flow-carrying edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}
			capBefore := g.TotalCapacity()
			res, err := attack.Budgeted(g, *source, *sink, budget,
				attack.WithContext(cmd.Context()),
				attack.WithFlowAlgorithm(maxFlowFunc()))
			if err != nil {
				return err
			}
			printResult(res, g, capBefore)
			return nil
		},
	}

	steps        int
	edgesPerStep int
	rankBy       string
	multistepCmd = &cobra.Command{
		Use:   "multistep",
		Short: "Run an iterative halving attack",
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := attack.ParseRankBy(rankBy)
			if err != nil {
				return err
			}
			g, err := loadGraph()
			if err != nil {
				return err
			}
			capBefore := g.TotalCapacity()
			res, err := attack.MultiStep(g, *source, *sink, steps, edgesPerStep,
				attack.WithContext(cmd.Context()),
				attack.WithRankBy(metric),
				attack.WithFlowAlgorithm(maxFlowFunc()))
			if err != nil {
				return err
			}
			printResult(res, g, capBefore)
			return nil
		},
	}
)

// maxFlowFunc picks the flow backend from the --dinic flag.
func maxFlowFunc() attack.MaxFlowFunc {
	if *useDinic {
		return flow.Dinic
	}
	return flow.EdmondsKarp
}

func printResult(res attack.Result, g *core.Graph, capBefore int64) {
	fmt.Printf("flow before:     %d\n", res.FlowBefore)
	fmt.Printf("flow after:      %d\n", res.FlowAfter)
	fmt.Printf("capacity before: %d\n", capBefore)
	fmt.Printf("capacity after:  %d\n", g.TotalCapacity())
	fmt.Printf("edges affected:  %d\n", len(res.Affected))
	for _, red := range res.Affected {
		fmt.Printf("  %s -> %s  reduced by %d\n", red.From, red.To, red.Amount)
	}
}

func init() {
	pathCmd.Flags().StringVar(&pathFrom, "from", "", "path start (defaults to --source)")
	pathCmd.Flags().StringVar(&pathTo, "to", "", "path end (defaults to --sink)")

	budgetedCmd.Flags().Int64Var(&budget, "budget", 150, "total capacity-reduction allowance")

	multistepCmd.Flags().IntVar(&steps, "steps", 3, "number of degradation rounds")
	multistepCmd.Flags().IntVar(&edgesPerStep, "edges-per-step", 30, "edges halved per round")
	multistepCmd.Flags().StringVar(&rankBy, "rank-by", "flow", "candidate ranking metric: flow or capacity")

	rootCmd.AddCommand(infoCmd, maxflowCmd, pathCmd, budgetedCmd, multistepCmd)
}
