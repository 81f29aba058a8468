// Command flowsim loads a capacity network from an adjacency-list file
// and runs max-flow queries and attack simulations against it.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
