package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "junctionbox",
	Short: "Wire 3-D junction boxes into one circuit, shortest wires first",
	Long: `junctionbox reads "x,y,z" junction box coordinates, connects them in
ascending order of distance (Kruskal's minimum spanning tree) and reports the
three largest circuits after a given number of wires and the last pair of
boxes that joins everything into one circuit.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
