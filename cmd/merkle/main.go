// Command merkle demonstrates the merkle library:
// building a tree over data blocks given on the command line or
// chunked from a file, printing root digests and tree structure,
// and generating and verifying inclusion proofs.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordian-engine/merkle/internal/mcmd"
)

func main() {
	if err := newMerkleCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newMerkleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merkle",
		Short: "Binary Merkle tree demonstrations",

		SilenceUsage: true,
	}

	cmd.AddCommand(
		newRootCommand(),
		newTreeCommand(),
		newProveCommand(),
		newFileCommand(),
	)

	return cmd
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root [BLOCK...]",
		Short: "Print the root digest of a tree over the given blocks",

		Run: func(cmd *cobra.Command, args []string) {
			mcmd.Root(cmd.OutOrStdout(), args)
		},
	}
}

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [BLOCK...]",
		Short: "Print the structure of a tree over the given blocks",

		Run: func(cmd *cobra.Command, args []string) {
			mcmd.Tree(cmd.OutOrStdout(), args)
		},
	}
}

func newProveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prove TARGET [BLOCK...]",
		Short: "Prove and verify inclusion of TARGET among the given blocks",

		Args: cobra.MinimumNArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			mcmd.Prove(cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func newFileCommand() *cobra.Command {
	var chunkSize int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "file PATH",
		Short: "Chunk a file, build a tree over the chunks, and verify every chunk",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			log := slog.New(slog.NewTextHandler(
				cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level},
			))

			return mcmd.File(log, cmd.OutOrStdout(), args[0], chunkSize)
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 1024, "chunk size in bytes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each verified chunk")

	return cmd
}
