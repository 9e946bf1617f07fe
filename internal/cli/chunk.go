package cli

import (
	"bufio"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/Kirill-Lekhov/notalib/apperr"
	"github.com/Kirill-Lekhov/notalib/array"
)

func newChunkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Group stdin lines into fixed-size chunks, printed as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetInt("size")
			var lines []string
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				lines = append(lines, sc.Text())
			}
			if err := sc.Err(); err != nil {
				return apperr.Wrap("cli.chunk", apperr.External, err, "read stdin")
			}
			chunks, err := array.Chunked(lines, size)
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(chunks)
			if err != nil {
				return apperr.Wrap("cli.chunk", apperr.Internal, err, "encode chunks")
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().Int("size", 10, "Chunk size")
	return cmd
}
