package cli

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	"github.com/Kirill-Lekhov/notalib/apperr"
	"github.com/Kirill-Lekhov/notalib/hypertext"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render CSV from stdin as an HTML table",
		RunE: func(cmd *cobra.Command, args []string) error {
			header, _ := cmd.Flags().GetBool("header")
			r := csv.NewReader(cmd.InOrStdin())
			records, err := r.ReadAll()
			if err != nil {
				return apperr.Wrap("cli.table", apperr.InvalidInput, err, "parse csv")
			}
			var tbl hypertext.Table
			if header && len(records) > 0 {
				tbl.Headers = records[0]
				records = records[1:]
			}
			tbl.Rows = records
			return tbl.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("header", true, "Treat the first CSV row as the header")
	return cmd
}
