package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hometheater_quote/internal/usecase"
)

var (
	exportFormat string
	exportQuery  string
	exportSort   string
	exportOrder  string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export service requests to CSV or XLSX",
	Long: `Write every service request matching --query, in the requested order,
to a file. The file name defaults to service_requests.<format>; use
--out - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "file format (csv, xlsx)")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "case-insensitive search text")
	exportCmd.Flags().StringVarP(&exportSort, "sort", "s", "", "sort field (id, name, phone, email, selections, notes, total_price, created_at)")
	exportCmd.Flags().StringVar(&exportOrder, "order", "", "sort order (asc, desc)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path")
}

func runExport(cmd *cobra.Command, _ []string) error {
	uc, closeFn, err := openServiceRequests(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	file, err := uc.Export(cmd.Context(), usecase.ExportQuery{
		Format: exportFormat,
		Search: exportQuery,
		Sort:   exportSort,
		Order:  exportOrder,
	})
	if err != nil {
		return err
	}

	if exportOut == "-" {
		_, err = cmd.OutOrStdout().Write(file.Data)
		return err
	}
	path := exportOut
	if path == "" {
		path = file.FileName
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d service requests to %s\n", file.Rows, path)
	return nil
}
