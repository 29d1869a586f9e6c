package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"biodata-api/internal/client"
	"biodata-api/internal/models"

	"github.com/spf13/cobra"
)

var (
	listAll    bool
	listLegacy bool
	listFilter models.BiodataFilter
	searchBy   string
	exportPath string
)

var biodataCmd = &cobra.Command{
	Use:   "biodata",
	Short: "Read biodata from a running server",
}

var biodataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List biodata visible to the token",
	Long: `List biodata visible to the token.

Examples:
  biodatactl biodata list --token $TOKEN
  biodatactl biodata list --all --search ana --by nama --token $ADMIN_TOKEN
  biodatactl biodata list --all --legacy --json --token $ADMIN_TOKEN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter.By = models.SearchField(searchBy)
		c := client.New(apiURL, client.WithToken(apiToken))
		return runList(cmd.Context(), cmd.OutOrStdout(), c, listAll, listLegacy, listFilter)
	},
}

var biodataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the admin listing as an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		listFilter.By = models.SearchField(searchBy)
		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		defer f.Close()

		c := client.New(apiURL, client.WithToken(apiToken))
		if err := c.Export(cmd.Context(), listFilter, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", exportPath)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{biodataListCmd, biodataExportCmd} {
		c.Flags().StringVar(&listFilter.Search, "search", "", "Case-insensitive substring to match")
		c.Flags().StringVar(&searchBy, "by", "", "Field to search: nama, posisi or pendidikan")
	}
	biodataListCmd.Flags().BoolVar(&listAll, "all", false, "Use the admin listing across every owner")
	biodataListCmd.Flags().BoolVar(&listLegacy, "legacy", false, "Fetch the delimiter-encoded form and decode it")
	biodataListCmd.Flags().IntVar(&listFilter.Limit, "limit", 0, "Page size for --all")
	biodataListCmd.Flags().IntVar(&listFilter.Offset, "offset", 0, "Rows to skip for --all")
	biodataExportCmd.Flags().StringVarP(&exportPath, "output", "o", "biodata.xlsx", "Destination file")

	biodataCmd.AddCommand(biodataListCmd, biodataExportCmd)
	rootCmd.AddCommand(biodataCmd)
}

func runList(ctx context.Context, out io.Writer, c *client.Client, all, legacy bool, filter models.BiodataFilter) error {
	var (
		list []models.Biodata
		err  error
	)
	switch {
	case all && legacy:
		list, err = c.ListAllLegacy(ctx, filter)
	case all:
		list, err = c.ListAll(ctx, filter)
	default:
		list, err = c.ListBiodata(ctx)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAMA\tPOSISI\tOWNER\tPENDIDIKAN\tPELATIHAN\tPENGALAMAN")
	for _, b := range list {
		owner := b.UserEmail
		if owner == "" {
			owner = fmt.Sprintf("#%d", b.UserID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\n",
			b.ID, b.Nama, b.Posisi, owner, len(b.Education), len(b.Training), len(b.WorkExperience))
	}
	return w.Flush()
}
