package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	"warehouse.GO/service/records"
	"warehouse.GO/service/spreadsheet"
)

var (
	importFile   string
	importMode   string
	exportFormat string
	exportTerm   string
	exportOut    string
	exportBucket string
	listTerm     string
	deleteYes    bool
)

var domainHelp = strings.Join(records.Names, "|")

var importCmd = &cobra.Command{
	Use:   "records:import <" + domainHelp + ">",
	Short: "Import a .xlsx/.csv file into a record domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		mode, err := records.ParseMode(importMode)
		if err != nil {
			return err
		}
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		d, err := set.Domain(args[0])
		if err != nil {
			return err
		}

		res, err := d.ImportFile(cmd.Context(), importFile, mode)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  [warn] %s\n", w)
		}
		fmt.Fprintf(out, `
=== Import Report ===
Domain:         %s
Mode:           %s
Rows:           %d
Added:          %d
Updated:        %d
Skipped:        %d
Total time:     %s
  - Read:       %s
  - Normalize:  %s
  - Store:      %s
=====================
`, res.Domain, res.Mode, res.TotalRows, res.Added, res.Updated, res.Skipped,
			res.TotalTime.Round(time.Millisecond),
			res.ReadTime.Round(time.Millisecond),
			res.NormalizeTime.Round(time.Millisecond),
			res.StoreTime.Round(time.Millisecond))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "records:export <" + domainHelp + ">",
	Short: "Export a record domain (optionally filtered) to .xlsx or .csv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		format, err := spreadsheet.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		d, err := set.Domain(args[0])
		if err != nil {
			return err
		}
		sheet := d.Export(exportTerm)

		bucket := exportBucket
		if bucket == "" {
			bucket = config.AppConfig.ExportBucket
		}
		if bucket != "" {
			uri, err := spreadsheet.UploadGCS(cmd.Context(), bucket, sheet, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(sheet.Rows), uri)
			return nil
		}

		path := exportOut
		if path == "" {
			path = sheet.FileName(format)
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := spreadsheet.Write(f, sheet, format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(sheet.Rows), path)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "records:list <" + domainHelp + ">",
	Short: "Print the records of a domain as a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		d, err := set.Domain(args[0])
		if err != nil {
			return err
		}
		sheet := d.Export(listTerm)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(sheet.Headers, "\t"))
		for _, row := range sheet.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				if v != nil {
					cells[i] = fmt.Sprint(v)
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d / %d records\n", len(sheet.Rows), d.Len())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "records:delete <" + domainHelp + "> <key>",
	Short: "Delete one record after confirmation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		d, err := set.Domain(args[0])
		if err != nil {
			return err
		}
		if !deleteYes && !confirm(cmd, fmt.Sprintf("%s %s 항목을 삭제하시겠습니까? [y/N] ", d.Name(), args[1])) {
			fmt.Fprintln(cmd.OutOrStdout(), "취소되었습니다.")
			return nil
		}
		if err := d.Delete(cmd.Context(), args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", d.Name(), args[1])
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "records:reset <" + domainHelp + ">",
	Short: "Drop the saved records of a domain and restore the sample rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		d, err := set.Domain(args[0])
		if err != nil {
			return err
		}
		if !deleteYes && !confirm(cmd, fmt.Sprintf("%s 데이터를 모두 지우고 샘플로 되돌리시겠습니까? [y/N] ", d.Name())) {
			fmt.Fprintln(cmd.OutOrStdout(), "취소되었습니다.")
			return nil
		}
		n, err := d.Reset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s: %d sample records\n", d.Name(), n)
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "예", "네":
		return true
	}
	return false
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Spreadsheet path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().StringVar(&importMode, "mode", string(records.ModeReplace), "replace: swap the whole domain for the file; merge: upsert by key")

	exportCmd.Flags().StringVar(&exportFormat, "format", string(spreadsheet.FormatXLSX), "xlsx or csv")
	exportCmd.Flags().StringVar(&exportTerm, "q", "", "Only export records matching this search term")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default <sheet name>.<format>)")
	exportCmd.Flags().StringVar(&exportBucket, "bucket", "", "Upload to this Cloud Storage bucket instead of writing a file (default EXPORT_BUCKET)")

	listCmd.Flags().StringVar(&listTerm, "q", "", "Search term")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(importCmd, exportCmd, listCmd, deleteCmd, resetCmd)
}
