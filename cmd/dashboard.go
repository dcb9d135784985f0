package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"warehouse.GO/core/cache"
	outboundEntity "warehouse.GO/model/entity/outbound"
	"warehouse.GO/service/dashboard"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard:show",
	Short: "Print the warehouse summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)
		sum := dashboard.New(set, cache.NewCache(), 0).Summary()

		out := cmd.OutOrStdout()
		if dashboardJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}
		fmt.Fprintf(out, `=== 대시보드 ===
총 품목:      %d
재고 부족:    %d
재고 오차:    %d
품절:         %d
총 실사 재고: %d
입고:         %d (오늘 %d)
출고:         %d (오늘 %d)
공급업체:     %d
납품처:       %d
`, sum.TotalItems, sum.Understock, sum.Discrepancies, sum.OutOfStock, sum.TotalPhysical,
			sum.InboundCount, sum.InboundToday, sum.OutboundCount, sum.OutboundToday,
			sum.Suppliers, sum.Clients)

		fmt.Fprintln(out, "\n출고 상태:")
		for _, st := range outboundEntity.Statuses {
			fmt.Fprintf(out, "  %-8s %d\n", st.Label(), sum.OutboundByStatus[st])
		}

		fmt.Fprintln(out, "\n납품처별 재고:")
		dests := make([]string, 0, len(sum.StockByDestination))
		for d := range sum.StockByDestination {
			dests = append(dests, d)
		}
		sort.Strings(dests)
		for _, d := range dests {
			fmt.Fprintf(out, "  %s: %d\n", d, sum.StockByDestination[d])
		}

		fmt.Fprintln(out, "\n재고 부족 상위:")
		for _, it := range sum.LowestStock {
			mark := ""
			if it.Flagged {
				mark = " !"
			}
			fmt.Fprintf(out, "  %s %s 실사 %d / ERP %d%s\n", it.Code, it.Name, it.Physical, it.ERP, mark)
		}

		fmt.Fprintln(out, "\n최근 활동:")
		for _, a := range sum.Recent {
			fmt.Fprintf(out, "  %s [%s] %s\n", a.Date, a.Label(), a.Description)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the summary as JSON")
	rootCmd.AddCommand(dashboardCmd)
}
