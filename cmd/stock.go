package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"warehouse.GO/service/stock"
	"warehouse.GO/service/variance"
)

var stockAdjustCmd = &cobra.Command{
	Use:   "stock:adjust <code> <quantity> <in|out>",
	Short: "Move physical stock of one inventory line in or out",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity %q: %w", args[1], stock.ErrInvalidQuantity)
		}
		dir, err := stock.ParseDirection(args[2])
		if err != nil {
			return err
		}
		set, closeFn, err := OpenRecords(cmd.Context())
		if err != nil {
			return err
		}
		defer CloseRecords(closeFn, &err)

		rec, err := stock.Adjust(cmd.Context(), set.Inventory.Store, args[0], qty, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: 실사 %d, ERP %d, 오차 %d (%s)\n",
			rec.Code, rec.Name, rec.Physical, rec.ERP, rec.Variance, variance.StateOf(rec))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stockAdjustCmd)
}
