// cmd/client/cmd/items/add.go
package items

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/app/client"
)

var (
	addName     string
	addDue      string
	addSeverity int
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить дело",
	Long: `Добавляет новое дело.

Срок указывается как YYYY-MM-DD или в формате RFC 3339.`,
	Example: `  todo items add --name "buy milk" --due 2024-01-01 --severity 1`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		msg, err := app.AddItem(cmd.Context(), addName, addDue, addSeverity)
		if err != nil {
			return fmt.Errorf("ошибка добавления дела: %w", err)
		}

		color.Green("✅ %s", msg)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addName, "name", "n", "", "название дела")
	AddCmd.Flags().StringVarP(&addDue, "due", "d", "", "срок (YYYY-MM-DD или RFC 3339)")
	AddCmd.Flags().IntVarP(&addSeverity, "severity", "s", 0, "важность")
	_ = AddCmd.MarkFlagRequired("name")
	_ = AddCmd.MarkFlagRequired("due")
}
