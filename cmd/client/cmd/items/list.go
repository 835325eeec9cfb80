// cmd/client/cmd/items/list.go
package items

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/app/client"
	"todolist/internal/domain/item"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список дел",
	Long:  `Выводит все дела пользователя, отсортированные по сроку.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items, err := app.ListItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка дел: %w", err)
		}

		switch listFormat {
		case "json":
			return printItemsJSON(items)
		default:
			return printItemsTable(items)
		}
	},
}

func printItemsJSON(items []item.Item) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func printItemsTable(items []item.Item) error {
	if len(items) == 0 {
		fmt.Println("Дел нет")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tСРОК\tВАЖНОСТЬ\tСТАТУС")
	for _, it := range items {
		status := color.YellowString("в работе")
		if it.Complete {
			status = color.GreenString("выполнено")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			it.ID, it.Name, it.Due.Format("2006-01-02 15:04"), it.Severity, status)
	}
	return w.Flush()
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода: table, json")
}
