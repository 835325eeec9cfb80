package items

import (
	"github.com/spf13/cobra"
)

// ItemsCmd - родительская команда для работы со списком дел
var ItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Работа со списком дел",
	Long:  `Просмотр, добавление, отметка о выполнении и удаление дел.`,
}
