package items

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/app/client"
)

type mutation func(app *client.App, ctx context.Context, id string) (string, error)

// newMutationCmd собирает команду вида "<use> <id>" поверх одного вызова App.
func newMutationCmd(use, short string, fn mutation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := client.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := fn(app, cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}

			color.Green("✅ %s", msg)
			return nil
		},
	}
}

var (
	CompleteCmd = newMutationCmd("complete", "Отметить дело выполненным", (*client.App).CompleteItem)
	ResetCmd    = newMutationCmd("reset", "Снять отметку о выполнении", (*client.App).ResetItem)
	RemoveCmd   = newMutationCmd("remove", "Удалить дело", (*client.App).RemoveItem)
)
