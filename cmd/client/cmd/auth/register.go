// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/app/client"
)

var registerUser string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере.

Пароль вводится дважды, сервер проверяет совпадение.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Получаем приложение из контекста
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация нового пользователя ===")

		login := registerUser
		if login == "" {
			if login, err = readLine("Login: "); err != nil {
				return err
			}
		}

		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}
		confirmation, err := readPassword("Повторите пароль: ")
		if err != nil {
			return err
		}

		msg, err := app.Register(cmd.Context(), login, password, confirmation)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		color.Green("✅ %s", msg)
		fmt.Println("Теперь вы можете войти в систему: todo auth login")

		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerUser, "user", "u", "", "имя пользователя")
}
