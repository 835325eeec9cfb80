// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/app/client"
)

var loginUser string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		login := loginUser
		if login == "" {
			if login, err = readLine("Login: "); err != nil {
				return err
			}
		}

		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		color.Green("✅ Вход выполнен успешно!")
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти (удалить сохраненный токен)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Logout(); err != nil {
			return err
		}
		fmt.Println("Токен удален")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "имя пользователя")
}
