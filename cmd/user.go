package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/jfeld/guestlist/internal/config"
	"github.com/jfeld/guestlist/internal/database"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin accounts",
}

var userAddCmdFlags struct {
	Password string
	Admin    bool
}

var userAddCmd = &cobra.Command{
	Use:     "add <username>",
	Short:   "Create an account that can sign in to the admin area",
	Example: `guestlist user add alice --password s3cret --admin`,
	Args:    cobra.ExactArgs(1),
	Run:     userAdd,
}

func init() {
	userAddCmd.Flags().StringVar(&userAddCmdFlags.Password, "password", "", "Password for the new account")
	userAddCmd.Flags().BoolVar(&userAddCmdFlags.Admin, "admin", true, "Grant admin privileges")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

func userAdd(cmd *cobra.Command, args []string) {
	username := args[0]
	if userAddCmdFlags.Password == "" {
		log.Fatal("a password is required", "flag", "--password")
	}

	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userAddCmdFlags.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user, err := db.CreateUser(cmd.Context(), username, string(hash), userAddCmdFlags.Admin)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Info("user created", "id", user.ID, "username", user.Username, "admin", user.IsAdmin)
}
