package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/halouxiaoyu/survey_backend/config"
	entadmin "github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	"github.com/halouxiaoyu/survey_backend/pkg/authorize"
	"github.com/halouxiaoyu/survey_backend/pkg/database"
	"github.com/halouxiaoyu/survey_backend/pkg/util/password"
)

func NewCreateAdminCommand() *cobra.Command {
	var (
		username string
		pass     string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account and assign its RBAC role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || pass == "" {
				return fmt.Errorf("--username and --password are required")
			}
			rbacRole, okRole := authorize.AdminRoleToRBACRole[role]
			if !okRole {
				return fmt.Errorf("unknown role %q (want admin, editor or viewer)", role)
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			exists, err := client.Admin.Query().
				Where(entadmin.Username(username)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if exists {
				return fmt.Errorf("admin %q already exists", username)
			}

			hash, err := password.Hash(pass)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			adm, err := client.Admin.Create().
				SetUsername(username).
				SetPasswordHash(hash).
				SetRole(entadmin.Role(role)).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			// Mirror the role into Casbin.
			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer, authorize.FromCentralConfig(cfg.Authorization))
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}
			if err := authorize.AssignAdminRole(ctx, auth, adm.ID.String(), rbacRole); err != nil {
				return fmt.Errorf("failed to assign role: %w", err)
			}

			fmt.Printf("Admin %q created with role %s (id %s).\n", username, role, adm.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Login username")
	cmd.Flags().StringVar(&pass, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", "admin", "Role: admin, editor or viewer")

	return cmd
}
