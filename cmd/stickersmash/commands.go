package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/stickersmash/internal/config"
	"github.com/jask/stickersmash/internal/database"
	"github.com/jask/stickersmash/internal/database/repository"
)

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stickersmash",
		Short: "Put a sticker on a photo and save it",
		Long: `StickerSmash opens a single screen: pick a photo (or keep the placeholder),
add one of the stickers, and save the result to the media library or the
downloads directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("STICKERSMASH_CONFIG", configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return runScreen(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	root.AddCommand(newLibraryCommand())
	root.AddCommand(newConfigCommand())
	return root
}

func newLibraryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "library",
		Short: "List the most recently saved images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			db, err := database.OpenMigrated(cfg.Library.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			assets := repository.NewLibraryRepo(db)
			total, err := assets.Count(cmd.Context())
			if err != nil {
				return err
			}
			recent, err := assets.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d image(s) in %s\n", total, cfg.Library.Dir)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SAVED\tFILE\tSIZE\tBYTES")
			for _, a := range recent {
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\n", a.CreatedAt.Local().Format("2006-01-02 15:04"), a.FileName, a.Width, a.Height, a.ByteSize)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of images to show")
	return cmd
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", config.Path())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "library.dir           = %s\n", cfg.Library.Dir)
			fmt.Fprintf(out, "library.db_path       = %s\n", cfg.Library.DBPath)
			fmt.Fprintf(out, "picker.dir            = %s\n", cfg.Picker.Dir)
			fmt.Fprintf(out, "picker.cache_dir      = %s\n", cfg.Picker.CacheDir)
			fmt.Fprintf(out, "stickers.dir          = %s\n", cfg.Stickers.Dir)
			fmt.Fprintf(out, "export.target         = %s\n", cfg.Export.Target)
			fmt.Fprintf(out, "export.downloads_dir  = %s\n", cfg.Export.DownloadsDir)
			fmt.Fprintf(out, "log.path              = %s\n", cfg.Log.Path)
			fmt.Fprintf(out, "log.level             = %s\n", cfg.Log.Level)
			return nil
		},
	})
	return cmd
}
