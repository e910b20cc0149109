package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"saveit/internal/config"
	"saveit/internal/database"
	"saveit/internal/export"
	"saveit/internal/format"
	"saveit/internal/lookup"
	"saveit/internal/tui"
)

var version = "dev"

var (
	verbosity     string
	configPath    string
	resetConfig   bool
	resetDatabase bool
	cfg           *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "saveit",
	Short:   "Keep and cite your sources",
	Long:    "saveit records bibliographic sources, lets you edit them in a terminal UI, and copies formatted citations to the clipboard.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		if resetConfig {
			if err := config.Reset(); err != nil {
				return err
			}
			log.Warn("configuration reset to defaults")
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		levelName := cfg.Logging.Level
		if verbosity != "" {
			levelName = verbosity
		}
		level, err := log.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid verbosity %q (want trace|debug|info|warn|error)", levelName)
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		// The TUI owns the terminal; keep log lines out of it.
		log.SetOutput(os.Stderr)

		p := tea.NewProgram(tui.NewApp(db, cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print version and quit")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "", "Log level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&resetConfig, "reset-config", false, "Reset the config before startup")
	rootCmd.PersistentFlags().BoolVar(&resetDatabase, "reset-database", false, "Drop and recreate the source database before startup")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(addCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("saveit", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/saveit/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := config.DefaultPath()
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}
		if err := config.Reset(); err != nil {
			return err
		}
		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to pick a citation format or data directory.")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all sources as formatted citations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sources, err := db.GetAllSources()
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			fmt.Println("No sources recorded.")
			return nil
		}
		fmt.Println(format.FormatAll(sources, style()))
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy all formatted citations to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sources, err := db.GetAllSources()
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(format.FormatAll(sources, style())); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		fmt.Printf("Copied %d sources to the clipboard.\n", len(sources))
		return nil
	},
}

var (
	exportHTML bool
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sources as markdown or HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sources, err := db.GetAllSources()
		if err != nil {
			return err
		}

		doc := export.Markdown(sources, style())
		if exportHTML {
			doc, err = export.HTML(sources, style())
			if err != nil {
				return err
			}
		}

		if exportOut == "" {
			fmt.Print(doc)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("Exported %d sources to %s\n", len(sources), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Render HTML instead of markdown")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
}

var addCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Add a source, prefilled from the page behind the URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		pageURL := args[0]
		meta, err := lookup.NewClient(0).Lookup(pageURL)
		if err != nil {
			return err
		}

		s, err := db.CreateSource()
		if err != nil {
			return err
		}
		s.URL = &pageURL
		today := time.Now().Format("2006-01-02")
		s.ViewedDate = &today
		if meta.Title != "" {
			s.Title = &meta.Title
		}
		if meta.Author != "" {
			s.Author = &meta.Author
		}
		if meta.Published != nil {
			published := meta.Published.Format("2006-01-02")
			s.PublishedDate = &published
		}
		if err := db.UpdateSource(s); err != nil {
			return err
		}

		fmt.Println(format.Format(*s, style()))
		return nil
	},
}

func style() format.Style {
	return format.Style{Standard: cfg.Format.Standard, Custom: cfg.Format.Custom}
}

func openDB() (*database.DB, error) {
	db, err := database.Open(cfg.GetDataDir(), version)
	if err != nil {
		return nil, err
	}
	if resetDatabase {
		if err := db.Reset(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
