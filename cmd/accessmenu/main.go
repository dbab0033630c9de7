package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhelan/accessmenu/internal/announce"
	"github.com/mwhelan/accessmenu/internal/catalog"
	"github.com/mwhelan/accessmenu/internal/config"
	"github.com/mwhelan/accessmenu/internal/deps"
	"github.com/mwhelan/accessmenu/internal/diag"
	"github.com/mwhelan/accessmenu/internal/favorites"
	"github.com/mwhelan/accessmenu/internal/godmode"
	"github.com/mwhelan/accessmenu/internal/launcher"
	"github.com/mwhelan/accessmenu/internal/power"
	"github.com/mwhelan/accessmenu/internal/shell"
	"github.com/mwhelan/accessmenu/internal/tui"
	"github.com/mwhelan/accessmenu/pkg/version"
)

var versionFlag bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "accessmenu",
	Short: "Screen-reader friendly start menu for Windows",
	RunE:  runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(godmodeCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func ensureDeps() error {
	missing := deps.Check()
	if len(missing) == 0 {
		return nil
	}
	fatal := false
	for _, dep := range missing {
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, dep.Hint)
		if dep.Required {
			fatal = true
		}
	}
	if fatal {
		return fmt.Errorf("missing required dependencies")
	}
	return nil
}

// loadServices wires the full dependency set. The announcer argument lets the
// headless subcommands swap speech for plain log output.
func loadServices(a announce.Announcer) (*config.Config, tui.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, tui.Deps{}, err
	}
	favs, err := favorites.Load()
	if err != nil {
		return nil, tui.Deps{}, err
	}

	cmd := &shell.ExecCommander{}
	d := diag.New()
	if a == nil {
		if cfg.Speech {
			a = &announce.Speech{Cmd: cmd}
		} else {
			a = announce.Null{}
		}
	}

	return cfg, tui.Deps{
		Cfg:        cfg,
		Favorites:  favs,
		Dispatcher: launcher.New(cmd, a, d, cfg.LaunchFailText),
		Power:      &power.Manager{Cmd: cmd},
		Enum:       godmode.New(cmd, cfg.ResolveHelper(), cfg.ComTimeout(), d),
		Announcer:  a,
		Version:    version.Version,
	}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Println(version.Version)
		return nil
	}
	if err := ensureDeps(); err != nil {
		return err
	}
	_, d, err := loadServices(nil)
	if err != nil {
		return err
	}
	return tui.New(d).Run()
}

func buildTree(cfg *config.Config) *catalog.Node {
	roots := cfg.ShortcutRoots
	if len(roots) == 0 {
		roots = catalog.StartMenuRoots()
	}
	return catalog.Build(roots)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every discovered application",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadServices(announce.Log{})
		if err != nil {
			return err
		}
		for _, app := range catalog.Flatten(buildTree(cfg)) {
			fmt.Printf("%-40s %s\n", app.Display, app.Target)
		}
		return nil
	},
}

var godmodeCmd = &cobra.Command{
	Use:   "godmode",
	Short: "Enumerate the Windows settings namespace",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := loadServices(announce.Log{})
		if err != nil {
			return err
		}
		invoke, _ := cmd.Flags().GetString("invoke")
		if invoke != "" {
			if !d.Enum.Invoke(invoke) {
				return fmt.Errorf("could not open settings item %q", invoke)
			}
			return nil
		}
		items := d.Enum.Items()
		if len(items) == 0 {
			fmt.Println("No settings items available")
			return nil
		}
		for _, item := range items {
			fmt.Println(item)
		}
		return nil
	},
}

func init() {
	godmodeCmd.Flags().String("invoke", "", "Open the named settings item instead of listing")
}

var launchCmd = &cobra.Command{
	Use:   "launch <path>",
	Short: "Open a shortcut or file the way the menu would",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := loadServices(announce.Log{})
		if err != nil {
			return err
		}
		if !d.Dispatcher.Launch(args[0]) {
			return fmt.Errorf("could not launch %s", args[0])
		}
		return nil
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Print the stored favorites in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		favs, err := favorites.Load()
		if err != nil {
			return err
		}
		if len(favs.Paths) == 0 {
			fmt.Println("No favorites")
			return nil
		}
		for _, p := range favs.Paths {
			fmt.Printf("%-30s %s\n", favorites.DisplayName(p), p)
		}
		return nil
	},
}
