package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAppsLabel       = "Apps"
	defaultFavoritesLabel  = "Favorites"
	defaultPowerLabel      = "Power"
	defaultSettingsLabel   = "All Settings"
	defaultSearchLabel     = "Search..."
	defaultAboutLabel      = "About"
	defaultAllAppsLabel    = "All Apps (A-Z)"
	defaultFolderPrefix    = "Folder: "
	defaultSignOutLabel    = "Sign out"
	defaultPowerOffLabel   = "Power off"
	defaultRebootLabel     = "Reboot"
	defaultConfirmTitle    = "Confirm"
	defaultConfirmSignOut  = "Sign out of Windows?"
	defaultConfirmPowerOff = "Power off the PC?"
	defaultConfirmReboot   = "Restart the PC?"
	defaultSearchHint      = "Type to filter apps"
	defaultNoFavorites     = "No favorites"
	defaultNoItems         = "No items available"
	defaultLaunchFailed    = "Failed to launch application"
	defaultComTimeoutSecs  = 15
)

type Config struct {
	AppsLabel      string `mapstructure:"apps_label"`
	FavoritesLabel string `mapstructure:"favorites_label"`
	PowerLabel     string `mapstructure:"power_label"`
	SettingsLabel  string `mapstructure:"settings_label"`
	SearchLabel    string `mapstructure:"search_label"`
	AboutLabel     string `mapstructure:"about_label"`
	AllAppsLabel   string `mapstructure:"all_apps_label"`
	FolderPrefix   string `mapstructure:"folder_prefix"`

	SignOutLabel  string `mapstructure:"sign_out_label"`
	PowerOffLabel string `mapstructure:"power_off_label"`
	RebootLabel   string `mapstructure:"reboot_label"`

	ConfirmTitle    string `mapstructure:"confirm_title"`
	ConfirmSignOut  string `mapstructure:"confirm_sign_out"`
	ConfirmPowerOff string `mapstructure:"confirm_power_off"`
	ConfirmReboot   string `mapstructure:"confirm_reboot"`

	SearchHint      string `mapstructure:"search_hint"`
	NoFavoritesText string `mapstructure:"no_favorites_text"`
	NoItemsText     string `mapstructure:"no_items_text"`
	LaunchFailText  string `mapstructure:"launch_fail_text"`

	// ShortcutRoots overrides the platform start-menu directories. Order
	// matters: the first root wins the unsuffixed name when two roots hold
	// a shortcut at the same tree position.
	ShortcutRoots []string `mapstructure:"shortcut_roots"`

	// HelperPath locates the bundled enumeration helper. Relative paths are
	// resolved next to the executable.
	HelperPath string `mapstructure:"helper_path"`

	Speech         bool `mapstructure:"speech"`
	ComTimeoutSecs int  `mapstructure:"com_timeout_seconds"`
}

func defaultConfig() *Config {
	return &Config{
		AppsLabel:       defaultAppsLabel,
		FavoritesLabel:  defaultFavoritesLabel,
		PowerLabel:      defaultPowerLabel,
		SettingsLabel:   defaultSettingsLabel,
		SearchLabel:     defaultSearchLabel,
		AboutLabel:      defaultAboutLabel,
		AllAppsLabel:    defaultAllAppsLabel,
		FolderPrefix:    defaultFolderPrefix,
		SignOutLabel:    defaultSignOutLabel,
		PowerOffLabel:   defaultPowerOffLabel,
		RebootLabel:     defaultRebootLabel,
		ConfirmTitle:    defaultConfirmTitle,
		ConfirmSignOut:  defaultConfirmSignOut,
		ConfirmPowerOff: defaultConfirmPowerOff,
		ConfirmReboot:   defaultConfirmReboot,
		SearchHint:      defaultSearchHint,
		NoFavoritesText: defaultNoFavorites,
		NoItemsText:     defaultNoItems,
		LaunchFailText:  defaultLaunchFailed,
		HelperPath:      "accessmenu-helper.exe",
		Speech:          true,
		ComTimeoutSecs:  defaultComTimeoutSecs,
	}
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "accessmenu"))
	v.AddConfigPath(filepath.Join(os.Getenv("APPDATA"), "accessmenu"))
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "accessmenu"))
	v.SetConfigType("yaml")

	v.SetDefault("apps_label", defaultAppsLabel)
	v.SetDefault("favorites_label", defaultFavoritesLabel)
	v.SetDefault("power_label", defaultPowerLabel)
	v.SetDefault("settings_label", defaultSettingsLabel)
	v.SetDefault("search_label", defaultSearchLabel)
	v.SetDefault("about_label", defaultAboutLabel)
	v.SetDefault("all_apps_label", defaultAllAppsLabel)
	v.SetDefault("folder_prefix", defaultFolderPrefix)
	v.SetDefault("sign_out_label", defaultSignOutLabel)
	v.SetDefault("power_off_label", defaultPowerOffLabel)
	v.SetDefault("reboot_label", defaultRebootLabel)
	v.SetDefault("confirm_title", defaultConfirmTitle)
	v.SetDefault("confirm_sign_out", defaultConfirmSignOut)
	v.SetDefault("confirm_power_off", defaultConfirmPowerOff)
	v.SetDefault("confirm_reboot", defaultConfirmReboot)
	v.SetDefault("search_hint", defaultSearchHint)
	v.SetDefault("no_favorites_text", defaultNoFavorites)
	v.SetDefault("no_items_text", defaultNoItems)
	v.SetDefault("launch_fail_text", defaultLaunchFailed)
	v.SetDefault("helper_path", "accessmenu-helper.exe")
	v.SetDefault("speech", true)
	v.SetDefault("com_timeout_seconds", defaultComTimeoutSecs)

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return cfg, nil
}

// ComTimeout returns the settings-enumeration worker deadline.
func (c *Config) ComTimeout() time.Duration {
	if c.ComTimeoutSecs <= 0 {
		return defaultComTimeoutSecs * time.Second
	}
	return time.Duration(c.ComTimeoutSecs) * time.Second
}

// ResolveHelper turns a relative helper path into one next to the running
// executable. A missing executable path leaves the value untouched.
func (c *Config) ResolveHelper() string {
	if c.HelperPath == "" || filepath.IsAbs(c.HelperPath) {
		return c.HelperPath
	}
	exe, err := os.Executable()
	if err != nil {
		return c.HelperPath
	}
	return filepath.Join(filepath.Dir(exe), c.HelperPath)
}
