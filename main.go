package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/DuannCoetzer/dungeon-desktop/internal/bridge"
	"github.com/DuannCoetzer/dungeon-desktop/internal/config"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.Load()
	app := bridge.New()

	err := wails.Run(&options.App{
		Title:  "Dungeon Desktop",
		Width:  cfg.Width,
		Height: cfg.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		// Dev builds log at info; production builds only surface errors.
		LogLevel:           logger.INFO,
		LogLevelProduction: logger.ERROR,
		OnStartup:          app.Startup,
		OnShutdown:         app.Shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
