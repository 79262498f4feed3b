package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"swapnet/backend/libs/logging"
	"swapnet/backend/libs/prefs"
	"swapnet/backend/tools/swapctl/internal/api"
	"swapnet/backend/tools/swapctl/internal/cli"
)

var CLI struct {
	Gateway string        `help:"API gateway base URL." env:"SWAPCTL_GATEWAY_URL" default:"http://localhost:8080"`
	Token   string        `help:"Bearer token issued by the auth service." env:"SWAPCTL_TOKEN"`
	Prefs   string        `help:"Preferences file." env:"SWAPCTL_PREFS" type:"path" default:"~/.config/swapctl/prefs.yaml"`
	Profile string        `help:"Preferences profile name." default:"default"`
	Timeout time.Duration `help:"Request timeout." default:"5s"`
	LogFile string        `help:"Write logs to this file." type:"path"`

	Inventory cli.InventoryCmd `cmd:"" help:"Browse station slots interactively." default:"withargs"`
	Slots     cli.SlotsCmd     `cmd:"" help:"List the slots of a station."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show slot statistics of a station."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("swapctl"),
		kong.Description("Battery swap station console"),
		kong.UsageOnError(),
	)

	logger := zap.NewNop()
	if CLI.LogFile != "" {
		var err error
		logger, err = logging.NewLoggerTo(CLI.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	appCtx := &cli.Context{
		Source:  api.NewClient(CLI.Gateway, CLI.Token, CLI.Timeout),
		Prefs:   prefs.NewFileStore(CLI.Prefs),
		Owner:   CLI.Profile,
		Timeout: CLI.Timeout,
		Logger:  logger,
		Out:     os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
