package main

import (
	"os"

	"github.com/urfave/cli/v2"

	bot "github.com/naveenvino/OptionSellerBot/bot_backtest"
	"github.com/naveenvino/OptionSellerBot/helpers"
)

func main() {
	backtest := bot.Backtest{}

	app := &cli.App{
		Name:  "optionsellerbot",
		Usage: "weekly index option selling backtester",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Usage: "signal mode: pure-1h, hourly or synthetic"},
			&cli.StringFlag{Name: "from", Usage: "start date, YYYY-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "end date, YYYY-MM-DD"},
			&cli.StringFlag{Name: "lookback", Usage: "period back from --to, e.g. 26w or 180d"},
			&cli.StringFlag{Name: "underlying", Usage: "index symbol, e.g. NIFTY"},
			&cli.IntFlag{Name: "lot-size", Usage: "contracts per trade"},
			&cli.IntFlag{Name: "hedge-points", Usage: "hedge strike distance in points"},
			&cli.StringFlag{Name: "hedge-mode", Usage: "hedge selection: points or premium"},
			&cli.Float64Flag{Name: "hedge-premium-pct", Usage: "hedge premium as percent of main premium"},
			&cli.BoolFlag{Name: "ui", Usage: "show the report dashboard"},
		},
		Action: func(c *cli.Context) error {
			return backtest.Run(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Fatalln(err)
	}
}
