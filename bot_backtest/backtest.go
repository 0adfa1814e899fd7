package bot_backtest

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/naveenvino/OptionSellerBot/bot_backtest/ui"
	"github.com/naveenvino/OptionSellerBot/database"
	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/interfaces"
	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
	"github.com/naveenvino/OptionSellerBot/providers/kite"
	"github.com/naveenvino/OptionSellerBot/services"
)

type Backtest struct {
}

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		log.Fatalln("Error loading go.env file", err)
	}
}

func (bt *Backtest) Run(c *cli.Context) error {
	helpers.Logger.Infoln("📈 Option seller backtest started")

	request, err := bt.buildRequest(c)
	if err != nil {
		return err
	}

	provider := kite.NewKiteService()
	hedgeSelector := bt.buildHedgeSelector(c)

	backtestService := services.NewBacktestService(provider, hedgeSelector)

	confidenceIsEnabled, _ := strconv.ParseBool(os.Getenv("enableConfidenceModel"))
	if confidenceIsEnabled {
		backtestService.SetConfidenceService(services.NewConfidenceService())
	}

	var databaseService *database.DBService
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled == true {
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"), os.Getenv("databaseName"),
			os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			panic(err)
		}
	}

	backtestService.Progress = func(weekStart time.Time, tradesSoFar int) {
		helpers.Logger.Debugln(fmt.Sprintf("processed week %s, %d trades so far",
			weekStart.Format("2006-01-02"), tradesSoFar))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		helpers.Logger.Warnln("Interrupt received, finishing current week")
		cancel()
	}()

	result, err := backtestService.RunBacktest(ctx, request)
	if err != nil && len(result.Trades) == 0 {
		return err
	}

	if databaseService != nil {
		runID := databaseService.AddBacktestRun(request, result)
		helpers.Logger.Infoln(fmt.Sprintf("Run recorded as id %d", runID))
	}

	if c.Bool("ui") {
		report := ui.ReportInterface{}
		report.Show(result)
		return nil
	}

	logSummary(result)
	return nil
}

func (bt *Backtest) buildRequest(c *cli.Context) (models.BacktestRequest, error) {
	to := time.Now()
	if toString := c.String("to"); toString != "" {
		parsed, err := time.Parse("2006-01-02", toString)
		if err != nil {
			return models.BacktestRequest{}, fmt.Errorf("parsing --to: %w", err)
		}
		to = parsed
	}

	from := to.AddDate(0, -6, 0)
	if fromString := c.String("from"); fromString != "" {
		parsed, err := time.Parse("2006-01-02", fromString)
		if err != nil {
			return models.BacktestRequest{}, fmt.Errorf("parsing --from: %w", err)
		}
		from = parsed
	} else if lookback := c.String("lookback"); lookback != "" {
		duration, err := str2duration.ParseDuration(lookback)
		if err != nil {
			return models.BacktestRequest{}, fmt.Errorf("parsing --lookback: %w", err)
		}
		from = to.Add(-duration)
	}

	request := models.NewBacktestRequest(from, to)

	if mode := c.String("mode"); mode != "" {
		request.Mode = models.SignalMode(mode)
	} else if mode := os.Getenv("signalMode"); mode != "" {
		request.Mode = models.SignalMode(mode)
	}

	if underlying := c.String("underlying"); underlying != "" {
		request.Underlying = underlying
	} else if underlying := os.Getenv("underlying"); underlying != "" {
		request.Underlying = underlying
	}

	if c.Int("lot-size") != 0 {
		request.LotSize = c.Int("lot-size")
	} else if lotSize, err := strconv.Atoi(os.Getenv("lotSize")); err == nil && lotSize > 0 {
		request.LotSize = lotSize
	}

	if c.Int("hedge-points") != 0 {
		request.HedgePoints = c.Int("hedge-points")
	}

	if capital, err := strconv.ParseFloat(os.Getenv("initialCapital"), 64); err == nil && capital > 0 {
		request.InitialCapital = capital
	}

	return request, nil
}

func (bt *Backtest) buildHedgeSelector(c *cli.Context) interfaces.HedgeSelector {
	hedgePoints := c.Int("hedge-points")
	if hedgePoints == 0 {
		hedgePoints, _ = strconv.Atoi(os.Getenv("hedgePoints"))
		if hedgePoints == 0 {
			hedgePoints = 300
		}
	}

	if c.String("hedge-mode") == "premium" || os.Getenv("hedgeMode") == "premium" {
		premiumPct := c.Float64("hedge-premium-pct")
		if premiumPct == 0 {
			premiumPct, _ = strconv.ParseFloat(os.Getenv("hedgePremiumPct"), 64)
			if premiumPct == 0 {
				premiumPct = 30
			}
		}
		return services.NewPremiumTargetHedge(premiumPct)
	}
	return services.NewFixedPointsHedge(hedgePoints)
}

func logSummary(result analytics.BacktestResult) {
	helpers.Logger.Infoln(fmt.Sprintf("Strategy: %s", result.Strategy))
	helpers.Logger.Infoln(fmt.Sprintf("Period: %s to %s",
		result.FromDate.Format("2006-01-02"), result.ToDate.Format("2006-01-02")))
	helpers.Logger.Infoln(fmt.Sprintf("Trades: %d (%d wins / %d losses, %.1f%% win rate)",
		result.TotalTrades, result.WinningTrades, result.LosingTrades, result.WinRate))
	helpers.Logger.Infoln(fmt.Sprintf("Net P&L: %.2f (avg %.2f, max drawdown %.2f)",
		result.TotalPnL, result.AveragePnL, result.MaxDrawdown))
	helpers.Logger.Infoln(fmt.Sprintf("Capital: %.2f -> %.2f", result.InitialCapital, result.FinalCapital))
	for signalID, stats := range result.SignalBreakdown {
		helpers.Logger.Infoln(fmt.Sprintf("  %s: %d trades, %.1f%% win rate, P&L %.2f",
			signalID, stats.TotalTrades, stats.WinRate, stats.TotalPnL))
	}
}
