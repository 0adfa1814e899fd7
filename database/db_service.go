package database

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "github.com/naveenvino/OptionSellerBot/database/models"
	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.BacktestRun{}, &database.BacktestTrade{}, &database.Candle{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		log.Fatalln("Error loading go.env file", err)
	}
}

// AddBacktestRun persists a finished run together with all its trades and
// returns the row id.
func (dbs *DBService) AddBacktestRun(request models.BacktestRequest, result analytics.BacktestResult) uint {
	dbRun := database.BacktestRun{
		Strategy:       result.Strategy,
		Underlying:     request.Underlying,
		Mode:           string(request.Mode),
		FromDate:       result.FromDate,
		ToDate:         result.ToDate,
		TotalTrades:    result.TotalTrades,
		WinningTrades:  result.WinningTrades,
		LosingTrades:   result.LosingTrades,
		WinRate:        result.WinRate,
		TotalPnL:       result.TotalPnL,
		AveragePnL:     result.AveragePnL,
		MaxDrawdown:    result.MaxDrawdown,
		InitialCapital: result.InitialCapital,
		FinalCapital:   result.FinalCapital,
	}

	for _, trade := range result.Trades {
		dbRun.Trades = append(dbRun.Trades, database.BacktestTrade{
			WeekStart:       trade.WeekStart,
			SignalID:        string(trade.SignalID),
			SignalName:      trade.SignalName,
			OptionType:      string(trade.OptionType),
			MainSymbol:      trade.MainSymbol,
			HedgeSymbol:     trade.HedgeSymbol,
			MainStrike:      trade.MainStrike,
			HedgeStrike:     trade.HedgeStrike,
			TriggerTime:     trade.TriggerTime,
			ExitTime:        trade.ExitTime,
			MainEntryPrice:  trade.MainEntryPrice,
			HedgeEntryPrice: trade.HedgeEntryPrice,
			MainExitPrice:   trade.MainExitPrice,
			HedgeExitPrice:  trade.HedgeExitPrice,
			StopLossLevel:   trade.StopLossLevel,
			Quantity:        trade.Quantity,
			MainPnL:         trade.MainPnL,
			HedgePnL:        trade.HedgePnL,
			NetPnL:          trade.NetPnL,
			ExitReason:      string(trade.ExitReason),
			Success:         trade.Success,
		})
	}

	dbs.DB.Create(&dbRun)
	return dbRun.ID
}

// GetBacktestRuns lists past runs, newest first, trades included
func (dbs *DBService) GetBacktestRuns() []database.BacktestRun {
	var runs []database.BacktestRun
	dbs.DB.Preload("Trades").Order("created_at DESC").Find(&runs)
	return runs
}

// AddOrUpdateCandle caches one imported bar, overwriting on re-import
func (dbs *DBService) AddOrUpdateCandle(candle models.Candle, symbol string, interval models.Interval) {
	dbCandle := database.Candle{
		Symbol:    symbol,
		Interval:  string(interval),
		Timestamp: candle.Timestamp,
		Open:      candle.Open,
		High:      candle.High,
		Low:       candle.Low,
		Close:     candle.Close,
		Volume:    candle.Volume,
	}

	// Update columns to new value on conflict
	dbs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "interval"}, {Name: "timestamp"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&dbCandle)
}
