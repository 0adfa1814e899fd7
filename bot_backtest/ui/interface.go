package ui

import (
	"fmt"
	"sort"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/naveenvino/OptionSellerBot/helpers"
	"github.com/naveenvino/OptionSellerBot/models"
	"github.com/naveenvino/OptionSellerBot/models/analytics"
)

// ReportInterface renders a finished backtest as a terminal dashboard and
// blocks until the user quits with q or Ctrl-C.
type ReportInterface struct {
}

func (ri *ReportInterface) Show(result analytics.BacktestResult) {
	if err := termui.Init(); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("failed to initialize termui: %v", err))
		return
	}
	defer termui.Close()

	termui.Render(ri.summaryParagraph(result), ri.breakdownTable(result), ri.tradesList(result), ri.equityPlot(result))

	uiEvents := termui.PollEvents()
	for e := range uiEvents {
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Infoln("Exited by keyboard interrupt")
			return
		}
	}
}

func (ri *ReportInterface) summaryParagraph(result analytics.BacktestResult) *widgets.Paragraph {
	summaryParagraph := widgets.NewParagraph()
	summaryParagraph.BorderStyle.Fg = termui.ColorYellow
	summaryParagraph.TitleStyle.Fg = termui.ColorYellow
	summaryParagraph.Block.Title = "Backtest " + result.Strategy
	summaryParagraph.Text = fmt.Sprintf("Period: %s to %s\n",
		result.FromDate.Format("2006-01-02"), result.ToDate.Format("2006-01-02"))
	summaryParagraph.Text += fmt.Sprintf("Trades: %d (%d W / %d L)\n",
		result.TotalTrades, result.WinningTrades, result.LosingTrades)
	summaryParagraph.Text += fmt.Sprintf("Win rate: %.1f%%\n", result.WinRate)
	summaryParagraph.Text += fmt.Sprintf("Net P&L: %.2f\n", result.TotalPnL)
	summaryParagraph.Text += fmt.Sprintf("Avg P&L: %.2f\n", result.AveragePnL)
	summaryParagraph.Text += fmt.Sprintf("Max drawdown: %.2f\n", result.MaxDrawdown)
	summaryParagraph.Text += fmt.Sprintf("Capital: %.2f -> %.2f\n", result.InitialCapital, result.FinalCapital)
	summaryParagraph.SetRect(0, 0, 50, 10)
	return summaryParagraph
}

func (ri *ReportInterface) breakdownTable(result analytics.BacktestResult) *widgets.Table {
	breakdownTable := widgets.NewTable()
	breakdownTable.BorderStyle.Fg = termui.ColorCyan
	breakdownTable.TitleStyle.Fg = termui.ColorCyan
	breakdownTable.Block.Title = "Per-signal breakdown"
	breakdownTable.Rows = [][]string{{"Signal", "Trades", "Win rate", "P&L"}}

	signalIDs := make([]models.SignalID, 0, len(result.SignalBreakdown))
	for signalID := range result.SignalBreakdown {
		signalIDs = append(signalIDs, signalID)
	}
	sort.Slice(signalIDs, func(i, j int) bool { return signalIDs[i] < signalIDs[j] })

	for _, signalID := range signalIDs {
		stats := result.SignalBreakdown[signalID]
		breakdownTable.Rows = append(breakdownTable.Rows, []string{
			string(signalID),
			fmt.Sprintf("%d", stats.TotalTrades),
			fmt.Sprintf("%.1f%%", stats.WinRate),
			fmt.Sprintf("%.2f", stats.TotalPnL),
		})
	}
	breakdownTable.SetRect(0, 10, 50, 10+2*len(breakdownTable.Rows)+1)
	return breakdownTable
}

func (ri *ReportInterface) tradesList(result analytics.BacktestResult) *widgets.List {
	tradesList := widgets.NewList()
	tradesList.BorderStyle.Fg = termui.ColorGreen
	tradesList.TitleStyle.Fg = termui.ColorGreen
	tradesList.Block.Title = "Trades"
	for _, trade := range result.Trades {
		tradesList.Rows = append(tradesList.Rows, fmt.Sprintf("%s %s %s %s %.2f",
			trade.WeekStart.Format("2006-01-02"), trade.SignalID, trade.MainSymbol,
			trade.ExitReason, trade.NetPnL))
	}
	tradesList.SetRect(50, 0, 110, 25)
	return tradesList
}

func (ri *ReportInterface) equityPlot(result analytics.BacktestResult) *widgets.Plot {
	equityPlot := widgets.NewPlot()
	equityPlot.Block.Title = "Equity curve"
	equityPlot.LineColors = []termui.Color{termui.ColorYellow}

	equity := make([]float64, 0, len(result.Trades)+1)
	running := result.InitialCapital
	equity = append(equity, running)
	for _, trade := range result.Trades {
		running += trade.NetPnL
		equity = append(equity, running)
	}
	// Plot needs at least two points per line
	if len(equity) < 2 {
		equity = append(equity, running)
	}
	equityPlot.Data = [][]float64{equity}
	equityPlot.SetRect(0, 25, 110, 40)
	return equityPlot
}
