package notifier

import (
	"fmt"
	"math"
	"strings"

	"StockPulse/internal/model"
)

// FormatReport formats an analysis report into a Telegram message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	last := r.Series.Last()
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s | %s\n\n",
		r.Ticker, r.Horizon, r.GeneratedAt.Format("2006-01-02 15:04")))

	if r.Series.FallbackSession != "" {
		b.WriteString(fmt.Sprintf("市场休市，显示最近交易日: %s\n\n", r.Series.FallbackSession))
	}

	b.WriteString(fmt.Sprintf("当前价格: %.2f\n", last.Close))
	snap := r.Indicators.Last()
	if !math.IsNaN(snap.RSI) {
		b.WriteString(fmt.Sprintf("RSI: %.1f\n", snap.RSI))
	} else {
		b.WriteString("RSI: 数据不足\n")
	}

	trendIcon := "➡️"
	switch r.Trend {
	case model.TrendUp:
		trendIcon = "📈"
	case model.TrendDown:
		trendIcon = "📉"
	}
	b.WriteString(fmt.Sprintf("趋势: %s %s | 预测目标(%s): %.2f\n\n",
		trendIcon, r.Trend, r.Prediction.HorizonLabel, r.Prediction.Value))

	b.WriteString("🎯 <b>支撑/阻力:</b>\n")
	b.WriteString(fmt.Sprintf("  阻力位: %.2f\n", r.Levels.Resistance))
	b.WriteString(fmt.Sprintf("  枢轴点: %.2f\n", r.Levels.Pivot))
	b.WriteString(fmt.Sprintf("  支撑位: %.2f\n\n", r.Levels.Support))

	total := r.PeriodSplit.Buy + r.PeriodSplit.Sell
	if total > 0 {
		b.WriteString(fmt.Sprintf("📦 买盘/卖盘: %.0f%% / %.0f%%\n\n",
			r.PeriodSplit.Buy/total*100, r.PeriodSplit.Sell/total*100))
	}

	switch r.Signal.Kind {
	case model.SignalBuy:
		b.WriteString("🚀 <b>信号: BUY</b> (超卖)")
	case model.SignalSell:
		b.WriteString("⚠️ <b>信号: SELL</b> (超买)")
	default:
		b.WriteString("⚖️ <b>信号: NEUTRAL</b>")
	}
	b.WriteString(fmt.Sprintf(" | 量能置信度: %s\n", r.Signal.Confidence))

	return b.String()
}

// FormatFailure formats a failed run into a short notice.
func FormatFailure(ticker string, horizon model.Horizon, err error) string {
	return fmt.Sprintf("❌ <b>%s</b> (%s) 无数据\n\n%v\n建议检查代码或选择更长周期", ticker, horizon, err)
}
