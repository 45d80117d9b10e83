package notifier

import (
	"fmt"
	"strings"

	"HexOracle/internal/hexagram"
	"HexOracle/internal/model"
)

var positionNames = [6]string{"初爻", "二爻", "三爻", "四爻", "五爻", "上爻"}

// FormatReading formats a divination result as a text report, used by the
// Telegram push and the CLI.
func FormatReading(res *model.DivinationResult) string {
	var b strings.Builder

	switch res.Mode {
	case model.ModeMarket:
		b.WriteString(fmt.Sprintf("☯️ <b>%s 卦象</b> | %s\n\n",
			res.SymbolLabel, res.GeneratedAt.Format("2006-01-02")))
	default:
		b.WriteString(fmt.Sprintf("☯️ <b>问卜</b> | %s\n", res.GeneratedAt.Format("2006-01-02")))
		b.WriteString(fmt.Sprintf("问：%s\n\n", res.Question))
	}

	writeFigure(&b, "本卦 (现状)", res.Present, res.PresentKey)
	b.WriteString("\n")
	title := "之卦 (变卦)"
	if !res.Changed {
		title = "之卦 (无变动)"
	}
	writeFigure(&b, title, res.Projected, res.ProjectedKey)

	interp := res.Present.Interpretation
	b.WriteString("\n【大象】" + interp.MacroImage)
	b.WriteString("\n【量化】" + interp.QuantReading)
	b.WriteString("\n【策略】" + interp.Strategy)
	b.WriteString("\n【生活】" + interp.LifeAdvice)
	b.WriteString("\n")

	if res.Changed {
		b.WriteString(fmt.Sprintf("\n⚡ 变爻启示：局势正在向 %s 转变。\n", res.Projected.Name))
	}

	if len(res.Lines) > 0 {
		b.WriteString("\n📊 <b>K线序列:</b>\n")
		for _, d := range res.Lines {
			b.WriteString(fmt.Sprintf("  %s %s  收 %.2f  %+.2f%%  %s\n",
				positionNames[d.Position], d.Date.Format("01-02"),
				d.Close, d.ChangePct*100, d.Line))
		}
	}

	return b.String()
}

// writeFigure draws one hexagram top line first, the way the figure is
// read.
func writeFigure(b *strings.Builder, title string, rec *model.HexagramRecord, key model.Key) {
	b.WriteString(fmt.Sprintf("%s  <b>%s</b>  %s\n", title, rec.Name, rec.Judgment))
	for _, g := range hexagram.Glyphs(key) {
		if g.Solid {
			b.WriteString("  ▅▅▅▅▅▅▅\n")
		} else {
			b.WriteString("  ▅▅▅ ▅▅▅\n")
		}
	}
}
