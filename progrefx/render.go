package progrefx

import (
    "fmt"
    "time"

    "github.com/garaekz/glyphcast/color"
    "github.com/garaekz/glyphcast/terminal"
)

// RenderBar builds a progress bar string using theme colors.  It mirrors
// the implementation from the legacy progress package but lives under
// progrefx.  The bar adapts to non‑TTY environments by omitting ANSI
// sequences when necessary.  When an effect is enabled on the progress
// theme, RenderBar delegates to the theme to draw the animated bar.
func RenderBar(p *Progress, detector *terminal.Detector) string {
    percent := float64(p.current) / float64(p.total)

    labelColor := p.theme.RenderColor(p.theme.LabelColor, detector)
    label := labelColor + p.label + color.Reset

    var bar string
    if p.theme.EffectEnabled && p.effect != EffectNone {
        bar = p.theme.RenderProgress(percent, p.width, p.effect, detector)
    } else {
        bar = p.theme.renderSolidProgress(int(percent*float64(p.width)), p.width, detector)
    }

    percentColor := p.theme.RenderColor(p.theme.PercentColor, detector)
    percentText := percentColor + fmt.Sprintf("%3d%%", int(percent*100)) + color.Reset

    borderColor := p.theme.RenderColor(p.theme.BorderColor, detector)
    leftBorder := borderColor + "[" + color.Reset
    rightBorder := borderColor + "]" + color.Reset

    result := fmt.Sprintf("\r%s %s%s%s %s", label, leftBorder, bar, rightBorder, percentText)

    if p.ShowETA && p.isStarted && p.current > 0 {
        elapsed := time.Since(p.startTime)
        rate := float64(p.current) / elapsed.Seconds()
        if rate > 0 {
            remaining := float64(p.total-p.current) / rate
            etaColor := p.theme.RenderColor(p.theme.PercentColor, detector)
            eta := etaColor + fmt.Sprintf("ETA: %ds", int(remaining)) + color.Reset
            return result + " " + eta
        }
    }

    return result
}