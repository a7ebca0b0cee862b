package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

var funcs = template.FuncMap{
	"usd":    domain.FormatGrouped,
	"signed": domain.FormatSigned,
	"fixed": func(d decimal.Decimal) string {
		return d.StringFixed(domain.MoneyPlaces)
	},
	"pct": func(d decimal.Decimal) string {
		return d.StringFixed(1) + "%"
	},
	"date": func(t time.Time) string {
		return t.Format(time.DateOnly)
	},
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"negative": func(d decimal.Decimal) bool {
		return d.IsNegative()
	},
	"dict_period": func(periods []periodOption, current string) map[string]any {
		return map[string]any{"Periods": periods, "Current": current}
	},
}
