package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"ratio": FormatRatio,
	"month": dateutil.MonthLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.Results) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
