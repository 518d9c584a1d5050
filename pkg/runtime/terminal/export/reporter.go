package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/retail-tools/sales-atlas/pkg/models/domain"
)

// Reporter renders analytics and prediction output as formatted text.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) HandleSnapshot(snapshot *domain.AnalyticsSnapshot) error {
	tmpl := `
Retail Sales Overview
Total Sales: {{.TotalSales}}
Total Orders: {{.TotalOrders}}
Average Order Value: {{printf "%.2f" .AvgOrderValue}}
Total Profit: {{.TotalProfit}}
Unique Cities: {{.UniqueCities}}

=== Monthly Sales ===
{{range .MonthlySales}}{{.Date}}: {{.Sales}}
{{end}}
=== Sales by Category ===
{{range $name, $value := .CategorySales}}{{$name}}: {{$value}}
{{end}}
=== Sales by Region ===
{{range $name, $value := .RegionSales}}{{$name}}: {{$value}}
{{end}}
=== Profit by Category ===
{{range $name, $value := .ProfitByCategory}}{{$name}}: {{$value}}
{{end}}
=== Top Cities ===
{{range $name, $value := .TopCities}}{{$name}}: {{$value}}
{{end}}`

	t, err := template.New("snapshot").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, snapshot)
}

func (c *Reporter) HandleMetrics(metrics *domain.ModelMetrics) error {
	tmpl := `
Model Training Metrics
Linear Regression: MSE {{printf "%.2f" .BaselineMSE}}, R2 {{printf "%.4f" .BaselineR2}}
Gradient Boosting: MSE {{printf "%.2f" .TrainedMSE}}, R2 {{printf "%.4f" .TrainedR2}}

=== Best Parameters ===
{{range $name, $value := .BestParams}}{{$name}}: {{$value}}
{{end}}
Features: {{range $i, $name := .FeatureNames}}{{if $i}}, {{end}}{{$name}}{{end}}
`

	t, err := template.New("metrics").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, metrics)
}

func (c *Reporter) HandlePrediction(result *domain.PredictionResult) error {
	if !result.Success {
		if len(result.MissingArtifacts) > 0 {
			_, err := fmt.Fprintf(c.writer, "Prediction failed: missing artifacts %v\n", result.MissingArtifacts)
			return err
		}
		_, err := fmt.Fprintf(c.writer, "Prediction failed: %s\n", result.Error)
		return err
	}

	_, err := fmt.Fprintf(c.writer, "Predicted sales: %.2f (%s)\n", result.Prediction, result.Mode)
	return err
}
