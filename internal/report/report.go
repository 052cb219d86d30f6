// Package report defines the structured business report requested from the
// model and the validation that gates it before it reaches the UI.
package report

// BusinessReport is the six-section analytical summary. All six sections are
// required; a payload missing any of them is rejected wholesale and replaced
// by Fallback. A report is immutable once generated.
type BusinessReport struct {
	DatasetSummary       DatasetSummary       `json:"dataset_summary"`
	ChurnAnalysis        ChurnAnalysis        `json:"churn_analysis"`
	FinancialProjections FinancialProjections `json:"financial_projections"`
	DemandForecasting    DemandForecasting    `json:"demand_forecasting"`
	ScenarioAnalysis     ScenarioAnalysis     `json:"scenario_analysis"`
	Recommendations      []string             `json:"recommendations"`
}

type DatasetSummary struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

type ChurnAnalysis struct {
	ChurnRate   string   `json:"churn_rate"`
	ChurnLoss   string   `json:"churn_loss"`
	KeySegments []string `json:"key_segments"`
}

type FinancialProjections struct {
	CurrentRevenue   string           `json:"current_revenue"`
	ProjectedRevenue ProjectedRevenue `json:"projected_revenue"`
	RemainingProfit  string           `json:"remaining_profit"`
}

type ProjectedRevenue struct {
	ThreeMonth  string `json:"3_month"`
	SixMonth    string `json:"6_month"`
	TwelveMonth string `json:"12_month"`
}

type DemandForecasting struct {
	Trend          string   `json:"trend"` // "increasing" | "decreasing" | "stable"
	SeasonalSpikes []string `json:"seasonal_spikes"`
}

type ScenarioAnalysis struct {
	BestCase   string `json:"best_case"`
	WorstCase  string `json:"worst_case"`
	MostLikely string `json:"most_likely"`
}
