package report

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReportJSON = `{
  "dataset_summary": {"rows": 1000, "columns": 3},
  "churn_analysis": {
    "churn_rate": "8.4%",
    "churn_loss": "$4,200",
    "key_segments": ["monthly subscribers", "trial users"]
  },
  "financial_projections": {
    "current_revenue": "$120,000",
    "projected_revenue": {"3_month": "$126,000", "6_month": "$133,000", "12_month": "$150,000"},
    "remaining_profit": "$38,000"
  },
  "demand_forecasting": {
    "trend": "increasing",
    "seasonal_spikes": ["November", "December"]
  },
  "scenario_analysis": {
    "best_case": "Revenue up 25% within a year.",
    "worst_case": "Churn doubles and revenue drops 10%.",
    "most_likely": "Revenue grows around 12%."
  },
  "recommendations": ["Reduce trial-user churn", "Prepare stock for Q4"]
}`

func TestParse_ValidReport(t *testing.T) {
	rep, err := Parse(validReportJSON)
	require.NoError(t, err)
	assert.Equal(t, 1000, rep.DatasetSummary.Rows)
	assert.Equal(t, "8.4%", rep.ChurnAnalysis.ChurnRate)
	assert.Equal(t, "$126,000", rep.FinancialProjections.ProjectedRevenue.ThreeMonth)
	assert.Equal(t, "increasing", rep.DemandForecasting.Trend)
	assert.Len(t, rep.Recommendations, 2)
}

func TestParse_FencedReport(t *testing.T) {
	raw := "Sure, here is your report:\n```json\n" + validReportJSON + "\n```\nLet me know if you need more."
	rep, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "$120,000", rep.FinancialProjections.CurrentRevenue)
	assert.Equal(t, []string{"November", "December"}, rep.DemandForecasting.SeasonalSpikes)
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse("I could not produce a report for this data, sorry.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_MissingSection(t *testing.T) {
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validReportJSON), &payload))
	delete(payload, "scenario_analysis")
	partial, err := json.Marshal(payload)
	require.NoError(t, err)

	_, perr := Parse(string(partial))
	require.Error(t, perr)
	assert.ErrorIs(t, perr, ErrInvalid)
}

func TestParse_WrongSectionShape(t *testing.T) {
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validReportJSON), &payload))
	payload["demand_forecasting"] = json.RawMessage(`{"trend": "up"}`)
	mangled, err := json.Marshal(payload)
	require.NoError(t, err)

	_, perr := Parse(string(mangled))
	require.Error(t, perr)
	assert.ErrorIs(t, perr, ErrInvalid)
}

func TestParse_Truncated(t *testing.T) {
	_, err := Parse(validReportJSON[:len(validReportJSON)/2])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed) || errors.Is(err, ErrInvalid))
}

func TestFallback_PassesOwnSchema(t *testing.T) {
	raw, err := json.Marshal(Fallback())
	require.NoError(t, err)
	assert.NoError(t, Validate(raw))
}

func TestFallback_FullyPopulated(t *testing.T) {
	rep := Fallback()
	assert.NotEmpty(t, rep.ChurnAnalysis.ChurnRate)
	assert.NotEmpty(t, rep.ChurnAnalysis.KeySegments)
	assert.NotEmpty(t, rep.FinancialProjections.ProjectedRevenue.TwelveMonth)
	assert.NotEmpty(t, rep.DemandForecasting.Trend)
	assert.NotEmpty(t, rep.ScenarioAnalysis.MostLikely)
	assert.NotEmpty(t, rep.Recommendations)
}
