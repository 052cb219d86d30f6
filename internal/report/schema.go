package report

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema mirrors the BusinessReport shape. Every top-level section is
// required; nested requireds catch sections that are present but hollow.
const Schema = `{
  "type": "object",
  "required": [
    "dataset_summary",
    "churn_analysis",
    "financial_projections",
    "demand_forecasting",
    "scenario_analysis",
    "recommendations"
  ],
  "properties": {
    "dataset_summary": {
      "type": "object",
      "required": ["rows", "columns"],
      "properties": {
        "rows": {"type": "integer"},
        "columns": {"type": "integer"}
      }
    },
    "churn_analysis": {
      "type": "object",
      "required": ["churn_rate", "churn_loss", "key_segments"],
      "properties": {
        "churn_rate": {"type": "string"},
        "churn_loss": {"type": "string"},
        "key_segments": {"type": "array", "items": {"type": "string"}}
      }
    },
    "financial_projections": {
      "type": "object",
      "required": ["current_revenue", "projected_revenue", "remaining_profit"],
      "properties": {
        "current_revenue": {"type": "string"},
        "projected_revenue": {
          "type": "object",
          "required": ["3_month", "6_month", "12_month"],
          "properties": {
            "3_month": {"type": "string"},
            "6_month": {"type": "string"},
            "12_month": {"type": "string"}
          }
        },
        "remaining_profit": {"type": "string"}
      }
    },
    "demand_forecasting": {
      "type": "object",
      "required": ["trend", "seasonal_spikes"],
      "properties": {
        "trend": {"type": "string"},
        "seasonal_spikes": {"type": "array", "items": {"type": "string"}}
      }
    },
    "scenario_analysis": {
      "type": "object",
      "required": ["best_case", "worst_case", "most_likely"],
      "properties": {
        "best_case": {"type": "string"},
        "worst_case": {"type": "string"},
        "most_likely": {"type": "string"}
      }
    },
    "recommendations": {"type": "array", "items": {"type": "string"}}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(Schema)

// Validate checks a raw JSON payload against the report schema.
func Validate(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
