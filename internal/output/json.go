package output

import (
	"encoding/json"
)

// JSONFormatter renders the full report as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) Format(report *Report) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
