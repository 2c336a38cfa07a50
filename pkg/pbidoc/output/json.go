package output

import (
	"encoding/json"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/models"
)

// ToJSON serializes the extracted report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
