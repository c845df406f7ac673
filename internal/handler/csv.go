package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"frontierwatch/internal/bias"

	"github.com/gin-gonic/gin"
)

// batchRow is one output row of a zipped-batch analysis: either a formatted
// metric for a file, or that file's error.
type batchRow struct {
	File   string
	Result bias.Result
	Err    string
}

func writeResultsCSV(c *gin.Context, filename string, results []bias.Result) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"metric_name", "score", "threshold", "status", "demographic_group"})
	for _, r := range results {
		w.Write([]string{
			r.MetricName,
			formatScore(r.Score),
			strconv.FormatFloat(r.Threshold, 'g', -1, 64),
			r.Status,
			r.DemographicGroup,
		})
	}
	w.Flush()

	sendCSV(c, filename, buf.Bytes())
}

func writeBatchCSV(c *gin.Context, filename string, rows []batchRow) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"file", "metric_name", "score", "threshold", "status", "demographic_group", "error"})
	for _, row := range rows {
		if row.Err != "" {
			w.Write([]string{row.File, "", "", "", "", "", row.Err})
			continue
		}
		w.Write([]string{
			row.File,
			row.Result.MetricName,
			formatScore(row.Result.Score),
			strconv.FormatFloat(row.Result.Threshold, 'g', -1, 64),
			row.Result.Status,
			row.Result.DemographicGroup,
			"",
		})
	}
	w.Flush()

	sendCSV(c, filename, buf.Bytes())
}

func sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", body)
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'g', -1, 64)
}
