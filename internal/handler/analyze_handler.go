package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"frontierwatch/internal/bias"
	"frontierwatch/pkg/tabular"

	"github.com/gin-gonic/gin"
)

var supportedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

type AnalyzeHandler struct{}

func NewAnalyzeHandler() *AnalyzeHandler {
	return &AnalyzeHandler{}
}

// AnalyzeJSON handles inline row maps and responds with formatted metrics.
func (h *AnalyzeHandler) AnalyzeJSON(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty dataset provided"})
		return
	}
	if len(req.ProtectedAttributes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No protected attributes specified"})
		return
	}

	results, err := bias.Analyze(req.Data, req.ProtectedAttributes, req.GroupMappings)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Results: results,
		Message: "Bias analysis completed successfully",
	})
}

// AnalyzeFile handles a single CSV or Excel upload and responds with a CSV
// attachment of the formatted metrics.
func (h *AnalyzeHandler) AnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded (key 'file' missing)"})
		return
	}

	protectedAttr := c.DefaultQuery("protected_attribute", "race")
	mappings, err := bias.ParseGroupMappings(c.Query("group_mappings"))
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		slog.Error("error opening upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer src.Close()

	frame, err := readDataset(fileHeader.Filename, src)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	results, err := bias.AnalyzeFrame(frame, []string{protectedAttr}, mappings)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	writeResultsCSV(c, "bias_analysis_results.csv", results)
}

// AnalyzeFolder handles a zip of CSV/Excel files. Each contained file is
// analyzed independently; a per-file failure becomes an error row in the
// combined CSV attachment instead of aborting the batch.
func (h *AnalyzeHandler) AnalyzeFolder(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded (key 'file' missing)"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".zip") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only ZIP files are supported for folder upload"})
		return
	}

	protectedAttr := c.DefaultQuery("protected_attribute", "race")
	mappings, err := bias.ParseGroupMappings(c.Query("group_mappings"))
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	tmpDir, err := os.MkdirTemp("", "bias_batch_")
	if err != nil {
		slog.Error("error creating temp directory", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer os.RemoveAll(tmpDir)

	if err := extractZip(fileHeader, tmpDir); err != nil {
		respondAnalysisError(c, err)
		return
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		slog.Error("error listing extracted files", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var rows []batchRow
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !supportedExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		rows = append(rows, analyzeExtractedFile(filepath.Join(tmpDir, name), name, protectedAttr, mappings)...)
	}

	writeBatchCSV(c, "results.csv", rows)
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func analyzeExtractedFile(path, name, protectedAttr string, mappings map[string]bias.GroupMapping) []batchRow {
	file, err := os.Open(path)
	if err != nil {
		return []batchRow{{File: name, Err: err.Error()}}
	}
	defer file.Close()

	frame, err := readDataset(name, file)
	if err != nil {
		return []batchRow{{File: name, Err: err.Error()}}
	}

	results, err := bias.AnalyzeFrame(frame, []string{protectedAttr}, mappings)
	if err != nil {
		return []batchRow{{File: name, Err: err.Error()}}
	}

	rows := make([]batchRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, batchRow{File: name, Result: r})
	}
	return rows
}

func readDataset(filename string, r io.Reader) (*tabular.Frame, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		frame, err := tabular.ReadCSV(r)
		if err != nil {
			return nil, bias.Validationf("error reading %s: %v", filename, err)
		}
		return frame, nil
	case ".xlsx", ".xls":
		frame, err := tabular.ReadXLSX(r)
		if err != nil {
			return nil, bias.Validationf("error reading %s: %v", filename, err)
		}
		return frame, nil
	default:
		return nil, bias.Validationf("unsupported file type: %s", ext)
	}
}

func extractZip(fileHeader *multipart.FileHeader, dest string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	zipPath := filepath.Join(dest, "input.zip")
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return unzipFlat(zipPath, dest)
}

func respondAnalysisError(c *gin.Context, err error) {
	var verr *bias.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}

	slog.Error("bias analysis failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
