package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	jsoniter "github.com/json-iterator/go"
)

const exportVersion = "1.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ScriptExport is the flattened script payload the exporters render.
type ScriptExport struct {
	ID          int64  `json:"id,omitempty"`
	CompanyName string `json:"company_name"`
	Script      string `json:"script"`
	ScriptType  string `json:"script_type,omitempty"`
	Audience    string `json:"audience,omitempty"`
	Tone        string `json:"tone,omitempty"`
	BrandVoice  string `json:"brand_voice,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type exportEnvelope struct {
	ExportInfo struct {
		ExportedAt string `json:"exported_at"`
		Version    string `json:"version"`
	} `json:"export_info"`
	ScriptData ScriptExport `json:"script_data"`
}

// IExport renders a script into one of the supported download formats.
type IExport interface {
	ToTXT(data ScriptExport) []byte
	ToJSON(data ScriptExport, exportedAt time.Time) ([]byte, error)
	ToPDF(data ScriptExport) ([]byte, error)
	FileName(id int64, format string, at time.Time) string
	ContentType(format string) string
}

type export struct{}

func New() IExport {
	return &export{}
}

// FileName builds the download name, e.g. script_42_20260830_153000.pdf.
func (e *export) FileName(id int64, format string, at time.Time) string {
	return fmt.Sprintf("script_%d_%s.%s", id, at.Format("20060102_150405"), format)
}

func (e *export) ContentType(format string) string {
	switch format {
	case "pdf":
		return "application/pdf"
	case "json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (e *export) ToTXT(data ScriptExport) []byte {
	var b strings.Builder

	companyName := data.CompanyName
	if companyName == "" {
		companyName = "Unknown Company"
	}

	b.WriteString("Call Script - " + companyName + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(formatMetadata(data) + "\n\n")
	b.WriteString("SCRIPT CONTENT:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n\n")
	b.WriteString(data.Script)

	return []byte(b.String())
}

func (e *export) ToJSON(data ScriptExport, exportedAt time.Time) ([]byte, error) {
	var envelope exportEnvelope
	envelope.ExportInfo.ExportedAt = exportedAt.UTC().Format(time.RFC3339)
	envelope.ExportInfo.Version = exportVersion
	envelope.ScriptData = data

	return json.MarshalIndent(envelope, "", "  ")
}

func (e *export) ToPDF(data ScriptExport) ([]byte, error) {
	companyName := data.CompanyName
	if companyName == "" {
		companyName = "Unknown Company"
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Call Script - "+companyName, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	for _, line := range metadataLines(data) {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)

	for _, line := range strings.Split(data.Script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			pdf.Ln(3)
			continue
		}
		switch {
		case strings.HasPrefix(line, "AGENT:"):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, line, "", "L", false)
		case strings.HasPrefix(line, "CUSTOMER:"):
			pdf.SetFont("Helvetica", "I", 12)
			pdf.MultiCell(0, 6, line, "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 12)
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func metadataLines(data ScriptExport) []string {
	var lines []string
	if data.ScriptType != "" {
		lines = append(lines, "Script Type: "+data.ScriptType)
	}
	if data.Audience != "" {
		lines = append(lines, "Audience: "+data.Audience)
	}
	if data.Tone != "" {
		lines = append(lines, "Tone: "+data.Tone)
	}
	if data.BrandVoice != "" {
		lines = append(lines, "Brand Voice: "+data.BrandVoice)
	}
	if data.CreatedAt != "" {
		lines = append(lines, "Generated: "+data.CreatedAt)
	}
	return lines
}

func formatMetadata(data ScriptExport) string {
	return strings.Join(metadataLines(data), "\n")
}
