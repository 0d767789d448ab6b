package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"sciventure/config"
)

// ParsedDocument is the typed result of a document extraction attempt.
// Failures are reported through Success/Error rather than Go errors because
// the HTTP layer renders them directly.
type ParsedDocument struct {
	Success bool            `json:"success"`
	Text    string          `json:"text,omitempty"`
	Summary json.RawMessage `json:"summary,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// fileTypeFor maps the accepted MIME types to the parser's type tags.
func fileTypeFor(mimeType string) (string, bool) {
	switch mimeType {
	case "application/pdf":
		return "pdf", true
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx", true
	case "text/plain":
		return "txt", true
	default:
		return "", false
	}
}

// ProcessUpload converts an uploaded document to plain text by handing it to
// the Python extraction collaborator. The payload is written to a temp file
// named with a fresh UUID, the parser runs as a subprocess, and the temp
// file is always removed afterwards.
func ProcessUpload(ctx context.Context, data []byte, originalName, mimeType string) ParsedDocument {
	fileType, ok := fileTypeFor(mimeType)
	if !ok {
		return ParsedDocument{
			Success: false,
			Error:   fmt.Sprintf("Unsupported file type: %s. Please upload PDF, DOCX, or TXT files only.", mimeType),
		}
	}

	maxBytes := config.AppConfig.MaxUploadMB * 1024 * 1024
	if len(data) > maxBytes {
		return ParsedDocument{
			Success: false,
			Error:   fmt.Sprintf("File is too large. The upload limit is %d MB.", config.AppConfig.MaxUploadMB),
		}
	}

	uploadDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("[FILE-PROCESSOR] Failed to create upload directory: %v", err)
		return ParsedDocument{Success: false, Error: "Failed to process file: could not store upload"}
	}

	tempPath := filepath.Join(uploadDir, uuid.New().String()+filepath.Ext(originalName))
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		log.Printf("[FILE-PROCESSOR] Failed to write temp file: %v", err)
		return ParsedDocument{Success: false, Error: "Failed to process file: could not store upload"}
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			log.Printf("[FILE-PROCESSOR] Failed to delete temp file %s: %v", tempPath, err)
		}
	}()

	cmd := exec.CommandContext(ctx, config.AppConfig.PythonBin, filepath.Join("scripts", "document_parser.py"), tempPath, fileType)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Printf("[FILE-PROCESSOR] Parser failed for %s: %v: %s", originalName, err, stderr.String())
		detail := firstLine(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return ParsedDocument{Success: false, Error: "Failed to process file: " + detail}
	}

	var parsed ParsedDocument
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		log.Printf("[FILE-PROCESSOR] Invalid parser output for %s: %v", originalName, err)
		return ParsedDocument{Success: false, Error: "Failed to parse output from document parser"}
	}
	return parsed
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
