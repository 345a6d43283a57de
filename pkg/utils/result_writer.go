/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_writer.go
Description: Utility for exporting processing results to the output directory.
Handles timestamped, uniquely named JSON result files and ensures directories
exist. Keeps file I/O out of the core pipeline.
*/

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/synoptic-core/pkg/output"
)

// WriteResultFile writes a processing result to the output directory as
// indented JSON. The filename combines a timestamp with a short unique
// suffix so concurrent invocations never collide.
func WriteResultFile(outputDir string, result *output.ProcessResult) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_result_a1b2c3d4.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	suffix := uuid.New().String()[:8]
	filename := fmt.Sprintf("%s_result_%s.json", timestamp, suffix)
	filePath := filepath.Join(outputDir, filename)

	data, err := output.ExportJSON(result)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filePath, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}

	return filePath, nil
}
