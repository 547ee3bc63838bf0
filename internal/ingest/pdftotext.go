// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"fmt"
	"os/exec"
)

// PdftotextExtractor extracts PDF text by running the pdftotext tool.
type PdftotextExtractor struct{}

// ExtractText runs pdftotext on the file and returns its stdout.
func (PdftotextExtractor) ExtractText(path string) (string, error) {
	cmd := exec.Command("pdftotext", path, "-")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %w: %s", err, stderr.String())
	}
	return out.String(), nil
}
