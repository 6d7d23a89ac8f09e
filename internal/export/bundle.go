// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// Package renders every individual format and bundles the artifacts into a
// single zip. One failing format fails the whole package: a partial brand
// delivery is worse than a clear error.
func Package(ctx context.Context, tok tokens.DesignTokens, content *models.Content, opts Options) (*Artifact, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, format := range Formats {
		if format == FormatPackage {
			continue
		}
		art, err := Export(ctx, format, tok, content, opts)
		if err != nil {
			return nil, fmt.Errorf("package: %s: %w", format, err)
		}
		w, err := zw.Create(art.Filename)
		if err != nil {
			return nil, fmt.Errorf("package: add %s: %w", art.Filename, err)
		}
		if _, err := w.Write(art.Data); err != nil {
			return nil, fmt.Errorf("package: write %s: %w", art.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("package: close zip: %w", err)
	}
	return &Artifact{
		Filename:    baseName(tok) + "-brand-paket.zip",
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}
