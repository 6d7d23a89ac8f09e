// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package imaging loads brand logos from data URIs or remote URLs and
// normalizes them to PNG for embedding in presentations and print pieces.
// Oversized sources are downscaled so export artifacts stay small.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxEdge is the longest edge kept after normalization. Logos are vector
// originals rendered large; 1024px is plenty for a slide or an A4 page.
const maxEdge = 1024

// maxFetchBytes caps remote downloads.
const maxFetchBytes = 10 << 20

// Logo is a normalized, PNG-encoded brand mark ready for embedding.
type Logo struct {
	PNG    []byte
	Width  int
	Height int
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Load resolves src, which is either a data URI (data:image/...;base64,...)
// or an http(s) URL, and returns the normalized logo.
func Load(ctx context.Context, src string) (*Logo, error) {
	var raw []byte
	var err error
	switch {
	case strings.HasPrefix(src, "data:"):
		raw, err = decodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		raw, err = fetch(ctx, src)
	default:
		return nil, fmt.Errorf("imaging: unsupported logo source %q", truncate(src, 40))
	}
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// Normalize decodes raw image bytes (PNG, JPEG, GIF, BMP, or WebP),
// downscales anything larger than maxEdge, and re-encodes as PNG.
func Normalize(raw []byte) (*Logo, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("imaging: empty image %dx%d", w, h)
	}

	if w > maxEdge || h > maxEdge {
		scale := float64(maxEdge) / float64(w)
		if h > w {
			scale = float64(maxEdge) / float64(h)
		}
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img, w, h = dst, nw, nh
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("imaging: encode png: %w", err)
	}
	return &Logo{PNG: out.Bytes(), Width: w, Height: h}, nil
}

func decodeDataURI(src string) ([]byte, error) {
	_, payload, ok := strings.Cut(src, ",")
	if !ok {
		return nil, fmt.Errorf("imaging: malformed data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("imaging: data URI payload: %w", err)
	}
	return raw, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("imaging: build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imaging: fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imaging: fetch logo: status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imaging: read logo: %w", err)
	}
	if len(raw) > maxFetchBytes {
		return nil, fmt.Errorf("imaging: logo exceeds %d bytes", maxFetchBytes)
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
