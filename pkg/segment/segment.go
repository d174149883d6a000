// Package segment wraps the pretrained U²-Net salient-object segmentation
// model behind a narrow interface so callers stay independent of the
// inference runtime.
package segment

import (
	"fmt"
	"image"

	"github.com/josuedeavila/rmbg"
)

// Model is the segmentation capability: given a raw image it returns the
// same image with an alpha channel marking background pixels transparent
// and subject pixels opaque.
type Model interface {
	RemoveBackground(img image.Image) (image.Image, error)
}

// Session is a loaded U²-Net ONNX model. Creating it is the single most
// expensive step of the pipeline; a Session is read-only after creation
// and meant to be reused across a whole batch.
type Session struct {
	engine *rmbg.Engine
}

var _ Model = (*Session)(nil)

// NewSession loads the ONNX model at modelPath
func NewSession(modelPath string) (*Session, error) {
	engine, err := rmbg.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load segmentation model %s: %w", modelPath, err)
	}
	return &Session{engine: engine}, nil
}

// RemoveBackground runs inference on a single image
func (s *Session) RemoveBackground(img image.Image) (image.Image, error) {
	out, err := s.engine.RemoveBackground(img)
	if err != nil {
		return nil, fmt.Errorf("segmentation failed: %w", err)
	}
	return out, nil
}

// Close releases the inference runtime
func (s *Session) Close() error {
	return s.engine.Close()
}
