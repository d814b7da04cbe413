// Package display reopens a rendered chart and keeps it on screen until
// the user quits. The window itself is behind the [Window] interface; the
// raylib implementation lives in package gui.
package display

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// Frame is a decoded artifact ready to be shown.
type Frame struct {
	Image  image.Image
	Width  int
	Height int
}

// Load reads the image at path. A missing or undecodable file is a
// DisplayError.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dynamo.DisplayError{Stage: "load", Wrapped: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &dynamo.DisplayError{Stage: "decode", Wrapped: errors.Wrapf(err, "decoding %s", path)}
	}

	b := img.Bounds()
	return &Frame{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// Window is a single on-screen surface polled from one goroutine.
type Window interface {
	Open(title string, width, height int) error
	IsOpen() bool
	QuitPressed() bool
	Present(frame *Frame) error
	Close()
}

// Title names the window after the key that closes it.
func Title(key string) string {
	return fmt.Sprintf("Euler's Method Graph - %s to exit", key)
}

// Show opens win at the frame's size and redraws the frame until the
// window is closed or the quit key is held. It blocks for the whole time.
func Show(win Window, frame *Frame, title string) error {
	if err := win.Open(title, frame.Width, frame.Height); err != nil {
		return &dynamo.DisplayError{Stage: "open", Wrapped: err}
	}
	defer win.Close()

	log.WithFields(log.Fields{
		"width":  frame.Width,
		"height": frame.Height,
	}).Debug("window opened")

	frames := 0
	for win.IsOpen() && !win.QuitPressed() {
		if err := win.Present(frame); err != nil {
			return &dynamo.DisplayError{Stage: "update", Wrapped: err}
		}
		frames++
	}

	log.WithField("frames", frames).Debug("window closed")
	return nil
}
