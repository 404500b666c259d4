// Package download fetches remote video URLs (YouTube and other yt-dlp
// supported sites) to a local temp file before they're handed to the media
// source decoder, which only knows how to read from disk.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/garaekz/glyphcast/internal/errs"
	"github.com/garaekz/glyphcast/progrefx"
)

// checkYtDlp verifies the yt-dlp binary is reachable on PATH.
func checkYtDlp(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "yt-dlp", "--version").Run(); err != nil {
		return errs.New(errs.Application, "download",
			"yt-dlp is not installed; see https://github.com/yt-dlp/yt-dlp/wiki/Installation")
	}
	return nil
}

// ToTempFile downloads url via yt-dlp into a new temp file and returns its
// path. The caller owns cleanup; wrap the call in `defer os.Remove(path)`.
func ToTempFile(ctx context.Context, url string) (string, error) {
	if err := checkYtDlp(ctx); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "glyphcast-*.webm")
	if err != nil {
		return "", errs.Wrap(errs.Application, "download", err)
	}
	path := tmp.Name()

	cmd := exec.CommandContext(ctx, "yt-dlp", url, "-o", "-")
	cmd.Stdout = tmp
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	closeErr := tmp.Close()
	if runErr != nil {
		os.Remove(path)
		return "", errs.Wrap(errs.Application, "download", fmt.Errorf("yt-dlp failed: %w: %s", runErr, stderr.String()))
	}
	if closeErr != nil {
		os.Remove(path)
		return "", errs.Wrap(errs.Application, "download", closeErr)
	}
	return path, nil
}

// ToTempFileWithSpinner wraps ToTempFile with a progress spinner on w so a
// long download gives the user feedback.
func ToTempFileWithSpinner(ctx context.Context, url string, w io.Writer) (string, error) {
	spinCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	spinner := progrefx.StartSpinner(progrefx.SpinnerConfig{Label: "Downloading " + url})
	done := make(chan struct{})
	go func() {
		defer close(done)
		spinner.Run(spinCtx, w, 0)
	}()

	path, err := ToTempFile(ctx, url)
	cancel()
	<-done
	return path, err
}
