package download

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckYtDlpMissingBinaryErrors(t *testing.T) {
	// PATH in the test environment is not guaranteed to have yt-dlp; this
	// only asserts the error path is well-formed when it's absent, not that
	// it always fires.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := checkYtDlp(ctx)
	if err != nil {
		assert.Contains(t, err.Error(), "yt-dlp")
	}
}
