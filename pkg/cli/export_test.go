package cli

import (
	"io"
	"time"
)

var RunWithIO = run

const RetryMessage = retryMessage

func PromptDate(in io.Reader, out io.Writer, label string) (time.Time, error) {
	return newPrompter(in, out).Date(label)
}
