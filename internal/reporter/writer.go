package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/ethanolivertroy/sizeprof/internal/options"
)

// Write sends data to dest: stdout goes to the given writer, a file
// destination is created or truncated.
func Write(dest options.OutputDestination, data []byte, stdout io.Writer) error {
	if dest.IsStdout() {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dest.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
