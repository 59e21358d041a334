package common

import (
	"fmt"
	"math"

	"github.com/spf13/afero"
)

// GetSize reports the size of the file at path in whole kilobytes, formatted
// as "~N KB". Halves round to even. Nothing is logged.
func (f *Files) GetSize(path string) (string, error) {
	return GetSize(f.fs, path)
}

// GetSize is the filesystem-level form of Files.GetSize.
func GetSize(fs afero.Fs, path string) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", err
	}

	return FormatSize(info.Size()), nil
}

// FormatSize renders a byte count the way GetSize does.
func FormatSize(bytes int64) string {
	kb := math.RoundToEven(float64(bytes) / 1024)
	return fmt.Sprintf("~%d KB", int64(kb))
}
