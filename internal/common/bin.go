package common

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Compression selects the framing used for binary artifacts.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
)

// zstdMagic opens every zstd frame; LoadBin uses it to detect compressed
// artifacts.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ParseCompression maps a config value onto a Compression.
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionZstd:
		return CompressionZstd, nil
	}
	return "", fmt.Errorf("%w: unknown compression %q", ErrInvalidArgument, s)
}

// SaveBin serializes data with msgpack into a single file at path. Any value
// msgpack can encode is accepted, including structs with exported fields.
func (f *Files) SaveBin(data any, path string) error {
	if err := expect("save bin").path("path", path).err(); err != nil {
		return err
	}

	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.encodeBin(file, data); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	f.logger.With("path", path, "compression", f.compression).Info("binary file saved")
	return nil
}

func (f *Files) encodeBin(w io.Writer, data any) error {
	if f.compression != CompressionZstd {
		return msgpack.NewEncoder(w).Encode(data)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(data); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// LoadBin decodes the artifact at path into target, which must be a non-nil
// pointer. The caller picks the target type; zstd framing is detected from
// the file header.
func (f *Files) LoadBin(path string, target any) error {
	if err := expect("load bin").path("path", path).pointer("target", target).err(); err != nil {
		return err
	}

	file, err := f.fs.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := decodeBin(file, target); err != nil {
		return err
	}

	f.logger.With("path", path).Info("binary file loaded")
	return nil
}

// LoadBinAs is LoadBin for callers that know the artifact type up front.
func LoadBinAs[T any](f *Files, path string) (T, error) {
	var out T
	if err := f.LoadBin(path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ArtifactInfo describes how a binary artifact is stored on disk.
type ArtifactInfo struct {
	Compression Compression
	Size        int64
}

// InspectBin reports the framing and on-disk size of the artifact at path
// without decoding it.
func (f *Files) InspectBin(path string) (ArtifactInfo, error) {
	if err := expect("inspect bin").path("path", path).err(); err != nil {
		return ArtifactInfo{}, err
	}

	file, err := f.fs.Open(path)
	if err != nil {
		return ArtifactInfo{}, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return ArtifactInfo{}, err
	}

	compressed, err := hasZstdMagic(bufio.NewReader(file))
	if err != nil {
		return ArtifactInfo{}, err
	}

	info := ArtifactInfo{Compression: CompressionNone, Size: stat.Size()}
	if compressed {
		info.Compression = CompressionZstd
	}
	return info, nil
}

func decodeBin(r io.Reader, target any) error {
	br := bufio.NewReader(r)

	compressed, err := hasZstdMagic(br)
	if err != nil {
		return err
	}
	if !compressed {
		return msgpack.NewDecoder(br).Decode(target)
	}

	zr, err := zstd.NewReader(br)
	if err != nil {
		return err
	}
	defer zr.Close()

	return msgpack.NewDecoder(zr).Decode(target)
}

func hasZstdMagic(br *bufio.Reader) (bool, error) {
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return false, err
	}
	return bytes.Equal(head, zstdMagic), nil
}
