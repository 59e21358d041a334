package common

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes the YAML document at path into a Box. The root must be a
// non-empty mapping. Read and parse failures are returned as-is.
func (f *Files) ReadYAML(path string) (*Box[any], error) {
	if err := expect("read yaml").path("path", path).err(); err != nil {
		return nil, err
	}

	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// yaml.v3 only builds plain maps, slices and scalars; tags never
	// construct arbitrary values.
	var content any
	if err := yaml.NewDecoder(file).Decode(&content); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}

	box, err := rootBox(content)
	if err != nil {
		return nil, err
	}

	f.logger.With("path", path).Info("yaml file loaded")
	return box, nil
}

func rootBox(content any) (*Box[any], error) {
	if content == nil {
		return nil, ErrEmptyDocument
	}

	values, ok := asStringMap(content)
	if !ok {
		return nil, ErrNotMapping
	}
	if len(values) == 0 {
		return nil, ErrEmptyDocument
	}

	return NewBox(values), nil
}
