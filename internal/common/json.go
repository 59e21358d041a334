package common

import (
	"encoding/json"
	"os"
	"strconv"
)

const jsonIndent = "    "

// SaveJSON writes data to path with four-space indentation, replacing any
// existing file.
func (f *Files) SaveJSON(path string, data map[string]any) error {
	if err := expect("save json").path("path", path).notNil("data", data).err(); err != nil {
		return err
	}

	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", jsonIndent)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	f.logger.With("path", path).Info("json file saved")
	return nil
}

// LoadJSON parses the JSON object at path into a Box. Unlike ReadYAML an
// empty object is accepted. Integral numbers come back as int and all other
// numbers as float64, so documents holding ints and fractional floats load
// back equal to what SaveJSON wrote. A whole float such as 5.0 is written as
// 5 and therefore loads as int.
func (f *Files) LoadJSON(path string) (*Box[any], error) {
	if err := expect("load json").path("path", path).err(); err != nil {
		return nil, err
	}

	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var content map[string]any
	if err := decoder.Decode(&content); err != nil {
		return nil, err
	}
	for k, v := range content {
		content[k] = normalizeNumbers(v)
	}

	f.logger.With("path", path).Info("json file loaded")
	return NewBox(content), nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, strconv.IntSize); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
	}
	return v
}
