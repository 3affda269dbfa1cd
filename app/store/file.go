package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Cities reads the cities list from a JSON file of the form
// {"cities": [{"city": "Paris"}, ...]}.
func Cities(path string) ([]City, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cities file: %w", err)
	}

	var f struct {
		Cities []City `json:"cities"`
	}
	if err := json.Unmarshal(bts, &f); err != nil {
		return nil, fmt.Errorf("unmarshal cities file: %w", err)
	}

	return f.Cities, nil
}

// WriteDocument writes the generated document to the given path, fully
// overwriting the previous artifact. Output is indented UTF-8 with HTML
// escaping turned off, so URLs and emoji stay literal.
func WriteDocument(path string, doc Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return nil
}
