package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ReadJSONFile decodes the JSON document at path into v.
func ReadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse json %s: %w", path, err)
	}
	return nil
}

// WriteJSONFile writes any value as indented JSON to path, replacing the file.
func WriteJSONFile(path string, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json %s: %w", path, err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadYAMLFile decodes the YAML document at path into v.
func ReadYAMLFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse yaml %s: %w", path, err)
	}
	return nil
}

// ReadTOMLFile decodes the TOML document at path into v.
func ReadTOMLFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse toml %s: %w", path, err)
	}
	return nil
}

// ReadCSVFile reads a CSV file whose first row is a header and returns one
// map per data row, keyed by column name. Short rows get "" for the missing
// columns; values beyond the header are dropped.
func ReadCSVFile(csvFilePath string) ([]map[string]string, error) {
	f, err := os.Open(csvFilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header %s: %w", csvFilePath, err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", csvFilePath, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []map[string]string{}
	}
	return rows, nil
}
