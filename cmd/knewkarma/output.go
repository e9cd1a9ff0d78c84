package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"knewkarma/internal/models"
)

var (
	statusOK   = color.New(color.FgGreen).SprintFunc()
	statusWarn = color.New(color.FgYellow).SprintFunc()
)

// emit prints the result as indented JSON on stdout, or exports it to a file
// when --export is set. The core hands over plain data; everything here is
// presentation.
func emit(name string, v any) error {
	switch flagExport {
	case "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "json":
		path := exportPath(name, "json")
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s exported to %s\n", statusOK("✓"), path)
		return nil
	case "csv":
		items, ok := v.([]models.Item)
		if !ok {
			return fmt.Errorf("csv export only supports listings, use --export json")
		}
		path := exportPath(name, "csv")
		if err := writeCSV(path, items); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s exported %d rows to %s\n", statusOK("✓"), len(items), path)
		return nil
	default:
		return fmt.Errorf("unknown export format %q: use json or csv", flagExport)
	}
}

func exportPath(name, ext string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return name + "." + ext
}

// writeCSV flattens items onto the union of their scalar keys. Nested values
// are serialized as JSON so no field is silently dropped.
func writeCSV(path string, items []models.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	keySet := make(map[string]bool)
	for _, item := range items {
		for k := range item {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(keys); err != nil {
		return err
	}
	for _, item := range items {
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = cellValue(item[k])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64, bool:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
