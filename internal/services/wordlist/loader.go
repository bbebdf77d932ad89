// Package wordlist loads word lists and optional display-name mappings.
package wordlist

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Load reads a word list: UTF-8, one word per line. Blank lines and
// lines starting with '#' are skipped; words are upper-cased.
func Load(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads a word list from a file
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// displayRecord is one line of the newline-delimited JSON mapping file
type displayRecord struct {
	AllCap string `json:"all_cap"`
	Word   string `json:"word"`
}

// LoadDisplayNames reads a newline-delimited JSON mapping of uppercase
// word to display form, used only to prettify output
func LoadDisplayNames(r io.Reader) (map[string]string, error) {
	names := make(map[string]string)
	dec := json.NewDecoder(r)
	for {
		var rec displayRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if rec.AllCap != "" {
			names[rec.AllCap] = rec.Word
		}
	}
	return names, nil
}

// LoadDisplayNamesFile reads the display-name mapping from a file.
// A missing file is not an error: output falls back to raw uppercase.
func LoadDisplayNamesFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadDisplayNames(f)
}
