package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Load reads the stat record from path. A missing file or unreadable
// content yields the default all-zero record rather than an error, so a
// first run or a corrupted file always starts the session cleanly.
// Partially valid files keep their recognized values; missing stats are
// filled with zero and negative values are reset to zero.
func Load(path string) Record {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read %s: %v. Starting with default stats.", path, err)
		}
		return NewRecord()
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Warning: %s is corrupted. Starting with default stats.", path)
		return NewRecord()
	}

	return Record(raw).normalize()
}

// Save overwrites path with the record as indented JSON.
func Save(path string, r Record) error {
	data, err := json.MarshalIndent(r.normalize(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save stats to %s: %w", path, err)
	}
	return nil
}
