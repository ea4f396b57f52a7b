package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
)

// multiFlag collects a repeatable string flag such as -omen
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// seedFlag is an optional uint64 flag; unset leaves the engine's source in charge
type seedFlag struct {
	value *uint64
}

func (s *seedFlag) String() string {
	if s.value == nil {
		return ""
	}
	return strconv.FormatUint(*s.value, 10)
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	s.value = &n
	return nil
}

// readItemSpec reads an item spec from a JSON file; "-" reads stdin
func readItemSpec(path string) (*catalog.ItemSpec, error) {
	if path == "" {
		return nil, fmt.Errorf("-item is required")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item %s: %w", path, err)
	}

	var spec catalog.ItemSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse item %s: %w", path, err)
	}
	return &spec, nil
}
