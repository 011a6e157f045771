package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the demo content bundled with the binary
type SeedData struct {
	Documents map[string]json.RawMessage
	Blogs     []BlogPost
	Events    []Event
	Contacts  []Contact
}

var (
	seedOnce sync.Once
	seed     *SeedData
	seedErr  error
)

// Seed returns the parsed demo content
func Seed() (*SeedData, error) {
	seedOnce.Do(func() {
		seed, seedErr = ParseSeed(seedYAML)
	})
	return seed, seedErr
}

// ParseSeed parses a YAML seed file. Every singleton document is validated
// and re-encoded as compact JSON.
func ParseSeed(data []byte) (*SeedData, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	out := &SeedData{Documents: make(map[string]json.RawMessage)}
	for _, d := range Domains() {
		node, ok := raw[d.Name]
		if !ok {
			continue
		}
		asJSON, err := json.Marshal(node)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", d.Name, err)
		}
		doc, err := d.Decode(asJSON)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		canonical, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out.Documents[d.Name] = canonical
	}

	if err := convertSeed(raw["blogs"], &out.Blogs); err != nil {
		return nil, fmt.Errorf("seed blogs: %w", err)
	}
	if err := convertSeed(raw["events"], &out.Events); err != nil {
		return nil, fmt.Errorf("seed events: %w", err)
	}
	if err := convertSeed(raw["contacts"], &out.Contacts); err != nil {
		return nil, fmt.Errorf("seed contacts: %w", err)
	}
	for i := range out.Contacts {
		out.Contacts[i].ID = i + 1
	}
	return out, nil
}

// Default returns the demo document for a domain, or nil when none is bundled
func Default(domain string) json.RawMessage {
	s, err := Seed()
	if err != nil {
		return nil
	}
	doc, ok := s.Documents[domain]
	if !ok {
		return nil
	}
	return append(json.RawMessage(nil), doc...)
}

func convertSeed(node any, out any) error {
	if node == nil {
		return nil
	}
	asJSON, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(asJSON, out)
}
