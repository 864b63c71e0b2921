package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// =============================================================================
// Network Serialization API
// =============================================================================

// Marshal converts a Network to JSON bytes.
// Nodes are sorted by name for deterministic output.
func Marshal(n *Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a Network to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(n *Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(n, f)
}

// Write writes a Network as JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(n *Network, w io.Writer) error {
	return writeTo(n, w)
}

// ReadFile reads a JSON file and returns the decoded Network.
func ReadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON network from an io.Reader.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*Network, error) {
	return readFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(n *Network, w io.Writer) error {
	out := Network{Nodes: n.sortedNodes(), Edges: n.Edges}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Network, error) {
	var n Network
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &n, nil
}

// edgeJSON is the wire form of an Edge. Missing statistics are encoded
// as absent fields rather than NaN, which JSON cannot represent.
type edgeJSON struct {
	From   string             `json:"from"`
	To     string             `json:"to"`
	R      *float64           `json:"r,omitempty"`
	P      *float64           `json:"p,omitempty"`
	Weight *float64           `json:"weight,omitempty"`
	Extra  map[string]float64 `json:"extra,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Edge) MarshalJSON() ([]byte, error) {
	out := edgeJSON{From: e.From, To: e.To, Extra: e.Extra}
	if !math.IsNaN(e.R) {
		out.R = ptr(e.R)
	}
	if !math.IsNaN(e.P) {
		out.P = ptr(e.P)
	}
	if e.HasWeight {
		out.Weight = ptr(e.Weight)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var in edgeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*e = Edge{From: in.From, To: in.To, R: math.NaN(), P: math.NaN(), Extra: in.Extra}
	if in.R != nil {
		e.R = *in.R
	}
	if in.P != nil {
		e.P = *in.P
	}
	if in.Weight != nil {
		e.Weight = *in.Weight
		e.HasWeight = true
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
