package tokenio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var bomPrefix = []byte{0xEF, 0xBB, 0xBF}

// DecodeJSON reads a JSON dump. A leading UTF-8 BOM is tolerated since
// dumps come from foreign tooling.
func DecodeJSON(r io.Reader) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, bomPrefix)
	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse JSON dump: %w", err)
	}
	return &d, nil
}

// EncodeJSON writes a dump as indented JSON.
func EncodeJSON(w io.Writer, d *Dump) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// DecodeMsgpack reads a msgpack dump.
func DecodeMsgpack(r io.Reader) (*Dump, error) {
	var d Dump
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse msgpack dump: %w", err)
	}
	return &d, nil
}

// EncodeMsgpack writes a dump in msgpack form.
func EncodeMsgpack(w io.Writer, d *Dump) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(d)
}

func codecByExt(path string) (decode func(io.Reader) (*Dump, error), encode func(io.Writer, *Dump) error, err error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON, EncodeJSON, nil
	case ".msgpack", ".bin":
		return DecodeMsgpack, EncodeMsgpack, nil
	default:
		return nil, nil, fmt.Errorf("unknown dump extension %q (want .json, .msgpack, or .bin)", ext)
	}
}

// DecodeFile reads a dump file, picking the codec by extension:
// .json decodes as JSON, .msgpack and .bin as msgpack.
func DecodeFile(path string) (*Dump, error) {
	decode, _, err := codecByExt(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// EncodeFile writes a dump file, picking the codec by extension.
func EncodeFile(path string, d *Dump) error {
	_, encode, err := codecByExt(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f, d)
}
