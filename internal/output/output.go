// Package output renders a captured snapshot into its textual artifacts:
// one structured-data file and three source files per collection, plus a
// small metadata file stamping the capture time and target build number.
package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schemadump/schemadump/internal/analysis"
	"github.com/schemadump/schemadump/internal/process"
)

const (
	extCS   = "cs"
	extHpp  = "hpp"
	extJSON = "json"
	extRS   = "rs"
)

// fileExts is the closed set of output formats, in emission order.
var fileExts = []string{extCS, extHpp, extJSON, extRS}

// lineComment maps source formats to their line comment prefix. Formats
// without an entry (JSON) carry no banner; the timestamp appears as data
// instead.
var lineComment = map[string]string{
	extCS:  "//",
	extHpp: "//",
	extRS:  "//",
}

const attributionURL = "https://github.com/schemadump/schemadump"

// buildNumberOffset is the well-known offset name holding the target
// process build number.
const buildNumberOffset = "dwBuildNumber"

// item is a closed sum over the four collection kinds. Each variant borrows
// its collection from the Results that owns it and lives only for one
// render call.
type item interface {
	toCS(r *Results, indentSize int) (string, error)
	toHpp(r *Results, indentSize int) (string, error)
	toJSON(r *Results, indentSize int) (string, error)
	toRS(r *Results, indentSize int) (string, error)
}

// generate renders one collection into one target format. The format set is
// closed and fully enumerated by DumpAll; anything else is a programming
// error, not a user error.
func generate(it item, r *Results, indentSize int, fileExt string) (string, error) {
	switch fileExt {
	case extCS:
		return it.toCS(r, indentSize)
	case extHpp:
		return it.toHpp(r, indentSize)
	case extJSON:
		return it.toJSON(r, indentSize)
	case extRS:
		return it.toRS(r, indentSize)
	default:
		panic("unknown output format: " + fileExt)
	}
}

// Results is the aggregate snapshot of one capture run.
type Results struct {
	// Timestamp of the capture.
	Timestamp time.Time `json:"timestamp"`

	// Buttons, in registration order.
	Buttons []analysis.Button `json:"buttons"`

	// Interfaces per module.
	Interfaces *analysis.InterfaceMap `json:"interfaces"`

	// Offsets per module.
	Offsets *analysis.OffsetMap `json:"offsets"`

	// Schema classes and enums per module.
	Schemas *analysis.SchemaMap `json:"schemas"`
}

// NewResults builds a snapshot from already-captured collections and stamps
// the current time.
func NewResults(buttons []analysis.Button, interfaces *analysis.InterfaceMap, offsets *analysis.OffsetMap, schemas *analysis.SchemaMap) *Results {
	return &Results{
		Timestamp:  time.Now().UTC(),
		Buttons:    buttons,
		Interfaces: interfaces,
		Offsets:    offsets,
		Schemas:    schemas,
	}
}

// Load reads a previously saved snapshot from a JSON file.
func Load(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var r Results
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &r, nil
}

// DumpAll writes every (collection, format) artifact plus info.json into
// outDir, overwriting existing files. The first failed write aborts the
// rest; files already written stay in place.
func (r *Results) DumpAll(logger *slog.Logger, handle process.Handle, outDir string, indentSize int) error {
	items := []struct {
		name string
		item item
	}{
		{"buttons", buttonsItem{r.Buttons}},
		{"interfaces", interfacesItem{r.Interfaces}},
		{"offsets", offsetsItem{r.Offsets}},
		{"schemas", schemasItem{r.Schemas}},
	}

	for _, it := range items {
		for _, ext := range fileExts {
			content, err := generate(it.item, r, indentSize, ext)
			if err != nil {
				return fmt.Errorf("render %s.%s: %w", it.name, ext, err)
			}
			if err := dumpFile(outDir, it.name, ext, content); err != nil {
				return err
			}
			logger.Debug("Wrote artifact", "file", it.name+"."+ext)
		}
	}

	if err := r.dumpInfoFile(handle, outDir); err != nil {
		return err
	}

	logger.Info("Dump complete", "dir", outDir, "files", len(items)*len(fileExts)+1)
	return nil
}

func dumpFile(outDir, fileName, fileExt, content string) error {
	path := filepath.Join(outDir, fileName+"."+fileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// dumpInfoFile writes the capture metadata record. The build-number read is
// best-effort telemetry: any lookup or read failure degrades to zero rather
// than failing the dump.
func (r *Results) dumpInfoFile(handle process.Handle, outDir string) error {
	info := struct {
		Timestamp   string `json:"timestamp"`
		BuildNumber uint32 `json:"build_number"`
	}{
		Timestamp:   r.Timestamp.Format(time.RFC3339),
		BuildNumber: r.readBuildNumber(handle),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("encode info.json: %w", err)
	}
	return dumpFile(outDir, "info", extJSON, string(data))
}

// readBuildNumber scans every module's offsets for the well-known build
// number field and reads it from the live process. First readable match
// wins; modules where the lookup or read fails are skipped.
func (r *Results) readBuildNumber(handle process.Handle) uint32 {
	for _, moduleName := range r.Offsets.Keys() {
		offsets, _ := r.Offsets.Get(moduleName)
		for _, offset := range offsets {
			if offset.Name != buildNumberOffset {
				continue
			}
			module, err := handle.ModuleByName(moduleName)
			if err != nil {
				break
			}
			value, err := handle.ReadUint32(module.Base + offset.Value)
			if err != nil {
				break
			}
			return value
		}
	}
	return 0
}

// writeBanner prepends the attribution and capture-timestamp comment lines
// in the target format's comment syntax, followed by a blank line.
func (r *Results) writeBanner(f *Formatter, fileExt string) {
	prefix, ok := lineComment[fileExt]
	if !ok {
		return
	}
	f.WriteLinef("%s Generated using %s", prefix, attributionURL)
	f.WriteLinef("%s %s", prefix, r.Timestamp.UTC())
	f.BlankLine()
}

// writeContent runs body against a fresh Formatter after writing the
// banner, and returns the accumulated text.
func writeContent(r *Results, indentSize int, fileExt string, body func(*Formatter) error) (string, error) {
	var buf strings.Builder
	f := NewFormatter(&buf, indentSize)

	r.writeBanner(f, fileExt)

	if err := body(f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// marshalCollection renders a collection as indented JSON, the one format
// that skips the textual banner.
func marshalCollection(v any, indentSize int) (string, error) {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indentSize))
	if err != nil {
		return "", fmt.Errorf("encode collection: %w", err)
	}
	return string(data), nil
}
