package output

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemadump/schemadump/internal/analysis"
	"github.com/schemadump/schemadump/internal/process"
)

// fakeHandle simulates an attached process with a fixed module list and
// sparse memory.
type fakeHandle struct {
	modules map[string]uint64
	memory  map[uint64]uint32
}

func (f fakeHandle) ModuleByName(name string) (process.Module, error) {
	base, ok := f.modules[name]
	if !ok {
		return process.Module{}, process.ErrModuleNotFound
	}
	return process.Module{Name: name, Base: base}, nil
}

func (f fakeHandle) ReadUint32(addr uint64) (uint32, error) {
	v, ok := f.memory[addr]
	if !ok {
		return 0, process.ErrReadFailed
	}
	return v, nil
}

func (f fakeHandle) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testResults builds a fixed snapshot. Module names carry the platform
// suffix, as captured names always do.
func testResults() *Results {
	clientModule := "client" + moduleSuffix()
	engineModule := "engine2" + moduleSuffix()

	interfaces := analysis.NewOrderedMap[[]analysis.Interface]()
	interfaces.Set(clientModule, []analysis.Interface{
		{Name: "Source2Client002", Value: 0x180A330},
	})

	offsets := analysis.NewOrderedMap[[]analysis.Offset]()
	offsets.Set(clientModule, []analysis.Offset{
		{Name: "dwViewMatrix", Value: 0x1A1B2C0},
	})
	offsets.Set(engineModule, []analysis.Offset{
		{Name: "dwBuildNumber", Value: 0x10},
	})

	schemas := analysis.NewOrderedMap[analysis.ModuleSchema]()
	schemas.Set(clientModule, analysis.ModuleSchema{
		Classes: []analysis.Class{{
			Name:   "C_BasePlayer",
			Parent: "C_BaseEntity",
			Fields: []analysis.ClassField{
				{Name: "m_iHealth", Value: 0x344, Type: "int32"},
			},
		}},
		Enums: []analysis.Enum{{
			Name: "EFlags",
			Size: 4,
			Members: []analysis.EnumMember{
				{Name: "None", Value: 0},
				{Name: "Invalid", Value: -1},
			},
		}},
	})

	return &Results{
		Timestamp:  time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		Buttons:    []analysis.Button{{Name: "attack", Value: 0x17F4690}},
		Interfaces: interfaces,
		Offsets:    offsets,
		Schemas:    schemas,
	}
}

func testItems(r *Results) map[string]item {
	return map[string]item{
		"buttons":    buttonsItem{r.Buttons},
		"interfaces": interfacesItem{r.Interfaces},
		"offsets":    offsetsItem{r.Offsets},
		"schemas":    schemasItem{r.Schemas},
	}
}

var dumpFileNames = []string{
	"buttons.cs", "buttons.hpp", "buttons.json", "buttons.rs",
	"interfaces.cs", "interfaces.hpp", "interfaces.json", "interfaces.rs",
	"offsets.cs", "offsets.hpp", "offsets.json", "offsets.rs",
	"schemas.cs", "schemas.hpp", "schemas.json", "schemas.rs",
	"info.json",
}

func TestRenderDeterminism(t *testing.T) {
	r := testResults()
	for name, it := range testItems(r) {
		for _, ext := range fileExts {
			first, err := generate(it, r, 4, ext)
			require.NoError(t, err, "%s.%s", name, ext)
			second, err := generate(it, r, 4, ext)
			require.NoError(t, err, "%s.%s", name, ext)
			assert.Equal(t, first, second, "%s.%s not deterministic", name, ext)
		}
	}
}

func TestButtonsCSharpGolden(t *testing.T) {
	r := testResults()
	content, err := generate(buttonsItem{r.Buttons}, r, 4, extCS)
	require.NoError(t, err)

	want := "// Generated using https://github.com/schemadump/schemadump\n" +
		"// 2026-08-23 10:00:00 +0000 UTC\n" +
		"\n" +
		"namespace SchemaDump {\n" +
		"    public static class Buttons {\n" +
		"        public const nint attack = 0x17F4690;\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, content)
}

func TestBannerPerSourceFormat(t *testing.T) {
	r := testResults()
	for name, it := range testItems(r) {
		for _, ext := range []string{extCS, extHpp, extRS} {
			content, err := generate(it, r, 4, ext)
			require.NoError(t, err)

			lines := strings.Split(content, "\n")
			require.GreaterOrEqual(t, len(lines), 3, "%s.%s", name, ext)
			assert.Equal(t, "// Generated using https://github.com/schemadump/schemadump", lines[0], "%s.%s", name, ext)
			assert.Equal(t, "// 2026-08-23 10:00:00 +0000 UTC", lines[1], "%s.%s", name, ext)
			assert.Equal(t, "", lines[2], "%s.%s", name, ext)
		}
	}
}

func TestJSONCarriesNoBanner(t *testing.T) {
	r := testResults()
	for name, it := range testItems(r) {
		content, err := generate(it, r, 4, extJSON)
		require.NoError(t, err)
		assert.NotContains(t, content, "Generated using", "%s.json", name)

		var parsed any
		assert.NoError(t, json.Unmarshal([]byte(content), &parsed), "%s.json is not valid JSON", name)
	}
}

func TestGeneratedSourceContent(t *testing.T) {
	r := testResults()
	moduleName := "client" + moduleSuffix()

	hpp, err := generate(offsetsItem{r.Offsets}, r, 4, extHpp)
	require.NoError(t, err)
	assert.Contains(t, hpp, "#pragma once")
	assert.Contains(t, hpp, "// Module: "+moduleName)
	assert.Contains(t, hpp, "namespace client {")
	assert.Contains(t, hpp, "constexpr std::ptrdiff_t dwViewMatrix = 0x1A1B2C0;")

	rs, err := generate(interfacesItem{r.Interfaces}, r, 4, extRS)
	require.NoError(t, err)
	assert.Contains(t, rs, "pub mod client {")
	assert.Contains(t, rs, "pub const Source2Client002: usize = 0x180A330;")

	cs, err := generate(schemasItem{r.Schemas}, r, 4, extCS)
	require.NoError(t, err)
	assert.Contains(t, cs, "// Parent: C_BaseEntity")
	assert.Contains(t, cs, "public const nint m_iHealth = 0x344; // int32")
	assert.Contains(t, cs, "public enum EFlags : int {")
	assert.Contains(t, cs, "Invalid = -1,")
}

func TestGenerateUnknownFormatPanics(t *testing.T) {
	r := testResults()
	assert.Panics(t, func() {
		_, _ = generate(buttonsItem{r.Buttons}, r, 4, "toml")
	})
}

func TestDumpAllWritesSeventeenFiles(t *testing.T) {
	r := testResults()
	dir := t.TempDir()

	err := r.DumpAll(testLogger(), fakeHandle{}, dir, 4)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(dumpFileNames))

	for _, name := range dumpFileNames {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %s", name)
	}
}

func TestDumpAllIsReproducible(t *testing.T) {
	r := testResults()
	first := t.TempDir()
	second := t.TempDir()

	require.NoError(t, r.DumpAll(testLogger(), fakeHandle{}, first, 4))
	require.NoError(t, r.DumpAll(testLogger(), fakeHandle{}, second, 4))

	for _, name := range dumpFileNames {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "%s differs between runs", name)
	}
}

func readInfo(t *testing.T, dir string) (string, uint32) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "info.json"))
	require.NoError(t, err)

	var info struct {
		Timestamp   string `json:"timestamp"`
		BuildNumber uint32 `json:"build_number"`
	}
	require.NoError(t, json.Unmarshal(data, &info))
	return info.Timestamp, info.BuildNumber
}

func TestInfoBuildNumberFromProcess(t *testing.T) {
	r := testResults()
	dir := t.TempDir()

	engineModule := "engine2" + moduleSuffix()
	handle := fakeHandle{
		modules: map[string]uint64{engineModule: 0x7FF600000000},
		memory:  map[uint64]uint32{0x7FF600000010: 14071},
	}

	require.NoError(t, r.DumpAll(testLogger(), handle, dir, 4))

	timestamp, build := readInfo(t, dir)
	assert.Equal(t, "2026-08-23T10:00:00Z", timestamp)
	assert.Equal(t, uint32(14071), build)
}

func TestInfoBuildNumberDefaultsToZero(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *Results)
		handle fakeHandle
	}{
		{
			name: "offset absent",
			mutate: func(r *Results) {
				offsets := analysis.NewOrderedMap[[]analysis.Offset]()
				offsets.Set("client"+moduleSuffix(), []analysis.Offset{{Name: "dwViewMatrix", Value: 0x10}})
				r.Offsets = offsets
			},
			handle: fakeHandle{},
		},
		{
			name:   "module unresolvable",
			mutate: func(r *Results) {},
			handle: fakeHandle{},
		},
		{
			name:   "read fails",
			mutate: func(r *Results) {},
			handle: fakeHandle{
				modules: map[string]uint64{"engine2" + moduleSuffix(): 0x1000},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testResults()
			tc.mutate(r)
			dir := t.TempDir()

			require.NoError(t, r.DumpAll(testLogger(), tc.handle, dir, 4))

			_, build := readInfo(t, dir)
			assert.Equal(t, uint32(0), build)
		})
	}
}

func TestLoadRenderRoundTrip(t *testing.T) {
	r := testResults()
	dir := t.TempDir()
	snapshotPath := filepath.Join(dir, "snapshot.json")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(snapshotPath, data, 0o644))

	loaded, err := Load(snapshotPath)
	require.NoError(t, err)

	for name, it := range testItems(r) {
		loadedItems := testItems(loaded)
		for _, ext := range fileExts {
			want, err := generate(it, r, 4, ext)
			require.NoError(t, err)
			got, err := generate(loadedItems[name], loaded, 4, ext)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s.%s changed across save/load", name, ext)
		}
	}
}

// Mirrors the end-to-end scenario: a minimal snapshot with an empty schema
// map, dumped against a simulated process.
func TestDumpScenario(t *testing.T) {
	engineModule := "engine2" + moduleSuffix()

	interfaces := analysis.NewOrderedMap[[]analysis.Interface]()
	interfaces.Set("client"+moduleSuffix(), []analysis.Interface{{Name: "Source2Client002", Value: 0x100}})

	offsets := analysis.NewOrderedMap[[]analysis.Offset]()
	offsets.Set(engineModule, []analysis.Offset{{Name: "dwBuildNumber", Value: 0x10}})

	r := &Results{
		Timestamp:  time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		Buttons:    []analysis.Button{{Name: "jump", Value: 0x20}},
		Interfaces: interfaces,
		Offsets:    offsets,
		Schemas:    analysis.NewOrderedMap[analysis.ModuleSchema](),
	}

	handle := fakeHandle{
		modules: map[string]uint64{engineModule: 0x1000},
		memory:  map[uint64]uint32{0x1010: 9999},
	}

	dir := t.TempDir()
	require.NoError(t, r.DumpAll(testLogger(), handle, dir, 4))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 17)

	_, build := readInfo(t, dir)
	assert.Equal(t, uint32(9999), build)

	offsetsJSON, err := os.ReadFile(filepath.Join(dir, "offsets.json"))
	require.NoError(t, err)
	assert.Contains(t, string(offsetsJSON), `"dwBuildNumber"`)

	schemasJSON, err := os.ReadFile(filepath.Join(dir, "schemas.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(schemasJSON))
}
