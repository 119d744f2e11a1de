package output

import "github.com/schemadump/schemadump/internal/analysis"

// buttonsItem renders the button list. Buttons are global (not grouped by
// module), so all formats emit a single block in registration order.
type buttonsItem struct {
	buttons []analysis.Button
}

func (b buttonsItem) toCS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extCS, func(f *Formatter) error {
		return f.Block("namespace SchemaDump {", "}", func() error {
			return f.Block("public static class Buttons {", "}", func() error {
				for _, button := range b.buttons {
					f.WriteLinef("public const nint %s = %s;", SanitizeName(button.Name), hex(button.Value))
				}
				return nil
			})
		})
	})
}

func (b buttonsItem) toHpp(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extHpp, func(f *Formatter) error {
		f.WriteLine("#pragma once")
		f.BlankLine()
		f.WriteLine("#include <cstddef>")
		f.BlankLine()
		return f.Block("namespace schemadump {", "}", func() error {
			return f.Block("namespace buttons {", "}", func() error {
				for _, button := range b.buttons {
					f.WriteLinef("constexpr std::ptrdiff_t %s = %s;", SanitizeName(button.Name), hex(button.Value))
				}
				return nil
			})
		})
	})
}

func (b buttonsItem) toJSON(r *Results, indentSize int) (string, error) {
	buttons := b.buttons
	if buttons == nil {
		buttons = []analysis.Button{}
	}
	return marshalCollection(buttons, indentSize)
}

func (b buttonsItem) toRS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extRS, func(f *Formatter) error {
		f.WriteLine("#![allow(non_upper_case_globals, non_camel_case_types, unused)]")
		f.BlankLine()
		return f.Block("pub mod schemadump {", "}", func() error {
			return f.Block("pub mod buttons {", "}", func() error {
				for _, button := range b.buttons {
					f.WriteLinef("pub const %s: usize = %s;", SanitizeName(button.Name), hex(button.Value))
				}
				return nil
			})
		})
	})
}
