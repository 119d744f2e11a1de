package output

import "github.com/schemadump/schemadump/internal/analysis"

// offsetsItem renders the per-module named offsets.
type offsetsItem struct {
	offsets *analysis.OffsetMap
}

func (o offsetsItem) toCS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extCS, func(f *Formatter) error {
		return f.Block("namespace SchemaDump.Offsets {", "}", func() error {
			for _, moduleName := range o.offsets.Keys() {
				offsets, _ := o.offsets.Get(moduleName)

				f.WriteLinef("// Module: %s", moduleName)
				err := f.Block("public static class "+moduleIdent(moduleName)+" {", "}", func() error {
					for _, offset := range offsets {
						f.WriteLinef("public const nint %s = %s;", SanitizeName(offset.Name), hex(offset.Value))
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (o offsetsItem) toHpp(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extHpp, func(f *Formatter) error {
		f.WriteLine("#pragma once")
		f.BlankLine()
		f.WriteLine("#include <cstddef>")
		f.BlankLine()
		return f.Block("namespace schemadump {", "}", func() error {
			return f.Block("namespace offsets {", "}", func() error {
				for _, moduleName := range o.offsets.Keys() {
					offsets, _ := o.offsets.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("namespace "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, offset := range offsets {
							f.WriteLinef("constexpr std::ptrdiff_t %s = %s;", SanitizeName(offset.Name), hex(offset.Value))
						}
						return nil
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		})
	})
}

func (o offsetsItem) toJSON(r *Results, indentSize int) (string, error) {
	return marshalCollection(o.offsets, indentSize)
}

func (o offsetsItem) toRS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extRS, func(f *Formatter) error {
		f.WriteLine("#![allow(non_upper_case_globals, non_camel_case_types, unused)]")
		f.BlankLine()
		return f.Block("pub mod schemadump {", "}", func() error {
			return f.Block("pub mod offsets {", "}", func() error {
				for _, moduleName := range o.offsets.Keys() {
					offsets, _ := o.offsets.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("pub mod "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, offset := range offsets {
							f.WriteLinef("pub const %s: usize = %s;", SanitizeName(offset.Name), hex(offset.Value))
						}
						return nil
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		})
	})
}
