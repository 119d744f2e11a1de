package output

import (
	"fmt"

	"github.com/schemadump/schemadump/internal/analysis"
)

// schemasItem renders the per-module schema class and enum layouts. Classes
// come first, then enums, both in capture order.
type schemasItem struct {
	schemas *analysis.SchemaMap
}

func (s schemasItem) toCS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extCS, func(f *Formatter) error {
		return f.Block("namespace SchemaDump.Schemas {", "}", func() error {
			for _, moduleName := range s.schemas.Keys() {
				schema, _ := s.schemas.Get(moduleName)

				f.WriteLinef("// Module: %s", moduleName)
				err := f.Block("public static class "+moduleIdent(moduleName)+" {", "}", func() error {
					for _, class := range schema.Classes {
						if class.Parent != "" {
							f.WriteLinef("// Parent: %s", class.Parent)
						}
						err := f.Block("public static class "+SanitizeName(class.Name)+" {", "}", func() error {
							for _, field := range class.Fields {
								writeFieldLine(f, "public const nint %s = %s;", field)
							}
							return nil
						})
						if err != nil {
							return err
						}
					}
					for _, enum := range schema.Enums {
						err := f.Block("public enum "+SanitizeName(enum.Name)+" : "+csEnumType(enum.Size)+" {", "}", func() error {
							for _, member := range enum.Members {
								f.WriteLinef("%s = %s,", SanitizeName(member.Name), enumMemberValue(member.Value))
							}
							return nil
						})
						if err != nil {
							return err
						}
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

func (s schemasItem) toHpp(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extHpp, func(f *Formatter) error {
		f.WriteLine("#pragma once")
		f.BlankLine()
		f.WriteLine("#include <cstddef>")
		f.WriteLine("#include <cstdint>")
		f.BlankLine()
		return f.Block("namespace schemadump {", "}", func() error {
			return f.Block("namespace schemas {", "}", func() error {
				for _, moduleName := range s.schemas.Keys() {
					schema, _ := s.schemas.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("namespace "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, class := range schema.Classes {
							if class.Parent != "" {
								f.WriteLinef("// Parent: %s", class.Parent)
							}
							err := f.Block("namespace "+SanitizeName(class.Name)+" {", "}", func() error {
								for _, field := range class.Fields {
									writeFieldLine(f, "constexpr std::ptrdiff_t %s = %s;", field)
								}
								return nil
							})
							if err != nil {
								return err
							}
						}
						for _, enum := range schema.Enums {
							err := f.Block("enum class "+SanitizeName(enum.Name)+" : "+hppEnumType(enum.Size)+" {", "};", func() error {
								for _, member := range enum.Members {
									f.WriteLinef("%s = %s,", SanitizeName(member.Name), enumMemberValue(member.Value))
								}
								return nil
							})
							if err != nil {
								return err
							}
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

func (s schemasItem) toJSON(r *Results, indentSize int) (string, error) {
	return marshalCollection(s.schemas, indentSize)
}

func (s schemasItem) toRS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extRS, func(f *Formatter) error {
		f.WriteLine("#![allow(non_upper_case_globals, non_camel_case_types, unused)]")
		f.BlankLine()
		return f.Block("pub mod schemadump {", "}", func() error {
			return f.Block("pub mod schemas {", "}", func() error {
				for _, moduleName := range s.schemas.Keys() {
					schema, _ := s.schemas.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("pub mod "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, class := range schema.Classes {
							if class.Parent != "" {
								f.WriteLinef("// Parent: %s", class.Parent)
							}
							err := f.Block("pub mod "+SanitizeName(class.Name)+" {", "}", func() error {
								for _, field := range class.Fields {
									writeFieldLine(f, "pub const %s: usize = %s;", field)
								}
								return nil
							})
							if err != nil {
								return err
							}
						}
						// Rust enums reject duplicate discriminants, which
						// schema enums routinely have, so members become
						// typed consts in a module instead.
						for _, enum := range schema.Enums {
							memberType := rsEnumType(enum.Size)
							f.WriteLinef("// Enum: %s (%s)", SanitizeName(enum.Name), memberType)
							err := f.Block("pub mod "+SanitizeName(enum.Name)+" {", "}", func() error {
								for _, member := range enum.Members {
									f.WriteLinef("pub const %s: %s = %s;", SanitizeName(member.Name), memberType, enumMemberValue(member.Value))
								}
								return nil
							})
							if err != nil {
								return err
							}
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

// writeFieldLine writes one class field constant, with the captured field
// type as a trailing comment when known.
func writeFieldLine(f *Formatter, format string, field analysis.ClassField) {
	line := fmt.Sprintf(format, SanitizeName(field.Name), hex(field.Value))
	if field.Type != "" {
		line += " // " + field.Type
	}
	f.WriteLine(line)
}
