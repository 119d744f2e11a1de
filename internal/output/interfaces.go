package output

import "github.com/schemadump/schemadump/internal/analysis"

// interfacesItem renders the per-module interface pointers.
type interfacesItem struct {
	interfaces *analysis.InterfaceMap
}

func (i interfacesItem) toCS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extCS, func(f *Formatter) error {
		return f.Block("namespace SchemaDump.Interfaces {", "}", func() error {
			for _, moduleName := range i.interfaces.Keys() {
				interfaces, _ := i.interfaces.Get(moduleName)

				f.WriteLinef("// Module: %s", moduleName)
				err := f.Block("public static class "+moduleIdent(moduleName)+" {", "}", func() error {
					for _, iface := range interfaces {
						f.WriteLinef("public const nint %s = %s;", SanitizeName(iface.Name), hex(iface.Value))
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

func (i interfacesItem) toHpp(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extHpp, func(f *Formatter) error {
		f.WriteLine("#pragma once")
		f.BlankLine()
		f.WriteLine("#include <cstddef>")
		f.BlankLine()
		return f.Block("namespace schemadump {", "}", func() error {
			return f.Block("namespace interfaces {", "}", func() error {
				for _, moduleName := range i.interfaces.Keys() {
					interfaces, _ := i.interfaces.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("namespace "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, iface := range interfaces {
							f.WriteLinef("constexpr std::ptrdiff_t %s = %s;", SanitizeName(iface.Name), hex(iface.Value))
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

func (i interfacesItem) toJSON(r *Results, indentSize int) (string, error) {
	return marshalCollection(i.interfaces, indentSize)
}

func (i interfacesItem) toRS(r *Results, indentSize int) (string, error) {
	return writeContent(r, indentSize, extRS, func(f *Formatter) error {
		f.WriteLine("#![allow(non_upper_case_globals, non_camel_case_types, unused)]")
		f.BlankLine()
		return f.Block("pub mod schemadump {", "}", func() error {
			return f.Block("pub mod interfaces {", "}", func() error {
				for _, moduleName := range i.interfaces.Keys() {
					interfaces, _ := i.interfaces.Get(moduleName)

					f.WriteLinef("// Module: %s", moduleName)
					err := f.Block("pub mod "+moduleIdent(moduleName)+" {", "}", func() error {
						for _, iface := range interfaces {
							f.WriteLinef("pub const %s: usize = %s;", SanitizeName(iface.Name), hex(iface.Value))
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
