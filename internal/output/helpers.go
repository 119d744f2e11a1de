package output

import "fmt"

func hex(v uint64) string {
	return fmt.Sprintf("0x%X", v)
}

// enumMemberValue formats an enum discriminant. Negative values stay
// decimal; hex would be misleading after two's-complement widening.
func enumMemberValue(v int64) string {
	if v < 0 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%X", v)
}

func csEnumType(size int) string {
	switch size {
	case 1:
		return "sbyte"
	case 2:
		return "short"
	case 8:
		return "long"
	default:
		return "int"
	}
}

func hppEnumType(size int) string {
	switch size {
	case 1:
		return "std::int8_t"
	case 2:
		return "std::int16_t"
	case 8:
		return "std::int64_t"
	default:
		return "std::int32_t"
	}
}

func rsEnumType(size int) string {
	switch size {
	case 1:
		return "i8"
	case 2:
		return "i16"
	case 8:
		return "i64"
	default:
		return "i32"
	}
}

// moduleIdent turns a module file name into a source identifier, e.g.
// "libclient.so" -> "libclient". Panics on an unsuffixed name, same as
// FormatModuleName.
func moduleIdent(moduleName string) string {
	return SanitizeName(FormatModuleName(moduleName))
}
