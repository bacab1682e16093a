// Package imports holds the per-language-family import pattern bundles.
package imports

import (
	"fmt"

	"github.com/codelens/codelens/internal/lang"
)

// For returns the compiled-query source for a language family.
func For(family lang.Family) (string, error) {
	switch family {
	case lang.FamilyTSJS:
		return TSJSQuery, nil
	case lang.FamilyC:
		return CQuery, nil
	case lang.FamilyCpp:
		return CppQuery, nil
	case lang.FamilyCSharp:
		return CSharpQuery, nil
	case lang.FamilyRust:
		return RustQuery, nil
	case lang.FamilyPython:
		return PythonQuery, nil
	case lang.FamilyGo:
		return GoQuery, nil
	case lang.FamilyJava:
		return JavaQuery, nil
	case lang.FamilyPHP:
		return PHPQuery, nil
	default:
		return "", fmt.Errorf("no import bundle for family %q", family)
	}
}
