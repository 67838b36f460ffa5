package builtins

import (
	"io"

	"github.com/spin-lang/spin/internal/value"
	"github.com/spin-lang/spin/internal/wings"
)

// Build constructs the Class value for one built-in library, keyed by the
// same wings.Library tag Wings records when it sees `import Console;` et al.
func Build(lib wings.Library, out io.Writer, in io.Reader) *value.ClassValue {
	switch lib {
	case wings.Console:
		return RegisterConsole(out, in)
	case wings.Kronos:
		return RegisterKronos()
	case wings.Maths:
		return RegisterMaths()
	default:
		return nil
	}
}
