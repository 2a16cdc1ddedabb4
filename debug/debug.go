package debug

import (
	"os"
	"strconv"
)

// flags holds the debug switches, read once from XY_DEBUG_* variables.
var flags = struct {
	xml, yaml, eval, build, patch bool
}{
	xml:   boolEnv("XY_DEBUG_XML"),
	yaml:  boolEnv("XY_DEBUG_YAML"),
	eval:  boolEnv("XY_DEBUG_EVAL"),
	build: boolEnv("XY_DEBUG_BUILD"),
	patch: boolEnv("XY_DEBUG_PATCH"),
}

func boolEnv(v string) bool {
	b, _ := strconv.ParseBool(os.Getenv(v))
	return b
}

// XML logs xml parsing and lowering.
func XML() bool { return flags.xml }

// YAML logs yaml decoding and lowering.
func YAML() bool { return flags.yaml }

func Eval() bool { return flags.eval }

// Build logs build directory processing.
func Build() bool { return flags.build }

func Patch() bool { return flags.patch }
