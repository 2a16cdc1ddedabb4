package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/signadot/tony-format/xy/ir"
)

func TestLogfNode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()

	node := ir.FromKeyVals([]ir.KeyVal{ir.KV("a", ir.FromInt(1))})
	Logf("node %v %d\n", node, 3)
	got := buf.String()
	if !strings.HasPrefix(got, "node {") || !strings.Contains(got, `"a": 1`) || !strings.HasSuffix(got, " 3\n") {
		t.Errorf("unexpected log output %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("XY_TEST_FLAG", "1")
	if !boolEnv("XY_TEST_FLAG") {
		t.Error("expected flag set")
	}
	t.Setenv("XY_TEST_FLAG", "nope")
	if boolEnv("XY_TEST_FLAG") {
		t.Error("expected unparseable flag to be off")
	}
	if boolEnv("XY_TEST_FLAG_UNSET") {
		t.Error("expected unset flag to be off")
	}
}
