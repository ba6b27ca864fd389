// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The core stays pure: no internal packages, no third-party imports, no I/O
// beyond what io.Writer hands it. The CLI layering is one-directional.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	const module = "github.com/sebschmi/fasta-cleaner"
	bans := map[string][]string{
		module + "/core/fastaclean": {
			module + "/internal/", "github.com/", "gopkg.in/",
		},
		module + "/internal/cli": {
			module + "/internal/app", module + "/internal/config",
		},
		module + "/internal/fastaio": {
			module + "/internal/app", module + "/internal/cli",
		},
	}

	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if imp == b || strings.HasPrefix(imp, b) {
					t.Errorf("%s imports %s (banned prefix %s)", p.ImportPath, imp, b)
				}
			}
		}
	}
}
