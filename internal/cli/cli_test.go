package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/jsonapi/pkg/doc"
)

// runCommand executes a freshly built command with the given args and
// returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newQueryCmd()
	switch args[0] {
	case "check":
		cmd = newCheckCmd()
	case "flatten":
		cmd = newFlattenCmd()
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args[1:])
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommandEncode(t *testing.T) {
	out, err := runCommand(t, "query", "--encode", "page[number]=0&sort=-createdAt")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	got := strings.TrimSpace(out)
	want := "sort=-created-at"
	if got != want {
		t.Errorf("canonical encoding = %q, want %q", got, want)
	}
}

func TestQueryCommandExplains(t *testing.T) {
	out, err := runCommand(t, "query", "include=author&fields[articles]=title&sort=-title")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	for _, want := range []string{"include", "author", "fields", "articles: title", "sort", "title (desc)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQueryCommandRejectsInvalid(t *testing.T) {
	if _, err := runCommand(t, "query", "fields=title"); err == nil {
		t.Error("expected error for fields without a type argument")
	}
}

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckCommandValid(t *testing.T) {
	path := writeTempDoc(t, `{"data":{"id":"1","type":"articles","attributes":{"title":"Hi"}},"jsonapi":{"version":"1.0"}}`)
	out, err := runCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "valid JSON:API document") {
		t.Errorf("missing success line:\n%s", out)
	}
	if !strings.Contains(out, "single articles resource") {
		t.Errorf("missing shape line:\n%s", out)
	}
}

func TestCheckCommandInvalid(t *testing.T) {
	path := writeTempDoc(t, `{"data":{"type":"articles"}}`)
	out, err := runCommand(t, "check", path)
	if err == nil {
		t.Fatal("expected error for resource without id")
	}
	if !strings.Contains(out, "invalid document") {
		t.Errorf("missing failure line:\n%s", out)
	}
}

func TestFlattenCommand(t *testing.T) {
	path := writeTempDoc(t, `{"data":{"id":"1","type":"articles","attributes":{"title":"Hi"},"relationships":{"author":{"data":{"id":"9","type":"users"}}}},"included":[{"attributes":{"name":"Dan"},"id":"9","type":"users"}]}`)
	out, err := runCommand(t, "flatten", "--compact", path)
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	got := strings.TrimSpace(out)
	want := `{"id":"1","title":"Hi","author":{"id":"9","name":"Dan"}}`
	if got != want {
		t.Errorf("flattened = %s, want %s", got, want)
	}
}

func TestFlattenCommandDanglingLinkage(t *testing.T) {
	path := writeTempDoc(t, `{"data":{"id":"1","type":"articles","relationships":{"author":{"data":{"id":"9","type":"users"}}}}}`)
	out, err := runCommand(t, "flatten", "--compact", path)
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	got := strings.TrimSpace(out)
	want := `{"id":"1","author":"9"}`
	if got != want {
		t.Errorf("flattened = %s, want %s", got, want)
	}
}

func TestDescribeShape(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single", `{"data":{"id":"1","type":"articles"}}`, "single articles resource"},
		{"collection", `{"data":[{"id":"1","type":"articles"}]}`, "collection of 1 resource(s)"},
		{"null", `{"data":null}`, "null member"},
		{"errors", `{"errors":[{"status":"404"}]}`, "error document with 1 error(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := doc.Decode[doc.Object]([]byte(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			if got := describeShape(d); got != tt.want {
				t.Errorf("describeShape = %q, want %q", got, tt.want)
			}
		})
	}
}
