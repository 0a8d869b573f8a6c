package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/httputil"
)

// readInput reads a document from a file, from stdin when path is "-", or
// from a remote endpoint when path is an http(s) URL.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	switch {
	case path == "-":
		return io.ReadAll(cmd.InOrStdin())
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		var f httputil.Fetcher
		return f.Fetch(cmd.Context(), path)
	default:
		return os.ReadFile(path)
	}
}

// newCheckCmd creates the check command: decode a document file and
// report its shape or the first structural problem found.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a JSON:API document",
		Long: `Validate a JSON:API document.

The document is fully decoded: member names, resource identities,
relationship linkage, links, and the jsonapi version member are all
checked. Use "-" to read from stdin, or an http(s) URL to fetch the
document from a remote endpoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			logger.Debugf("read %d bytes from %s", len(data), args[0])

			d, err := doc.Decode[doc.Object](data)
			if err != nil {
				printFailure(out, "invalid document: %s", errors.UserMessage(err))
				if code := errors.GetCode(err); code != "" {
					fmt.Fprintln(out, styleDim.Render("  code: "+string(code)))
				}
				return err
			}

			printSuccess(out, "valid JSON:API document")
			printField(out, "shape", describeShape(d))
			printField(out, "included", fmt.Sprintf("%d resource(s)", d.Included.Len()))
			if d.Links.Len() > 0 {
				printField(out, "links", fmt.Sprintf("%d link(s)", d.Links.Len()))
			}
			return nil
		},
	}
	return cmd
}

func describeShape(d *doc.Document[doc.Object]) string {
	if d.IsErr() {
		return fmt.Sprintf("error document with %d error(s)", len(d.Errors))
	}
	if d.Data.IsMany() {
		return fmt.Sprintf("collection of %d resource(s)", len(d.Data.Many()))
	}
	if obj, ok := d.Data.One(); ok {
		return fmt.Sprintf("single %s resource", obj.Kind)
	}
	return "null member"
}
