package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsonapi/pkg/doc"
)

// newFlattenCmd creates the flatten command: denormalize a document into
// one plain JSON value, resolving linkage against the included set.
func newFlattenCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "flatten <file>",
		Short: "Denormalize a JSON:API document into a plain JSON value",
		Long: `Denormalize a JSON:API document into a plain JSON value.

Each resource becomes an object holding its id, its attributes, and its
relationships recursively flattened. Linkage that resolves against the
document's included set is expanded in place; dangling linkage degrades
to the bare id string. Use "-" to read from stdin, or an http(s) URL to
fetch the document from a remote endpoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			d, err := doc.Decode[doc.Object](data)
			if err != nil {
				return err
			}
			flat, err := d.Flatten()
			if err != nil {
				return err
			}

			encoded, err := json.Marshal(flat)
			if err != nil {
				return err
			}
			if !compact {
				var pretty bytes.Buffer
				if err := json.Indent(&pretty, encoded, "", "  "); err != nil {
					return err
				}
				encoded = pretty.Bytes()
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON")
	return cmd
}
