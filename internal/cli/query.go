package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsonapi/pkg/query"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// newQueryCmd creates the query command: decode a query string, explain
// its components, and optionally print the canonical re-encoding.
func newQueryCmd() *cobra.Command {
	var encode bool

	cmd := &cobra.Command{
		Use:   "query <querystring>",
		Short: "Decode a JSON:API query string and explain its components",
		Long: `Decode a JSON:API query string and explain its components.

The query string may be percent-encoded or raw. Decoding validates every
member name and path; the first invalid component aborts.

Examples:
  jsonapi query 'include=author,comments.author&fields[articles]=title'
  jsonapi query --encode 'page[number]=0&sort=-createdAt'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			q, err := query.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("decoded %d fieldsets, %d filters, %d includes, %d sorts",
				q.Fields.Len(), q.Filter.Len(), q.Include.Len(), q.Sort.Len())

			out := cmd.OutOrStdout()
			if encode {
				fmt.Fprintln(out, q.String())
				return nil
			}

			fmt.Fprintln(out, styleTitle.Render("Query"))
			for kind, set := range q.Fields.All() {
				names := make([]string, 0, set.Len())
				for _, name := range set.Items() {
					names = append(names, name.String())
				}
				printField(out, "fields", fmt.Sprintf("%s: %s", kind, strings.Join(names, ", ")))
			}
			for path, v := range q.Filter.All() {
				printField(out, "filter", fmt.Sprintf("%s = %s", path, value.Text(v)))
			}
			for _, path := range q.Include.Items() {
				printField(out, "include", path.String())
			}
			if q.Page != nil {
				size := "none"
				if q.Page.Size > 0 {
					size = fmt.Sprintf("%d", q.Page.Size)
				}
				printField(out, "page", fmt.Sprintf("number %d, size %s", q.Page.Number, size))
			}
			for _, s := range q.Sort.Items() {
				printField(out, "sort", fmt.Sprintf("%s (%s)", s.Field, s.Direction))
			}

			fmt.Fprintln(out, styleDim.Render("  canonical: "+canonicalText(q)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&encode, "encode", false, "print only the canonical re-encoding")
	return cmd
}

func canonicalText(q *query.Query) string {
	if s := q.String(); s != "" {
		return s
	}
	return "(empty)"
}
