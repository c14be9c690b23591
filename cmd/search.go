package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/yakov-partners/know2-cli/internal/application"
	"github.com/yakov-partners/know2-cli/internal/domain"
)

func newSearchCmd(app *app) *cobra.Command {
	var opts sessionOptions
	var index string
	var query string
	var skip int
	var take int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one query against the document/expert index",
		Long:  "search sends a structured query to the catalog's search endpoint as-is. The query is a JSON object, given inline or as @path to read from a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedQuery, err := parseQueryArg(query)
			if err != nil {
				return err
			}

			session, err := app.openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer session.Close()

			service := application.NewSearchService(session, app.log)
			result, err := service.Search(cmd.Context(), domain.SearchRequest{
				Query: parsedQuery,
				Index: index,
				Skip:  skip,
				Take:  take,
			})
			if err != nil {
				return err
			}

			return writeSearchResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Connection profile (default: active profile)")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Catalog username (overrides profile)")
	cmd.Flags().BoolVar(&opts.Admin, "admin", false, "Use the service credential")
	cmd.Flags().StringVar(&index, "index", "", "Target index (e.g. experts, documents)")
	cmd.Flags().StringVar(&query, "query", "", "Query JSON object, or @path to a file")
	cmd.Flags().IntVar(&skip, "skip", 0, "Hits to skip")
	cmd.Flags().IntVar(&take, "take", 10, "Hits to return")

	_ = cmd.MarkFlagRequired("index")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func parseQueryArg(arg string) (map[string]any, error) {
	raw := strings.TrimSpace(arg)
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, fmt.Errorf("read query file: %w", err)
		}
		raw = string(data)
	}

	var query map[string]any
	if err := json.Unmarshal([]byte(raw), &query); err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}

	return query, nil
}

func writeSearchResult(cmd *cobra.Command, result domain.SearchResult) error {
	type hitOutput struct {
		ID     string         `json:"id"`
		Index  string         `json:"index"`
		Score  float64        `json:"score"`
		Source map[string]any `json:"source"`
	}

	output := struct {
		Total int         `json:"total"`
		Hits  []hitOutput `json:"hits"`
	}{Total: result.Total, Hits: make([]hitOutput, 0, len(result.Hits))}

	for _, hit := range result.Hits {
		output.Hits = append(output.Hits, hitOutput{
			ID:     hit.ID,
			Index:  hit.Index,
			Score:  hit.Score,
			Source: hit.Source,
		})
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode search result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
