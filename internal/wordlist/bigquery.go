package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQuerySource loads words from a BigQuery table with a STRING column
// named word and an optional scope column used as a filter.
type BigQuerySource struct {
	ProjectID string
	// Table is a fully qualified table name, e.g. "project.dataset.words".
	Table string
	// Scope restricts rows to a single scope value when set.
	Scope    string
	Location string
}

// Query returns the SQL issued by Words.
func (s BigQuerySource) Query() string {
	q := fmt.Sprintf("SELECT word FROM `%s`", s.Table)
	if s.Scope != "" {
		q += " WHERE scope = @scope"
	}
	return q
}

func (s BigQuerySource) Words(ctx context.Context) ([]string, error) {
	client, err := bigquery.NewClient(ctx, s.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(s.Query())
	if s.Scope != "" {
		q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: s.Scope}}
	}
	q.Location = s.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
