package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// Query runs the jq expression expr over the JSON form of doc, usually a
// Summary or a []Summary, and returns every result.
func Query(expr string, doc any) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("report: invalid jq expression %q: %w", expr, err)
	}

	// gojq only accepts plain maps, slices and scalars
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	var results []any
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return results, fmt.Errorf("report: jq %q: %w", expr, err)
		}
		results = append(results, v)
	}

	return results, nil
}

// WriteQuery writes each result of Query to w as one line of compact JSON.
func WriteQuery(w io.Writer, expr string, doc any) error {
	results, err := Query(expr, doc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return nil
}
