package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// TaxonomyFetcher pulls the instrument taxonomy from a remote schema URL.
// The schema is an opaque external data source; a fetch or parse failure
// yields an empty value list.
type TaxonomyFetcher struct {
	URL    string
	Client *http.Client
}

func NewTaxonomyFetcher(url string) *TaxonomyFetcher {
	return &TaxonomyFetcher{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *TaxonomyFetcher) Values(ctx context.Context) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		log.Printf("failed loading taxonomy: %v", err)
		return nil
	}
	res, err := t.Client.Do(req)
	if err != nil {
		log.Printf("failed loading taxonomy: %v", err)
		return nil
	}
	defer res.Body.Close()

	var schema struct {
		Instruments struct {
			Value struct {
				Enum []string `json:"enum"`
			} `json:"value"`
		} `json:"tag_medleydb_instruments"`
	}
	if err := json.NewDecoder(res.Body).Decode(&schema); err != nil {
		log.Printf("failed loading taxonomy: %v", err)
		return nil
	}
	return schema.Instruments.Value.Enum
}

// TaxonomyHandler returns the taxonomy values as a JSON array; an empty
// taxonomy reports 400 so clients can tell "no data" from "no labels".
func TaxonomyHandler(tax *TaxonomyFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", sourceURL)

		values := tax.Values(r.Context())
		status := http.StatusOK
		if len(values) == 0 {
			status = http.StatusBadRequest
			values = []string{}
		}
		writeJSON(w, status, values)
	}
}
