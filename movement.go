package praticagem

import "context"

// Movement represents one scheduled vessel-movement event extracted from
// the pilotage table. All fields are plain text as published by the source;
// a field the source omitted degrades to the empty string. Values are never
// mutated after extraction.
//
// The JSON field names preserve the wire format consumers of the API
// already depend on.
type Movement struct {
	Date     string `json:"data"`     // e.g. "23/02/2026"
	Time     string `json:"horario"`  // e.g. "08:00"
	Maneuver string `json:"manobra"`  // e.g. "Atracação"
	Berth    string `json:"berco"`    // e.g. "201"
	Vessel   string `json:"navio"`    // e.g. "MSC MARINA"
	Status   string `json:"situacao"` // e.g. "Confirmado"
}

// Fetcher retrieves the raw HTML of the movement page.
type Fetcher interface {
	// Fetch performs a blocking GET against the configured URL and returns
	// the response body. Transient failures are retried internally up to the
	// implementation's attempt limit; the context controls cancellation.
	//
	// Returns EINVALID if the configured URL is malformed (never retried)
	// and EUNAVAILABLE once all attempts are exhausted.
	Fetch(ctx context.Context) (string, error)
}

// Extractor extracts movement records from the fetched HTML.
type Extractor interface {
	// Extract locates the movement table and returns its rows in document
	// order. A located table with no data rows yields an empty slice, not
	// an error.
	//
	// Returns ESTRUCTURE if no table carries the six required columns or
	// a required column cannot be resolved from the header row.
	Extract(html string) ([]Movement, error)
}

// MovementService provides the scrape pipeline consumed by the API layer.
type MovementService interface {
	// Movements fetches the source page and extracts the current list of
	// scheduled movements.
	Movements(ctx context.Context) ([]Movement, error)
}
