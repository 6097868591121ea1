// Package dedupe provides the shared singleflight group used to
// deduplicate concurrent aggregate-simulation requests. Using a
// centralized singleflight.Group ensures only one simulation job runs for
// a given request key while other callers wait for the same result.
package dedupe

import "golang.org/x/sync/singleflight"

// SimulationGroup deduplicates aggregate-simulation requests keyed by the
// canonical JSON encoding of the request.
var SimulationGroup singleflight.Group
