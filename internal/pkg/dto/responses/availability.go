package responses

import "github.com/goccy/go-json"

// AvailabilityResult keeps the settings payload raw; the workflow only
// checks that one exists.
type AvailabilityResult = APIResponse[json.RawMessage]
