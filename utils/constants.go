// File: utils/constants.go
package utils

import "time"

// SlotsCachePrefix is the prefix used for Redis availability cache keys.
const SlotsCachePrefix = "slots:"

// SlotsCacheTTL is the time-to-live for availability cache entries. Entries
// are also invalidated eagerly whenever a booking or closure changes the date.
const SlotsCacheTTL = 5 * time.Minute
