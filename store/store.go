// Package store persists the lead collection under one fixed key, mirroring
// the single browser-storage slot the original site used. Failures are
// best-effort: reads fall back to an empty collection and writes are logged,
// never surfaced to the caller.
package store

import "github.com/Eyob-T295/summit-connect/model"

// Key is the fixed name the collection is stored under.
const Key = "summit_leads"

// Store is the persistence port for the lead collection.
type Store interface {
	// Load reads the full collection. A missing key or a parse failure
	// yields an empty collection, never an error.
	Load() []model.LeadRecord

	// Save overwrites the full collection. Write failures are logged and
	// swallowed; the in-memory state the caller holds stays authoritative.
	Save(leads []model.LeadRecord)

	// Clear removes the key entirely.
	Clear()

	// Subscribe registers fn to run when a different writer changes the
	// stored collection. Writes made through this store do not fire fn.
	// The returned func cancels the subscription.
	Subscribe(fn func()) (cancel func())
}
