// Package catalog stores the client-announced dynamic component catalog.
//
// A client announces its rendering capabilities by sending a dynamic
// catalog ahead of generation requests. The service keeps exactly one
// catalog at a time: each announcement replaces the previous one, and
// the stored catalog lives for the lifetime of the process.
//
// Key Features:
//   - Single-slot semantics: last announcement wins
//   - Snapshot reads: callers get an immutable copy, never shared bytes
//   - Announcement identity: each Put is tagged with a fresh UUID
//   - Safe for concurrent announcers and readers
//
// Example Usage:
//
//	store := catalog.NewMemory()
//	snap := store.Put(raw)
//	fmt.Println(snap.AnnouncementID)
//
//	if current, ok := store.Get(); ok {
//	    prompt := builder.UIGeneration(current.Catalog, "", instructions)
//	    _ = prompt
//	}
package catalog
