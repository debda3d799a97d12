// Package session holds the in-memory per-user session store.
//
// The store is the single source of truth the conversation state
// machine reads and writes. State is memory-resident and ephemeral:
// nothing survives a process restart.
//
//	store := session.NewStore()
//	sess := store.Start(userID, chatID, audioPath, "song.ogg")
//	// ... conversation mutates sess ...
//	store.Finalize(userID) // purge + remember completion
package session
