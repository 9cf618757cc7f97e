// Package office abstracts the Office host application used to drive VBA
// module import and export.
//
// Host automation (COM on Windows) is a platform-specific side channel
// that cannot be reproduced cross-platform, so this package only defines
// the capability surface the sync engine needs (open a document, list
// its VBA components, export/import/remove a component, save, close)
// plus a provider registry where a platform build can plug in a concrete
// implementation. Everything else in the repository stays portable and
// testable without any Office installation.
package office
