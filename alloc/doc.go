// Package alloc materializes the storage blocks sized by layout results.
//
// Every instance gets one packed primitive byte region and one reference
// array, sized from the layout's instance aggregates; every class gets the
// static counterpart at preparation time. The two regions keep object
// pointers out of raw bytes entirely, so a collector scans only the
// reference arrays.
//
// Typed accessors take the *layout.Field resolved through the class
// registry and address storage at the field's storage index. Mismatched
// access (wrong kind, wrong partition) panics: a wrong offset read would
// silently return another field's bytes.
package alloc
