// Package services implements the driving port interfaces.
// Services contain the conversion logic and orchestrate
// calls to driven ports (adapters).
//
// Components:
//   - NormaliseURL: URL canonicalisation
//   - TextNormaliser: stop-word and vocabulary filtering followed by stemming
//   - SplitResponse: HTTP header/body split of response records
//   - Emitter: writes index entries to the output sink
//   - CountValidator: compares emitted counts with the manifest
//   - Converter: the manifest-driven conversion run
//   - RunHistory: read access to recorded runs
//
// Services are pure Go with no CGO.
package services
