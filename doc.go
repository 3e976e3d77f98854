// Package bloqs embeds script and style assets into self-contained HTML
// documents, each asset at most once and in a deterministic order.
//
// # Quick Start
//
// Create one Registry per document, register what the document's blocks
// need, and flush it into the output:
//
//	reg, err := bloqs.NewRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg.Register(bloqs.MustScript(bloqs.ScriptDef{Name: "plotly"}))
//	reg.Register(bloqs.MustStyle(bloqs.StyleDef{Name: "bloqs"}))
//
//	if err := reg.Flush(w); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resources
//
// A Resource is identified by its Key, the pair of kind and name. Registering
// a resource whose key is already present is a no-op, so independent blocks
// can declare the same dependency freely; the first registration fixes its
// position. Inline resources without a name are identified by a digest of
// their payload.
//
// Script payloads are compressed by default: the source is raw-deflated,
// base64 encoded and wrapped as
//
//	blocksEval(RawDeflate.inflate(atob("...")));
//
// The jsinflate bootstrap script provides RawDeflate.inflate and block-core
// provides blocksEval. Both are seeded first in every Registry, uncompressed.
// Named scripts are also wrapped in a load guard so their body runs once even
// if a document embeds it twice.
//
// Styles are embedded verbatim as <style type="text/css"> elements.
//
// # Assets
//
// Named resources are read from {base}/{name}.js or {base}/{name}.css. The
// base is the embedded asset set unless WithAssetPath or WithAssetLoader is
// used. A missing file fails materialization with ErrAssetNotFound.
//
// # Concurrency
//
// Registry and Tracker are not safe for concurrent use. Build each document
// with its own Registry; Script and Style values may be shared between
// registries, and cache their rendered payload on first use.
package bloqs
