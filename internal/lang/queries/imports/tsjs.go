package imports

// TSJSQuery captures the outer node of every ES import/export form plus
// `import(...)` and `require(...)` call expressions. Binding expansion
// (grouped named imports, default/namespace/star forms, type-only
// detection) is ad-hoc traversal over the captured node in the
// extractor, not expressed here — the shapes nest too variably for a
// flat declarative pattern per binding.
const TSJSQuery = `
(import_statement) @import.statement

(export_statement
  source: (_)
) @export.statement

(call_expression
  function: (import)
) @dynamic.call

(call_expression
  function: (identifier) @require.callee
  (#eq? @require.callee "require")
) @require.call
`
