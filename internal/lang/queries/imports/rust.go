package imports

// RustQuery captures `use` declarations. Grouped forms
// (`use a::b::{c, d as e}`), nested groups, aliasing, and glob imports
// are all expanded by the extractor walking the use_declaration's
// `argument`, since tree-sitter-rust nests `scoped_use_list` arbitrarily
// deep and a flat pattern can't express that recursion.
const RustQuery = `
(use_declaration) @use.declaration
`
