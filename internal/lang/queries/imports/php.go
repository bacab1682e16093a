package imports

// PHPQuery captures `use` import declarations (grouped-use expansion
// and the prefix-concatenation rule are applied in the extractor) plus
// `require`/`include` family expressions.
const PHPQuery = `
(namespace_use_declaration) @use.declaration

(require_expression) @require.expression

(require_once_expression) @require.expression

(include_expression) @include.expression

(include_once_expression) @include.expression
`
