package symbols

// RustQuery captures Rust symbol definitions. Whether a `function_item`
// is a free function or a method (inside impl_item/trait_item) is decided
// by the extractor walking up from the match, per the kind-derivation
// table — not expressible as a single flat pattern without duplicating
// the whole function shape per context.
const RustQuery = `
(function_item
  name: (identifier) @function.name
) @function.definition

(struct_item
  name: (type_identifier) @struct.name
) @struct.definition

(enum_item
  name: (type_identifier) @enum.name
) @enum.definition

(trait_item
  name: (type_identifier) @trait.name
) @trait.definition

(type_item
  name: (type_identifier) @type_alias.name
) @type_alias.definition

(const_item
  name: (identifier) @constant.name
) @constant.definition

(static_item
  name: (identifier) @variable.name
) @variable.definition

(union_item
  name: (type_identifier) @union.name
) @union.definition

(mod_item
  name: (identifier) @module.name
) @module.definition

(macro_definition
  name: (identifier) @macro.name
) @macro.definition
`
