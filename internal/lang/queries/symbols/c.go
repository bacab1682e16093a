package symbols

// CQuery captures C symbol definitions. Storage-class (static) and
// exported-ness are resolved by the extractor by walking the matched
// definition node's children, not by the pattern itself.
const CQuery = `
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @function.name)
) @function.definition

(declaration
  declarator: (function_declarator
    declarator: (identifier) @function.name)
) @function.definition

(declaration
  declarator: (identifier) @variable.name
) @variable.definition

(struct_specifier
  name: (type_identifier) @struct.name
  body: (field_declaration_list)
) @struct.definition

(union_specifier
  name: (type_identifier) @union.name
  body: (field_declaration_list)
) @union.definition

(enum_specifier
  name: (type_identifier) @enum.name
  body: (enumerator_list)
) @enum.definition

(type_definition
  declarator: (type_identifier) @typedef.name
) @typedef.definition

(type_definition
  declarator: (function_declarator
    declarator: (type_identifier) @typedef.name)
) @typedef.definition

(preproc_def
  name: (identifier) @macro.name
) @macro.definition

(preproc_function_def
  name: (identifier) @macro.name
) @macro.definition
`
