package symbols

// CppQuery extends the C bundle with class and namespace definitions.
const CppQuery = `
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @function.name)
) @function.definition

(function_definition
  declarator: (function_declarator
    declarator: (field_identifier) @method.name)
) @method.definition

(declaration
  declarator: (function_declarator
    declarator: (identifier) @function.name)
) @function.definition

(declaration
  declarator: (identifier) @variable.name
) @variable.definition

(class_specifier
  name: (type_identifier) @class.name
  body: (field_declaration_list)
) @class.definition

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

(namespace_definition
  name: (namespace_identifier) @namespace.name
) @namespace.definition

(type_definition
  declarator: (type_identifier) @typedef.name
) @typedef.definition

(preproc_def
  name: (identifier) @macro.name
) @macro.definition

(preproc_function_def
  name: (identifier) @macro.name
) @macro.definition
`
