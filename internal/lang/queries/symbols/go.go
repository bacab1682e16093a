package symbols

// GoQuery captures Go symbol definitions. Whether a type_spec is a
// struct, an interface, or a plain type_alias, and whether the name is
// exported (uppercase first rune), are both resolved by the extractor.
const GoQuery = `
(function_declaration
  name: (identifier) @function.name
) @function.definition

(method_declaration
  name: (field_identifier) @method.name
) @method.definition

(type_spec
  name: (type_identifier) @type.name
  type: (struct_type)
) @type.definition

(type_spec
  name: (type_identifier) @type.name
  type: (interface_type)
) @type.definition

(type_spec
  name: (type_identifier) @type.name
) @type.definition

(const_spec
  name: (identifier) @constant.name
) @constant.definition

(var_spec
  name: (identifier) @variable.name
) @variable.definition
`
