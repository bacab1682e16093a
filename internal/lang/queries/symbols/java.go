package symbols

// JavaQuery captures Java symbol definitions. Visibility (public vs.
// package-private) is resolved by the extractor inspecting modifiers.
const JavaQuery = `
(class_declaration
  name: (identifier) @class.name
) @class.definition

(record_declaration
  name: (identifier) @class.name
) @class.definition

(interface_declaration
  name: (identifier) @interface.name
) @interface.definition

(annotation_type_declaration
  name: (identifier) @interface.name
) @interface.definition

(enum_declaration
  name: (identifier) @enum.name
) @enum.definition

(method_declaration
  name: (identifier) @method.name
) @method.definition

(constructor_declaration
  name: (identifier) @method.name
) @method.definition

(field_declaration
  declarator: (variable_declarator
    name: (identifier) @variable.name)
) @variable.definition
`
