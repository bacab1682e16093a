package symbols

// CSharpQuery captures C# symbol definitions. Access-modifier inspection
// (public/internal/private/protected) happens in the extractor.
const CSharpQuery = `
(class_declaration
  name: (identifier) @class.name
) @class.definition

(record_declaration
  name: (identifier) @class.name
) @class.definition

(struct_declaration
  name: (identifier) @struct.name
) @struct.definition

(interface_declaration
  name: (identifier) @interface.name
) @interface.definition

(enum_declaration
  name: (identifier) @enum.name
) @enum.definition

(namespace_declaration
  name: (identifier) @namespace.name
) @namespace.definition

(file_scoped_namespace_declaration
  name: (identifier) @namespace.name
) @namespace.definition

(method_declaration
  name: (identifier) @method.name
) @method.definition

(constructor_declaration
  name: (identifier) @method.name
) @method.definition

(delegate_declaration
  name: (identifier) @type_alias.name
) @type_alias.definition

(property_declaration
  name: (identifier) @property.name
) @property.definition

(field_declaration
  (variable_declaration
    (variable_declarator
      (identifier) @variable.name))
) @variable.definition
`
