package symbols

// PHPQuery captures PHP symbol definitions. Visibility defaults to
// exported when no visibility_modifier child is present, per PHP's own
// default — resolved by the extractor.
const PHPQuery = `
(function_definition
  name: (name) @function.name
) @function.definition

(class_declaration
  name: (name) @class.name
) @class.definition

(interface_declaration
  name: (name) @interface.name
) @interface.definition

(trait_declaration
  name: (name) @trait.name
) @trait.definition

(enum_declaration
  name: (name) @enum.name
) @enum.definition

(method_declaration
  name: (name) @method.name
) @method.definition

(property_declaration
  (property_element
    (variable_name) @property.name)
) @property.definition

(const_declaration
  (const_element
    (name) @constant.name)
) @constant.definition

(namespace_definition
  name: (namespace_name) @namespace.name
) @namespace.definition
`
