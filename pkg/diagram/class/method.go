package class

import "strings"

// Argument is a typed parameter of a [Method].
type Argument struct {
	name         string
	argumentType string
}

// NewArgument returns an argument of the given type.
func NewArgument(argumentType, name string) Argument {
	return Argument{name: name, argumentType: argumentType}
}

// String renders the argument as "name: type".
func (a Argument) String() string {
	return a.name + ": " + a.argumentType
}

// Method is an operation of a class. Methods are plain values: build
// one with [NewMethod] and chain [Method.Visibility] to change the
// default public access.
type Method struct {
	name       string
	arguments  []Argument
	returnType string
	visibility Visibility
}

// NewMethod returns a public method with the given return type and
// arguments. An empty return type renders as "void".
func NewMethod(returnType, name string, arguments ...Argument) Method {
	return Method{name: name, arguments: arguments, returnType: returnType}
}

// Visibility returns a copy of the method with the given access level.
func (m Method) Visibility(visibility Visibility) Method {
	m.visibility = visibility
	return m
}

// String renders the method line, e.g. "+poll(timeout: int): bool".
// Unlike attributes, no space follows the visibility marker.
func (m Method) String() string {
	var sb strings.Builder
	sb.WriteString(m.visibility.String())
	sb.WriteString(m.name)
	sb.WriteString("(")
	for i, argument := range m.arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(argument.String())
	}
	sb.WriteString("): ")
	if m.returnType == "" {
		sb.WriteString("void")
	} else {
		sb.WriteString(m.returnType)
	}
	return sb.String()
}
