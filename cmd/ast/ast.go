package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

var exprTypes = []string{
	"Assign: name *Token, value expr",
	"Binary: left expr, operator *Token, right expr",
	"Grouping: expression expr",
	"Literal: value loxValue",
	"Unary: operator *Token, right expr",
	"Variable: name *Token",
}

var stmtTypes = []string{
	"Expr: expression expr",
	"Print: keyword *Token, expression expr",
	"Var: name *Token, initializer expr",
	"Block: stmts []stmt",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}
	var types []string
	switch os.Args[1] {
	case "Stmt":
		types = stmtTypes
	case "Expr":
		types = exprTypes
	default:
		fmt.Fprintf(os.Stderr, "Unknown node set: %s\n", os.Args[1])
		os.Exit(64)
	}
	out, err := generateAst(os.Args[1], types)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func generateAst(baseName string, types []string) (string, error) {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) (R, error)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		if len(typeDef) != 2 {
			return "", fmt.Errorf("invalid node definition %q", t)
		}
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	formatted, err := format.Source([]byte(out))
	if err != nil {
		return "", err
	}
	return string(formatted), nil
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
