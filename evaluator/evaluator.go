/*
Package evaluator walks an *ast.Program and produces object.Object values.

Eval is the single dispatcher every node passes through: it type-switches
on the concrete ast.Node and routes to the matching evalXxx helper. The two
node kinds that can hold a sequence of statements, Program and Block, are
deliberately evaluated differently — Program unwraps a returned
*object.Return at the top so the outermost result is the plain value, while
Block leaves it wrapped so a regresa nested inside an si/si_no keeps
propagating past the block boundary up to the nearest function call or the
program root. An *object.Error short-circuits both loops immediately.
*/
package evaluator

import (
	"fmt"

	"github.com/jdaroesti/lpp-go/ast"
	"github.com/jdaroesti/lpp-go/object"
)

var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
	NULL  = &object.Null{}
)

// Eval dispatches on the concrete type of node, recursing into child
// expressions/statements as needed, and returns the object.Object that
// node evaluates to under env.
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// Root and blocks.
	case *ast.Program:
		return evalProgram(node, env)
	case *ast.Block:
		return evalBlock(node, env)

	// Statements.
	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)
	case *ast.LetStatement:
		return evalLetStatement(node, env)
	case *ast.ReturnStatement:
		return evalReturnStatement(node, env)

	// Literals.
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)

	// Expressions.
	case *ast.Prefix:
		return evalPrefixExpression(node, env)
	case *ast.Infix:
		return evalInfixExpression(node, env)
	case *ast.If:
		return evalIfExpression(node, env)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.Call:
		return evalCallExpression(node, env)
	}

	return nil
}

// evalProgram evaluates every top-level statement in order. A regresa at
// this level is the program's final value, so its Return wrapper is
// stripped here; an Error halts evaluation immediately.
func evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range program.Statements {
		result = Eval(statement, env)

		switch result := result.(type) {
		case *object.Return:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlock evaluates the statements of a si/si_no branch or a function
// body. Unlike evalProgram it does NOT unwrap a Return — it must keep
// propagating upward unchanged so an outer block (or evalProgram, or a
// function call) sees that a regresa happened and stops there too.
func evalBlock(block *ast.Block, env *object.Environment) object.Object {
	result := object.Object(NULL)

	for _, statement := range block.Statements {
		result = Eval(statement, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		} else {
			result = NULL
		}
	}

	return result
}

func evalLetStatement(node *ast.LetStatement, env *object.Environment) object.Object {
	val := Eval(node.Value, env)
	if isError(val) {
		return val
	}
	env.Set(node.Name.Value, val)
	return nil
}

func evalReturnStatement(node *ast.ReturnStatement, env *object.Environment) object.Object {
	val := Eval(node.ReturnValue, env)
	if isError(val) {
		return val
	}
	return &object.Return{Value: val}
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := builtins[node.Value]; ok {
		return builtin
	}
	return newError("Identificador no encontrado: " + node.Value)
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}
