package evaluator

import (
	"github.com/jdaroesti/lpp-go/object"
)

const (
	unsupportedArgumentType = "argumento para longitud sin soporte, se recibió %s"
	wrongNumberOfArgs       = "número incorrecto de argumentos para longitud, se recibieron %d, se requieren %d"
)

// builtins is consulted by evalIdentifier only after the environment chain
// comes up empty, so a user binding named `longitud` shadows the built-in.
var builtins = map[string]*object.Builtin{
	"longitud": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError(wrongNumberOfArgs, len(args), 1)
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				return newError(unsupportedArgumentType, args[0].Type())
			}
		},
	},
}
