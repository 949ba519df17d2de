package programs

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the programs file.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	return reflector.Reflect(&Document{})
}
