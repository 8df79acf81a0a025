package storage

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Persisted documents are validated before loading so a corrupted or
// hand-edited file degrades to "start empty" instead of poisoning the
// in-memory state.

const clientsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id_cliente", "nombre", "membresia_tipo", "activo"],
    "properties": {
      "id_cliente": {"type": "string", "minLength": 1},
      "nombre": {"type": "string", "minLength": 1},
      "correo": {"type": "string"},
      "membresia_tipo": {"type": "string"},
      "activo": {"type": "boolean"},
      "entradas_usadas": {"type": "integer", "minimum": 0},
      "deuda_renovacion": {"type": "number", "minimum": 0},
      "fecha_ultimo_uso": {"type": "string"},
      "compras": {
        "type": "array",
        "items": {
          "type": "object",
          "properties": {
            "fecha": {"type": "string"},
            "producto": {"type": "string"},
            "cantidad": {"type": "integer"},
            "precio_unitario": {"type": "number"},
            "descuento": {"type": "number"},
            "total": {"type": "number"}
          }
        }
      }
    }
  }
}`

const productsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id_producto", "nombre", "precio", "stock"],
    "properties": {
      "id_producto": {"type": "string", "minLength": 1},
      "nombre": {"type": "string", "minLength": 1},
      "precio": {"type": "number", "minimum": 0},
      "stock": {"type": "integer", "minimum": 0}
    }
  }
}`

func validateDocument(schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("document failed validation: %s", first.String())
	}
	return nil
}

func validateClientsDocument(data []byte) error {
	return validateDocument(clientsSchema, data)
}

func validateProductsDocument(data []byte) error {
	return validateDocument(productsSchema, data)
}
