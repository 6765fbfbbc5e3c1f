package question

// packSchema is the JSON Schema every template pack must satisfy.
// Validation runs once at load, before unmarshalling.
const packSchema = `{
  "type": "object",
  "required": ["templates"],
  "properties": {
    "templates": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "tier", "kind", "operation", "text", "minValue", "maxValue"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "tier": {"enum": ["easy", "medium", "hard"]},
          "kind": {"enum": ["equation", "word-problem"]},
          "operation": {"enum": ["addition", "subtraction"]},
          "text": {"type": "string", "minLength": 1},
          "minValue": {"type": "integer", "minimum": 0},
          "maxValue": {"type": "integer", "minimum": 0},
          "hint": {
            "type": "object",
            "properties": {
              "type": {"enum": ["counting-objects", "number-line"]}
            },
            "additionalProperties": false
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
