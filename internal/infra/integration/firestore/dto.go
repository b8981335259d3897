package firestore

// Minimal slice of the Firestore REST document model. Integer values travel
// as strings on the wire; that is the API's own JSON mapping, not ours.

type Value struct {
	StringValue  *string     `json:"stringValue,omitempty"`
	IntegerValue *string     `json:"integerValue,omitempty"`
	ArrayValue   *ArrayValue `json:"arrayValue,omitempty"`
	MapValue     *MapValue   `json:"mapValue,omitempty"`
}

type ArrayValue struct {
	Values []Value `json:"values,omitempty"`
}

type MapValue struct {
	Fields map[string]Value `json:"fields,omitempty"`
}

type Document struct {
	Name   string           `json:"name,omitempty"`
	Fields map[string]Value `json:"fields"`
}

type listResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

func strVal(s string) Value { return Value{StringValue: &s} }
func intVal(s string) Value { return Value{IntegerValue: &s} }

func (v Value) str() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

func (v Value) intStr() string {
	if v.IntegerValue != nil {
		return *v.IntegerValue
	}
	return ""
}
