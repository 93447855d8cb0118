// Package json encodes attribute values in the store's wire JSON shape:
// {"S":...}, {"N":"7"}, {"BOOL":true}, {"NULL":true}, {"B":"base64"},
// {"SS":[...]}, {"NS":[...]}, {"BS":[...]}, {"L":[...]}, {"M":{...}}.
package json

import (
	"encoding/base64"
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/viant/attrly"
)

// Marshal encodes an attribute value as wire JSON.
func Marshal(value *attrly.AttributeValue) ([]byte, error) {
	if value == nil {
		return nil, &attrly.FormatError{Reason: "attribute value was nil"}
	}
	return gojay.MarshalJSONObject(&valueObject{value: value})
}

// Unmarshal decodes wire JSON into an attribute value; payloads are
// re-validated through the variant factories, so malformed number text fails
// with FormatError.
func Unmarshal(data []byte) (*attrly.AttributeValue, error) {
	node := &valueNode{}
	if err := gojay.UnmarshalJSONObject(data, node); err != nil {
		return nil, err
	}
	if node.value == nil {
		return nil, &attrly.FormatError{Text: string(data), Reason: "missing attribute value variant"}
	}
	return node.value, nil
}

type valueObject struct {
	value *attrly.AttributeValue
}

func (o *valueObject) IsNil() bool {
	return o == nil || o.value == nil
}

func (o *valueObject) MarshalJSONObject(enc *gojay.Encoder) {
	value := o.value
	switch value.Kind() {
	case attrly.KindString:
		text, _ := value.AsString()
		enc.StringKey("S", text)
	case attrly.KindNumber:
		text, _ := value.AsNumber()
		enc.StringKey("N", text)
	case attrly.KindBool:
		flag, _ := value.AsBool()
		enc.BoolKey("BOOL", flag)
	case attrly.KindNull:
		enc.BoolKey("NULL", true)
	case attrly.KindBinary:
		payload, _ := value.AsBinary()
		enc.StringKey("B", base64.StdEncoding.EncodeToString(payload))
	case attrly.KindStringSet:
		members, _ := value.AsStringSet()
		enc.ArrayKey("SS", textArray(members))
	case attrly.KindNumberSet:
		members, _ := value.AsNumberSet()
		enc.ArrayKey("NS", textArray(members))
	case attrly.KindBinarySet:
		members, _ := value.AsBinarySet()
		encoded := make(textArray, len(members))
		for i, member := range members {
			encoded[i] = base64.StdEncoding.EncodeToString(member)
		}
		enc.ArrayKey("BS", encoded)
	case attrly.KindList:
		items, _ := value.AsList()
		enc.ArrayKey("L", valueArray(items))
	case attrly.KindMap:
		entries, _ := value.AsMap()
		enc.ObjectKey("M", valueMap(entries))
	}
}

type textArray []string

func (a textArray) IsNil() bool {
	return a == nil
}

func (a textArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		enc.String(item)
	}
}

type valueArray []*attrly.AttributeValue

func (a valueArray) IsNil() bool {
	return a == nil
}

func (a valueArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		enc.Object(&valueObject{value: item})
	}
}

type valueMap map[string]*attrly.AttributeValue

func (m valueMap) IsNil() bool {
	return m == nil
}

func (m valueMap) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys) //deterministic output
	for _, key := range keys {
		enc.ObjectKey(key, &valueObject{value: m[key]})
	}
}
