package json

import (
	"encoding/base64"

	"github.com/francoispqt/gojay"
	"github.com/viant/attrly"
)

type valueNode struct {
	value *attrly.AttributeValue
}

// NKeys returns 0 so gojay streams every key to UnmarshalJSONObject.
func (n *valueNode) NKeys() int {
	return 0
}

func (n *valueNode) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "S":
		var text string
		if err := dec.String(&text); err != nil {
			return err
		}
		n.value = attrly.FromString(text)
	case "N":
		var text string
		if err := dec.String(&text); err != nil {
			return err
		}
		value, err := attrly.FromNumber(text)
		if err != nil {
			return err
		}
		n.value = value
	case "BOOL":
		var flag bool
		if err := dec.Bool(&flag); err != nil {
			return err
		}
		n.value = attrly.FromBool(flag)
	case "NULL":
		var flag bool
		if err := dec.Bool(&flag); err != nil {
			return err
		}
		n.value = attrly.FromNull()
	case "B":
		var encoded string
		if err := dec.String(&encoded); err != nil {
			return err
		}
		payload, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return &attrly.FormatError{Text: encoded, Reason: "not base64"}
		}
		value, err := attrly.FromBinary(payload)
		if err != nil {
			return err
		}
		n.value = value
	case "SS":
		members := &textsNode{}
		if err := dec.Array(members); err != nil {
			return err
		}
		n.value = attrly.FromStringSet(members.values...)
	case "NS":
		members := &textsNode{}
		if err := dec.Array(members); err != nil {
			return err
		}
		value, err := attrly.FromNumberSet(members.values...)
		if err != nil {
			return err
		}
		n.value = value
	case "BS":
		members := &textsNode{}
		if err := dec.Array(members); err != nil {
			return err
		}
		blobs := make([][]byte, len(members.values))
		for i, encoded := range members.values {
			payload, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return &attrly.FormatError{Text: encoded, Reason: "not base64"}
			}
			blobs[i] = payload
		}
		value, err := attrly.FromBinarySet(blobs...)
		if err != nil {
			return err
		}
		n.value = value
	case "L":
		items := &nodesNode{}
		if err := dec.Array(items); err != nil {
			return err
		}
		value, err := attrly.FromList(items.values...)
		if err != nil {
			return err
		}
		n.value = value
	case "M":
		entries := &entriesNode{values: map[string]*attrly.AttributeValue{}}
		if err := dec.Object(entries); err != nil {
			return err
		}
		value, err := attrly.FromMap(entries.values)
		if err != nil {
			return err
		}
		n.value = value
	default:
		return &attrly.FormatError{Text: key, Reason: "unknown attribute value variant"}
	}
	return nil
}

type textsNode struct {
	values []string
}

func (n *textsNode) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var text string
	if err := dec.String(&text); err != nil {
		return err
	}
	n.values = append(n.values, text)
	return nil
}

type nodesNode struct {
	values []*attrly.AttributeValue
}

func (n *nodesNode) UnmarshalJSONArray(dec *gojay.Decoder) error {
	child := &valueNode{}
	if err := dec.Object(child); err != nil {
		return err
	}
	n.values = append(n.values, child.value)
	return nil
}

type entriesNode struct {
	values map[string]*attrly.AttributeValue
}

func (n *entriesNode) NKeys() int {
	return 0
}

func (n *entriesNode) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	child := &valueNode{}
	if err := dec.Object(child); err != nil {
		return err
	}
	n.values[key] = child.value
	return nil
}
