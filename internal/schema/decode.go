package schema

import (
	"encoding/json"
	"fmt"
)

// DecodeDescriptor reads one TypeDescriptor from JSON. The concrete kind is
// selected by the case-insensitive "type" discriminator. Int and float
// descriptors missing their "range" sub-object get the kind's permissive
// default injected before shape validation, so downstream code may assume
// the range is always present post-decode.
func DecodeDescriptor(data []byte) (TypeDescriptor, error) {
	var probe struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &DecodeError{Field: "type", Reason: err.Error()}
	}
	if probe.Type == nil {
		return nil, &DecodeError{Field: "type", Reason: "missing discriminator"}
	}

	kind, err := ParseKind(*probe.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindBool:
		return decodeInto(kind, data, &BoolDescriptor{})
	case KindInt:
		d := &IntDescriptor{}
		if _, err := decodeInto(kind, data, d); err != nil {
			return nil, err
		}
		if d.Range == nil {
			d.Range = DefaultIntRange()
		}
		return d, nil
	case KindFloat:
		d := &FloatDescriptor{}
		if _, err := decodeInto(kind, data, d); err != nil {
			return nil, err
		}
		if d.Range == nil {
			d.Range = DefaultFloatRange()
		}
		return d, nil
	case KindString:
		return decodeInto(kind, data, &StringDescriptor{})
	case KindEnum:
		d := &EnumDescriptor{}
		if _, err := decodeInto(kind, data, d); err != nil {
			return nil, err
		}
		if d.Options == nil {
			return nil, &DecodeError{Field: "options", Reason: "required for enum"}
		}
		return d, nil
	case KindBitmask:
		d := &BitmaskDescriptor{}
		if _, err := decodeInto(kind, data, d); err != nil {
			return nil, err
		}
		if d.Options == nil {
			return nil, &DecodeError{Field: "options", Reason: "required for bitmask"}
		}
		return d, nil
	case KindColor:
		return decodeInto(kind, data, &ColorDescriptor{})
	case KindUint32:
		return decodeInto(kind, data, &Uint32Descriptor{})
	case KindUint64:
		return decodeInto(kind, data, &Uint64Descriptor{})
	case KindVector2:
		return decodeInto(kind, data, &Vector2Descriptor{})
	case KindVector3:
		return decodeInto(kind, data, &Vector3Descriptor{})
	case KindUnknown:
		return decodeInto(kind, data, &UnknownDescriptor{})
	case KindAction:
		return decodeInto(kind, data, &ActionDescriptor{})
	}
	return nil, &DecodeError{Field: "type", Reason: fmt.Sprintf("unrecognized kind %q", kind)}
}

func decodeInto(kind ValueKind, data []byte, d TypeDescriptor) (TypeDescriptor, error) {
	if err := json.Unmarshal(data, d); err != nil {
		return nil, &DecodeError{Field: string(kind), Reason: err.Error()}
	}
	return d, nil
}

// EncodeDescriptor is the structural mirror of DecodeDescriptor: the
// discriminator plus the kind's own fields. No special cases are needed
// since ranges are always materialized in memory by this point.
func EncodeDescriptor(d TypeDescriptor) ([]byte, error) {
	switch t := d.(type) {
	case *BoolDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*BoolDescriptor
		}{KindBool, t})
	case *IntDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*IntDescriptor
		}{KindInt, t})
	case *FloatDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*FloatDescriptor
		}{KindFloat, t})
	case *StringDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*StringDescriptor
		}{KindString, t})
	case *EnumDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*EnumDescriptor
		}{KindEnum, t})
	case *BitmaskDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*BitmaskDescriptor
		}{KindBitmask, t})
	case *ColorDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*ColorDescriptor
		}{KindColor, t})
	case *Uint32Descriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*Uint32Descriptor
		}{KindUint32, t})
	case *Uint64Descriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*Uint64Descriptor
		}{KindUint64, t})
	case *Vector2Descriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*Vector2Descriptor
		}{KindVector2, t})
	case *Vector3Descriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*Vector3Descriptor
		}{KindVector3, t})
	case *UnknownDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*UnknownDescriptor
		}{KindUnknown, t})
	case *ActionDescriptor:
		return json.Marshal(struct {
			Type ValueKind `json:"type"`
			*ActionDescriptor
		}{KindAction, t})
	}
	return nil, fmt.Errorf("unsupported descriptor %T", d)
}
