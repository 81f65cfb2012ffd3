// Package autorecord adapts the teacher's reflection-based struct field
// codec (fractus.go's FieldPlan/Encode/Decode) into a helper that derives
// a framewire.Record body codec from a plain struct's exported fields,
// instead of requiring every caller to hand-write SerializeBody and
// DeserializeBody. The field classification (fixed-kind vs variable) and
// the per-reflect.Type plan cache are carried over unchanged in spirit;
// two things differ to match the format this now serializes:
//
//   - fixed-kind fields go through framewire's endian-aware ScalarCodec
//     instead of a hardcoded little-endian binary.LittleEndian call, so
//     a Struct record round-trips correctly under either declared
//     endianness.
//   - variable-length fields (string, []byte, and slices of fixed-kind
//     element types) are length-prefixed with the format's SizeWire (a
//     fixed 8-byte count) instead of the teacher's LEB128 varint, since
//     the wire format this core implements mandates SizeWire everywhere
//     a length appears.
package autorecord

import (
	"fmt"
	"reflect"
	"sync"

	fw "github.com/rawbytedev/framewire"
)

// fieldInfo classifies one exported struct field.
type fieldInfo struct {
	index int
	kind  reflect.Kind
	// elemKind is set when kind is Slice and the element kind is fixed.
	elemKind reflect.Kind
	isFixed  bool
	isSlice  bool
}

// fieldPlan is the cached classification of a struct type's fields,
// built once per reflect.Type the same way fractus.go's FieldPlan is
// built once and kept in a sync.Map.
type fieldPlan struct {
	fields []fieldInfo
}

var planCache sync.Map // reflect.Type -> *fieldPlan

func isFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func buildPlan(t reflect.Type) (*fieldPlan, error) {
	plan := &fieldPlan{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		k := f.Type.Kind()
		switch {
		case isFixedKind(k):
			plan.fields = append(plan.fields, fieldInfo{index: i, kind: k, isFixed: true})
		case k == reflect.String:
			plan.fields = append(plan.fields, fieldInfo{index: i, kind: k})
		case k == reflect.Slice && isFixedKind(f.Type.Elem().Kind()):
			plan.fields = append(plan.fields, fieldInfo{index: i, kind: k, elemKind: f.Type.Elem().Kind(), isSlice: true})
		default:
			return nil, fmt.Errorf("autorecord: field %s.%s has unsupported kind %s", t.Name(), f.Name, k)
		}
	}
	return plan, nil
}

func getPlan(t reflect.Type) (*fieldPlan, error) {
	if v, ok := planCache.Load(t); ok {
		return v.(*fieldPlan), nil
	}
	plan, err := buildPlan(t)
	if err != nil {
		return nil, err
	}
	actual, _ := planCache.LoadOrStore(t, plan)
	return actual.(*fieldPlan), nil
}

func writeFixed(w *fw.Writer, v reflect.Value, k reflect.Kind) error {
	switch k {
	case reflect.Bool:
		return w.WriteBool(v.Bool())
	case reflect.Int8:
		return w.WriteInt8(int8(v.Int()))
	case reflect.Int16:
		return w.WriteInt16(int16(v.Int()))
	case reflect.Int32:
		return w.WriteInt32(int32(v.Int()))
	case reflect.Int64:
		return w.WriteInt64(v.Int())
	case reflect.Uint8:
		return w.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return w.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return w.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64:
		return w.WriteUint64(v.Uint())
	case reflect.Float32:
		return w.WriteFloat32(float32(v.Float()))
	case reflect.Float64:
		return w.WriteFloat64(v.Float())
	default:
		return fmt.Errorf("autorecord: unsupported fixed kind %s", k)
	}
}

func readFixed(r *fw.Reader, dst reflect.Value, k reflect.Kind) error {
	switch k {
	case reflect.Bool:
		v, err := r.ReadBool()
		if err == nil {
			dst.SetBool(v)
		}
		return err
	case reflect.Int8:
		v, err := r.ReadInt8()
		if err == nil {
			dst.SetInt(int64(v))
		}
		return err
	case reflect.Int16:
		v, err := r.ReadInt16()
		if err == nil {
			dst.SetInt(int64(v))
		}
		return err
	case reflect.Int32:
		v, err := r.ReadInt32()
		if err == nil {
			dst.SetInt(int64(v))
		}
		return err
	case reflect.Int64:
		v, err := r.ReadInt64()
		if err == nil {
			dst.SetInt(v)
		}
		return err
	case reflect.Uint8:
		v, err := r.ReadUint8()
		if err == nil {
			dst.SetUint(uint64(v))
		}
		return err
	case reflect.Uint16:
		v, err := r.ReadUint16()
		if err == nil {
			dst.SetUint(uint64(v))
		}
		return err
	case reflect.Uint32:
		v, err := r.ReadUint32()
		if err == nil {
			dst.SetUint(uint64(v))
		}
		return err
	case reflect.Uint64:
		v, err := r.ReadUint64()
		if err == nil {
			dst.SetUint(v)
		}
		return err
	case reflect.Float32:
		v, err := r.ReadFloat32()
		if err == nil {
			dst.SetFloat(float64(v))
		}
		return err
	case reflect.Float64:
		v, err := r.ReadFloat64()
		if err == nil {
			dst.SetFloat(v)
		}
		return err
	default:
		return fmt.Errorf("autorecord: unsupported fixed kind %s", k)
	}
}

// SerializeStruct writes every exported field of val (a struct or
// pointer to struct) in declaration order: fixed-kind fields directly,
// strings and slices-of-fixed-kind as a SizeWire count followed by
// elements.
func SerializeStruct(w *fw.Writer, val any) error {
	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("autorecord: SerializeStruct requires a struct, got %s", rv.Kind())
	}
	plan, err := getPlan(rv.Type())
	if err != nil {
		return err
	}
	for _, f := range plan.fields {
		fv := rv.Field(f.index)
		switch {
		case f.isFixed:
			if err := writeFixed(w, fv, f.kind); err != nil {
				return err
			}
		case f.kind == reflect.String:
			if err := w.WriteString(fv.String()); err != nil {
				return err
			}
		case f.isSlice:
			n := fv.Len()
			if err := w.WriteSize(uint64(n)); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := writeFixed(w, fv.Index(i), f.elemKind); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// DeserializeStruct reads fields into *out (a pointer to struct) in the
// same order SerializeStruct wrote them.
func DeserializeStruct(r *fw.Reader, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("autorecord: DeserializeStruct requires a pointer to struct")
	}
	rv = rv.Elem()
	plan, err := getPlan(rv.Type())
	if err != nil {
		return err
	}
	for _, f := range plan.fields {
		fv := rv.Field(f.index)
		switch {
		case f.isFixed:
			if err := readFixed(r, fv, f.kind); err != nil {
				return err
			}
		case f.kind == reflect.String:
			s, err := r.ReadString()
			if err != nil {
				return err
			}
			fv.SetString(s)
		case f.isSlice:
			n, err := r.ReadSizeAsInt()
			if err != nil {
				return err
			}
			if n < 0 || n > r.UnreadBytes() {
				return fmt.Errorf("autorecord: slice count %d exceeds %d remaining bytes", n, r.UnreadBytes())
			}
			slice := reflect.MakeSlice(fv.Type(), n, n)
			for i := 0; i < n; i++ {
				if err := readFixed(r, slice.Index(i), f.elemKind); err != nil {
					return err
				}
			}
			fv.Set(slice)
		}
	}
	return nil
}

// Struct wraps any plain struct value and implements framewire.Record by
// delegating to SerializeStruct/DeserializeStruct, letting a caller skip
// hand-writing a body codec for simple records.
type Struct[T any] struct {
	ID      uint16
	Version uint8
	Value   T
}

func (s *Struct[T]) RecordID() uint16      { return s.ID }
func (s *Struct[T]) RecordVersion() uint8  { return s.Version }
func (s *Struct[T]) SerializeBody(w *fw.Writer) error {
	return SerializeStruct(w, &s.Value)
}
func (s *Struct[T]) DeserializeBody(r *fw.Reader) error {
	return DeserializeStruct(r, &s.Value)
}
