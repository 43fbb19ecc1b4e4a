package dataset

import (
	"github.com/go-faster/jx"
)

// ColumnOrder recovers the flattened key order of the first record from the
// raw JSON document. Go maps do not preserve insertion order, so the display
// order of columns is read from the wire form directly. The walk mirrors
// Flatten: nested objects recurse with an underscore-joined prefix, arrays
// and scalars terminate. Returns nil when raw is empty or not an array of
// objects / single object.
func ColumnOrder(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	d := jx.DecodeBytes(raw)
	switch d.Next() {
	case jx.Array:
		var order []string
		first := true
		if err := d.Arr(func(d *jx.Decoder) error {
			if !first || d.Next() != jx.Object {
				return d.Skip()
			}
			first = false
			var err error
			order, err = objectOrder(d, "")
			return err
		}); err != nil {
			return nil
		}
		return order
	case jx.Object:
		order, err := objectOrder(d, "")
		if err != nil {
			return nil
		}
		return order
	default:
		return nil
	}
}

func objectOrder(d *jx.Decoder, prefix string) ([]string, error) {
	var order []string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		name := key
		if prefix != "" {
			name = prefix + "_" + key
		}
		if d.Next() == jx.Object {
			nested, err := objectOrder(d, name)
			if err != nil {
				return err
			}
			order = append(order, nested...)
			return nil
		}
		order = append(order, name)
		return d.Skip()
	})
	return order, err
}
