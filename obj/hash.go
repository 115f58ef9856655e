package obj

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the handle's resolved value.
// Structurally equal values hash equally within one process; the seed is
// per process, so hashes must not be persisted.
// It panics if h is nil.
func (h *Handle) Hash() uint64 {
	if h == nil {
		panic("obj: Hash called on nil handle")
	}
	var mh maphash.Hash
	mh.SetSeed(hashSeed)
	hashValue(&mh, h.Value())
	return mh.Sum64()
}

func hashValue(mh *maphash.Hash, v *Value) {
	k := v.Kind
	// integers and reals share a rank in Compare, so equal numbers of
	// either kind must hash the same
	if k == IntegerKind {
		k = RealKind
	}
	mh.WriteByte(byte(k))

	switch v.Kind {
	case NullKind:
	case BooleanKind:
		if v.Bool {
			mh.WriteByte(1)
		} else {
			mh.WriteByte(0)
		}
	case IntegerKind, RealKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.asReal()))
		mh.Write(b[:])
	case StringKind:
		mh.WriteString(v.Str)
	case NameKind:
		mh.WriteString(v.Name)
	case ArrayKind:
		for _, c := range v.Values {
			hashValue(mh, c.Value())
		}
	case DictionaryKind, StreamKind:
		for _, i := range sortedKeyIndex(v) {
			mh.WriteString(v.Keys[i])
			hashValue(mh, v.Values[i].Value())
		}
		mh.Write(v.Stream)
	}
}
