package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// defineOwnArrayProperty is ES5 §15.4.5.1's length-aware overlay on top
// of the generic algorithm. Grounded on
// original_source/src/rt/object/mod.rs's define_own_array_property,
// restructured into explicit Go control flow (no try!/match).
func (obj *JsObject) defineOwnArrayProperty(host jserr.HostFactory, name jsvalue.Name, desc jsvalue.Descriptor, throwFlag bool) (bool, *jserr.JsError) {
	arr := obj.propStore.Array
	lengthName := arr.LengthName()

	if name == lengthName {
		return obj.defineArrayLength(host, desc, throwFlag)
	}

	if idx, isIndex := name.Index(); isIndex {
		return obj.defineArrayIndex(host, idx, name, desc, throwFlag)
	}

	return obj.defineOwnGenericProperty(host, name, desc, throwFlag)
}

// defineArrayLength is ES5 §15.4.5.1 steps 3.a-3.l as restated in
// SPEC_FULL.md §4.C's "Setting length" bullet.
func (obj *JsObject) defineArrayLength(host jserr.HostFactory, desc jsvalue.Descriptor, throwFlag bool) (bool, *jserr.JsError) {
	arr := obj.propStore.Array
	lengthName := arr.LengthName()
	oldLen := arr.Length()

	var newLen uint32
	hasNewLen := desc.Value != nil
	if hasNewLen {
		n, ok := jsvalue.ToNumber(*desc.Value)
		if !ok {
			return fail(host, throwFlag, "length must coerce to a number")
		}
		newLen = jsvalue.ToUint32(n)
		if float64(newLen) != n {
			return false, jserr.NewRange(host, "invalid array length")
		}
	}

	current, _ := obj.propStore.GetValue(lengthName)

	if !hasNewLen || newLen >= oldLen {
		return obj.defineOwnGenericProperty(host, lengthName, desc, throwFlag)
	}

	if !current.IsWritable() {
		return fail(host, throwFlag, "cannot redefine non-writable length")
	}

	wantsNonWritable := desc.Writable != nil && !*desc.Writable
	writeDesc := desc
	if wantsNonWritable {
		writable := true
		writeDesc.Writable = &writable
	}

	ok, jerr := obj.defineOwnGenericProperty(host, lengthName, writeDesc, throwFlag)
	if !ok {
		return false, jerr
	}

	if wantsNonWritable {
		writable := false
		redefine := jsvalue.Descriptor{Writable: &writable}
		obj.defineOwnGenericProperty(host, lengthName, redefine, false)
	}

	return true, nil
}

// defineArrayIndex is ES5 §15.4.5.1's "setting an integer-index
// property" bullet.
func (obj *JsObject) defineArrayIndex(host jserr.HostFactory, idx uint32, name jsvalue.Name, desc jsvalue.Descriptor, throwFlag bool) (bool, *jserr.JsError) {
	arr := obj.propStore.Array
	lengthName := arr.LengthName()
	oldLen := arr.Length()

	lengthDesc, _ := obj.propStore.GetValue(lengthName)

	if idx >= oldLen && !lengthDesc.IsWritable() {
		return fail(host, throwFlag, "cannot add an index beyond a non-writable length")
	}

	ok, jerr := obj.defineOwnGenericProperty(host, name, desc, false)
	if !ok {
		if throwFlag {
			if jerr != nil {
				return false, jerr
			}
			return false, jserr.NewType(host, "cannot define array index property")
		}
		return false, nil
	}

	if idx >= oldLen {
		newLenValue := jsvalue.NewNumber(float64(idx + 1))
		obj.propStore.Replace(lengthName, jsvalue.Descriptor{Value: &newLenValue})
	}

	return true, nil
}
