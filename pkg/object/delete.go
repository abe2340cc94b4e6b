package object

import (
	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

// Delete implements ES5 §8.12.7: deleting an absent property always
// succeeds; deleting a configurable property removes it; deleting a
// non-configurable property fails per throwFlag. Grounded on
// original_source/src/rt/object/mod.rs's Local<JsObject>::delete.
func (obj *JsObject) Delete(host jserr.HostFactory, name jsvalue.Name, throwFlag bool) (bool, *jserr.JsError) {
	current, exists := obj.propStore.GetValue(name)
	if !exists {
		return true, nil
	}
	if !current.IsConfigurable() {
		return fail(host, throwFlag, "cannot delete a non-configurable property")
	}
	obj.propStore.Remove(name)
	return true, nil
}
