package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nooga/jsobjectcore/pkg/object"
)

var newObjectCmd = &cobra.Command{
	Use:   "new-object",
	Short: "Create a plain object and an array, print their shapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()

		obj := e.NewObject()
		fmt.Printf("object: extensible=%v class=%s isArray=%v\n", obj.IsExtensible(), className(obj), obj.IsArray())

		arr := e.NewArray()
		fmt.Printf("array: extensible=%v class=%s isArray=%v\n", arr.IsExtensible(), className(arr), arr.IsArray())
		lengthName := e.Interner.Intern("length")
		desc, found := arr.GetOwnProperty(lengthName)
		printDescriptor("array.length", found, desc)

		return nil
	},
}

func className(obj *object.JsObject) string {
	name, ok := obj.Class()
	if !ok {
		return "<none>"
	}
	return obj.Interner().Get(name)
}
