package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nooga/jsobjectcore/pkg/jserr"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
	"github.com/nooga/jsobjectcore/pkg/object"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Walk a prototype chain, check HasInstance, and construct an error",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()

		base := e.NewObject()
		colorName := e.Interner.Intern("color")
		if _, jerr := base.DefineOwnProperty(e, colorName, jsvalue.Descriptor{
			Value:        jsvalue.ValuePtr(jsvalue.NewString("red")),
			Writable:     jsvalue.BoolPtr(true),
			Enumerable:   jsvalue.BoolPtr(true),
			Configurable: jsvalue.BoolPtr(true),
		}, true); jerr != nil {
			return fmt.Errorf("define color: %s", jerr.Message())
		}

		derived := e.NewObject()
		derived.SetPrototype(base)
		fmt.Printf("derived has own color: %v\n", derived.HasOwnProperty(colorName))
		fmt.Printf("derived has inherited color: %v\n", derived.HasProperty(colorName))

		v, jerr := derived.Get(e, colorName)
		if jerr != nil {
			return fmt.Errorf("get color: %s", jerr.Message())
		}
		fmt.Printf("derived.color via prototype chain: %s\n", formatValue(v))

		ctor := e.NewFunction(object.FunctionDesc{
			Kind:     object.FunctionNative,
			ArgCount: 0,
			Native: func(caller object.Caller, this jsvalue.Value, args []jsvalue.Value) (jsvalue.Value, *jserr.JsError) {
				return jsvalue.Undefined, nil
			},
		})
		protoName := e.Interner.Intern("prototype")
		instanceProto := e.NewObject()
		if _, jerr := ctor.DefineOwnProperty(e, protoName, jsvalue.Descriptor{
			Value:        jsvalue.ValuePtr(instanceProto.AsValue()),
			Writable:     jsvalue.BoolPtr(true),
			Enumerable:   jsvalue.BoolPtr(false),
			Configurable: jsvalue.BoolPtr(false),
		}, true); jerr != nil {
			return fmt.Errorf("define prototype: %s", jerr.Message())
		}

		instance := e.NewObject()
		instance.SetPrototype(instanceProto)
		isInstance, jerr := ctor.HasInstance(e, protoName, instance.AsValue())
		if jerr != nil {
			return fmt.Errorf("has_instance: %s", jerr.Message())
		}
		fmt.Printf("instance instanceof ctor: %v\n", isInstance)

		root, err := e.ConstructError("TypeError", jsvalue.NewString("chain demo failure"))
		if err != nil {
			return err
		}
		defer root.Release()
		fmt.Println("constructed a TypeError instance")

		return nil
	},
}
