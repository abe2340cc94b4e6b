package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

var defineCmd = &cobra.Command{
	Use:   "define",
	Short: "Define, get, put, and delete properties on a plain object",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		obj := e.NewObject()
		greeting := e.Interner.Intern("greeting")

		ok, jerr := obj.DefineOwnProperty(e, greeting, jsvalue.Descriptor{
			Value:        jsvalue.ValuePtr(jsvalue.NewString("hello")),
			Writable:     jsvalue.BoolPtr(true),
			Enumerable:   jsvalue.BoolPtr(true),
			Configurable: jsvalue.BoolPtr(true),
		}, true)
		if jerr != nil {
			return fmt.Errorf("define greeting: %s", jerr.Message())
		}
		fmt.Printf("define greeting: ok=%v\n", ok)

		desc, found := obj.GetOwnProperty(greeting)
		printDescriptor("greeting", found, desc)

		v, jerr := obj.Get(e, greeting)
		if jerr != nil {
			return fmt.Errorf("get greeting: %s", jerr.Message())
		}
		fmt.Printf("get greeting: %s\n", formatValue(v))

		if jerr := obj.Put(e, e, greeting, jsvalue.NewString("goodbye"), true); jerr != nil {
			return fmt.Errorf("put greeting: %s", jerr.Message())
		}
		v, _ = obj.Get(e, greeting)
		fmt.Printf("after put: %s\n", formatValue(v))

		ok, jerr = obj.DefineOwnProperty(e, greeting, jsvalue.Descriptor{
			Configurable: jsvalue.BoolPtr(false),
		}, true)
		if jerr != nil {
			return fmt.Errorf("lock greeting: %s", jerr.Message())
		}
		fmt.Printf("lock greeting: ok=%v\n", ok)

		deleted, jerr := obj.Delete(e, greeting, false)
		fmt.Printf("delete greeting (non-configurable): deleted=%v err=%v\n", deleted, jerr)

		return nil
	},
}
