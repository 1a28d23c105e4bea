//go:build js && wasm

// Command sizeprof-wasm exposes the configuration builders to JavaScript.
//
// After the module starts, globalThis.sizeprof holds newTop, newDominators
// and newPaths. Each returns an object whose methods mirror the Go
// accessors and mutators, e.g.
//
//	const top = sizeprof.newTop();
//	top.setInput("app.wasm");
//	top.setNumber(10);
//	top.number(); // 10
//
// describe() renders the request in the object's own output format and
// returns it as a string; a file destination is not written. A failed call
// returns an Error object instead of throwing.
package main

import (
	"bytes"
	"context"
	"syscall/js"

	"github.com/ethanolivertroy/sizeprof/internal/dispatch"
	"github.com/ethanolivertroy/sizeprof/internal/hostapi"
	"github.com/ethanolivertroy/sizeprof/internal/reporter"
)

func main() {
	api := js.Global().Get("Object").New()
	for name, ctor := range hostapi.Constructors() {
		api.Set("new"+name, js.FuncOf(func(this js.Value, args []js.Value) any {
			return wrap(ctor())
		}))
	}
	js.Global().Set("sizeprof", api)

	select {}
}

func wrap(o *hostapi.Object) js.Value {
	obj := js.Global().Get("Object").New()
	for _, name := range o.Methods() {
		obj.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
			v, err := o.Call(name, fromJS(args)...)
			if err != nil {
				return jsError(err)
			}
			return v
		}))
	}
	obj.Set("describe", js.FuncOf(func(this js.Value, args []js.Value) any {
		c, err := o.Command()
		if err != nil {
			return jsError(err)
		}
		var buf bytes.Buffer
		if err := dispatch.Run(context.Background(), c, &reporter.Describer{Stdout: &buf, Inline: true}); err != nil {
			return jsError(err)
		}
		return buf.String()
	}))
	return obj
}

func fromJS(args []js.Value) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		switch a.Type() {
		case js.TypeString:
			out = append(out, a.String())
		case js.TypeNumber:
			out = append(out, a.Float())
		case js.TypeBoolean:
			out = append(out, a.Bool())
		default:
			out = append(out, nil)
		}
	}
	return out
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
