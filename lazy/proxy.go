/**
 * Copyright (c) 2019, The Hermes Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package lazy provides a deferred handle over an expensive computation. A Proxy wraps
// a factory function, materializes its value on first use, caches it, and forwards
// attribute and method access to the cached value via reflection.
package lazy

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/botobag/hermes/graphql"
)

// Factory produces the value a Proxy stands in for. It runs at most once per Proxy
// unless caching is disabled or it returns an error.
type Factory func() (interface{}, error)

// Option configures a Proxy created by New.
type Option func(*Proxy)

// WithAttribute projects the materialized value through the given dotted path before
// it is cached. Each path segment is looked up as a niladic method, an exported struct
// field, and finally a map key, in that order.
func WithAttribute(path string) Option {
	return func(p *Proxy) {
		p.attr = path
	}
}

// NoCache makes the Proxy invoke its factory on every Resolve instead of memoizing the
// first successful value.
func NoCache() Option {
	return func(p *Proxy) {
		p.cache = false
	}
}

// Proxy is a deferred, cached handle to the value produced by a Factory. The zero
// value is not usable; create one with New.
//
// Resolution runs under a mutex so concurrent first accesses invoke the factory once.
// A factory error is returned to the caller but never cached, so a later Resolve
// retries.
type Proxy struct {
	mu      sync.Mutex
	factory Factory
	attr    string
	cache   bool

	resolved bool
	value    interface{}
}

// New creates a Proxy around the given source: a Factory, a bare func() interface{},
// or a plain value to stand in for. A factory source does not run until the first
// Resolve, Forward or Unwrap.
func New(source interface{}, opts ...Option) *Proxy {
	var factory Factory
	switch source := source.(type) {
	case Factory:
		factory = source
	case func() (interface{}, error):
		factory = source
	case func() interface{}:
		factory = func() (interface{}, error) {
			return source(), nil
		}
	default:
		factory = func() (interface{}, error) {
			return source, nil
		}
	}

	p := &Proxy{
		factory: factory,
		cache:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve materializes and returns the proxied value. With caching enabled (the
// default) the factory runs once and every later call returns the same value; with
// NoCache it runs every time. A factory error or a failed attribute projection is
// propagated and nothing is cached.
func (p *Proxy) Resolve() (interface{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved && p.cache {
		return p.value, nil
	}

	value, err := p.factory()
	if err != nil {
		return nil, err
	}
	if len(p.attr) > 0 {
		value, err = project(value, p.attr)
		if err != nil {
			return nil, err
		}
	}

	p.value = value
	p.resolved = true
	return value, nil
}

// Unwrap is like Resolve but panics when materialization fails. It is meant for
// initialization paths where a failed factory is a programming error.
func (p *Proxy) Unwrap() interface{} {
	value, err := p.Resolve()
	if err != nil {
		panic(err)
	}
	return value
}

// Forward materializes the proxied value and invokes the named exported method on it
// with the given arguments. A trailing error return is split off and returned as
// Forward's error; the remaining results come back as the value, unwrapped when there
// is exactly one. A missing method or mismatched arguments produce an error instead of
// a reflection panic.
func (p *Proxy) Forward(name string, args ...interface{}) (interface{}, error) {
	const op = graphql.Op("lazy.Proxy.Forward")

	value, err := p.Resolve()
	if err != nil {
		return nil, err
	}

	receiver := reflect.ValueOf(value)
	if !receiver.IsValid() {
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot forward %q to a nil value.", name), op, graphql.ErrKindName)
	}

	method := receiver.MethodByName(name)
	if !method.IsValid() && receiver.Kind() != reflect.Ptr && receiver.CanInterface() {
		// Pointer receivers are only reachable through an addressable value.
		ptr := reflect.New(receiver.Type())
		ptr.Elem().Set(receiver)
		method = ptr.MethodByName(name)
	}
	if !method.IsValid() {
		return nil, graphql.NewError(
			fmt.Sprintf("Value of type %T has no method %q.", value, name), op, graphql.ErrKindName)
	}

	methodType := method.Type()
	if err := checkArity(methodType, len(args)); err != nil {
		return nil, graphql.WrapErrorf(err, "Cannot forward %q to value of type %T.", name, value)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		paramType := parameterType(methodType, i)
		argValue := reflect.ValueOf(arg)
		if !argValue.IsValid() {
			// Untyped nil; materialize the parameter's zero value.
			argValue = reflect.Zero(paramType)
		} else if !argValue.Type().AssignableTo(paramType) {
			if argValue.Type().ConvertibleTo(paramType) {
				argValue = argValue.Convert(paramType)
			} else {
				return nil, graphql.NewError(
					fmt.Sprintf("Cannot forward %q to value of type %T: argument %d has type %s, want %s.",
						name, value, i, argValue.Type(), paramType),
					op, graphql.ErrKindArgument)
			}
		}
		in[i] = argValue
	}

	return splitResults(method.Call(in))
}

func checkArity(methodType reflect.Type, numArgs int) error {
	numIn := methodType.NumIn()
	if methodType.IsVariadic() {
		if numArgs < numIn-1 {
			return graphql.NewError(
				fmt.Sprintf("Expected at least %d arguments but got %d.", numIn-1, numArgs),
				graphql.ErrKindArgument)
		}
		return nil
	}
	if numArgs != numIn {
		return graphql.NewError(
			fmt.Sprintf("Expected %d arguments but got %d.", numIn, numArgs),
			graphql.ErrKindArgument)
	}
	return nil
}

func parameterType(methodType reflect.Type, i int) reflect.Type {
	if methodType.IsVariadic() && i >= methodType.NumIn()-1 {
		return methodType.In(methodType.NumIn() - 1).Elem()
	}
	return methodType.In(i)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// splitResults separates a trailing error return from the remaining results.
func splitResults(out []reflect.Value) (interface{}, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type().Implements(errType) {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		results := make([]interface{}, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, err
	}
}

// project walks a dotted attribute path down from root. Each segment resolves against
// the current value as a niladic method (whose result, with an optional trailing
// error, becomes the next value), then an exported struct field, then a map key.
func project(root interface{}, path string) (interface{}, error) {
	value := root
	for _, segment := range strings.Split(path, ".") {
		next, err := projectSegment(value, segment)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "Cannot project attribute path %q.", path)
		}
		value = next
	}
	return value, nil
}

func projectSegment(source interface{}, name string) (interface{}, error) {
	const op = graphql.Op("lazy.project")

	v := reflect.ValueOf(source)
	if !v.IsValid() {
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot take %q from a nil value.", name), op, graphql.ErrKindName)
	}

	if method := v.MethodByName(name); method.IsValid() && method.Type().NumIn() == 0 {
		return splitResults(method.Call(nil))
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
		if !v.IsValid() {
			return nil, graphql.NewError(
				fmt.Sprintf("Cannot take %q from a nil pointer.", name), op, graphql.ErrKindName)
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		if field := v.FieldByName(name); field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}
	case reflect.Map:
		key := reflect.ValueOf(name)
		if key.Type().AssignableTo(v.Type().Key()) {
			if entry := v.MapIndex(key); entry.IsValid() {
				return entry.Interface(), nil
			}
		}
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Value of type %T has no attribute %q.", source, name),
		op, graphql.ErrKindName)
}
