/*
Package rootstock is the runtime substrate beneath a class-based
object-oriented language: single-inheritance classes, instances with
layout-shared storage, method dispatch, and user-overridable meta-hooks for
attribute access.

It implements the reusable core a surface language grows on, separating the
object graph (Classes, Instances) from the access protocol (read, write,
dispatch) and from storage sharing (hidden-class Layouts). The front end —
an interpreter or compiler — owns parsing, evaluation and any command
surface, and drives this core through plain API calls.

# Concept

Rootstock treats attribute access as a small, fixed protocol over an object
graph anchored by two mutually-defining root classes (the universal base
class and the default metaclass). Instances do not carry per-object name
tables: attribute names live in shared, immutable Layouts, so instances that
gain the same attributes in the same order converge on one layout and store
values positionally.

# Key Features

  - Deterministic Resolution: Reads walk instance storage, then the ancestor
    chain; subclass entries shadow ancestor entries.
  - Meta-Hooks: Class-side "attribute_missing" and "write_attribute" hooks
    intercept read misses and all writes; descriptors compute read results.
  - Layout Sharing: Hidden-class storage with an interned transition trie,
    one trie per runtime, never process-global.
  - Embeddable: Synchronous, allocation-light, no I/O; the host serializes
    concurrent access.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/rootstock"
		"github.com/aretw0/rootstock/pkg/domain"
	)

	func main() {
		rt := rootstock.New()

		point := rt.MakeClass("Point", nil, nil, nil)
		p := rt.NewInstance(point)
		obj := domain.NewInstanceValue(p)

		if err := rt.Write(obj, "x", domain.NewInt(1)); err != nil {
			log.Fatal(err)
		}

		x, err := rt.Read(obj, "x")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(x.Int())
	}
*/
package rootstock
