/*
Package domain contains the core entities of the Rootstock object model.

It defines the fundamental pieces of the runtime substrate: tagged Values,
Classes and Instances, the shared storage Layouts, and the error and event
types the engine surfaces. This package is kept pure and free of I/O or
persistence concerns, following Hexagonal Architecture principles.

# Key Entities

  - Value: Tagged variant for everything flowing through the runtime (data,
    callables, descriptors, classes, instances).
  - Class: A named node in the single-inheritance graph, backed by a plain
    field table.
  - Instance: A layout-backed object; names live in the shared Layout, values
    in the index-aligned storage slice.
  - Layout: Immutable-once-published mapping from attribute name to storage
    slot, forming an interned transition trie.
  - AttributeEvent / LayoutEvent: Payloads for engine lifecycle hooks.
*/
package domain
